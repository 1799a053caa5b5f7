// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iohelp

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// ReadFileOrStdin reads the whole file at |path|, or all of |stdin| when |path| is empty or StdinPath.
func ReadFileOrStdin(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read '%s'", path)
	}

	return data, nil
}
