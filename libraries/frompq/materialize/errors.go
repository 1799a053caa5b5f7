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

package materialize

import (
	"errors"
	"fmt"

	goerrors "gopkg.in/src-d/go-errors.v1"
)

// ErrAlreadyRun is returned when Materialize is called on a Materializer that has already run.
var ErrAlreadyRun = goerrors.NewKind("materializer has already run and is in state %s")

// SourceError wraps a failure reported by the row source. The row source owns the parsing of the file, so these
// errors are surfaced unchanged through Unwrap.
type SourceError struct {
	// Row is the index of the row that was being read when the failure occurred
	Row int
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error reading row %d: %v", e.Row, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsSourceError returns true if |err| is or wraps a *SourceError
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}

// RowError identifies the row and column whose field failed to convert. Err is the error returned by the
// translator and is reachable through Unwrap.
type RowError struct {
	Row    int
	Column int
	Name   string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column '%s': %v", e.Row, e.Name, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
