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

package errhand

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDError(t *testing.T) {
	color.NoColor = true

	cause := errors.New("disk on fire")
	tests := []struct {
		name     string
		derr     VerboseError
		msg      string
		verbose  string
		hasCause bool
	}{
		{
			name:    "message only",
			derr:    BuildDError("bad input").Build(),
			msg:     "bad input",
			verbose: "bad input",
		},
		{
			name:    "formatted with details",
			derr:    BuildDError("bad row %d", 3).AddDetails("column %s", "age").AddDetails("try again").Build(),
			msg:     "bad row 3",
			verbose: "bad row 3\ncolumn age\ntry again",
		},
		{
			name:     "with cause",
			derr:     BuildIf(cause, "could not read").Build(),
			msg:      "could not read",
			verbose:  "could not read\ncause:\n\tdisk on fire",
			hasCause: true,
		},
		{
			name:     "verbose cause",
			derr:     BuildDError("outer").AddCause(BuildDError("inner").AddDetails("detail").Build()).Build(),
			msg:      "outer",
			verbose:  "outer\ncause:\n\tinner\n\tdetail",
			hasCause: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.NotNil(t, test.derr)
			assert.Equal(t, test.msg, test.derr.Error())
			assert.Equal(t, test.verbose, test.derr.Verbose())
			assert.Equal(t, test.hasCause, errors.Unwrap(test.derr) != nil)
		})
	}
}

func TestBuildIfNil(t *testing.T) {
	assert.Nil(t, BuildIf(nil, "unused").AddDetails("x").AddCause(errors.New("y")).Build())
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	derr := NewDError("msg", "", sentinel)
	assert.True(t, errors.Is(derr, sentinel))
}
