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

package main

import (
	"context"
	"errors"

	"github.com/dolthub/frompq/cmd/frompq/cli"
	"github.com/dolthub/frompq/libraries/errhand"
	"github.com/dolthub/frompq/libraries/frompq/conv"
	"github.com/dolthub/frompq/libraries/frompq/materialize"
)

// describeError turns a failure of a command into the error shown to the user.
func describeError(err error) errhand.VerboseError {
	var re *materialize.RowError
	hasPos := errors.As(err, &re)

	var oe *conv.OverflowError
	var ue *conv.UnsupportedError
	var se *materialize.SourceError

	switch {
	case errors.As(err, &oe):
		bdr := errhand.BuildDError("error: value out of range")
		if hasPos {
			bdr.AddDetails("row %d, column '%s'", re.Row, re.Name)
		}
		return bdr.AddDetails("%s value %s does not fit in %s", oe.SourceType, oe.Value, oe.TargetType).Build()

	case errors.As(err, &ue):
		bdr := errhand.BuildDError("error: unsupported parquet type %s", ue.Kind)
		if hasPos {
			bdr.AddDetails("row %d, column '%s'", re.Row, re.Name)
		}
		if ue.Detail != "" {
			bdr.AddDetails("value: %s", ue.Detail)
		}
		return bdr.Build()

	case errors.As(err, &se):
		return errhand.BuildDError("error: failed to read parquet data").AddCause(se.Err).Build()

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errhand.BuildDError("error: canceled").AddCause(err).Build()
	}

	return errhand.BuildDError("error: decoding failed").AddCause(err).Build()
}

func printVerboseErr(verr errhand.VerboseError) int {
	cli.PrintErrln(verr.Verbose())
	return exitFail
}
