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

// Package errhand builds errors meant to be shown to a user on the command line. A DError carries a short display
// message, optional details, and the underlying cause, which is only printed in verbose output.
package errhand

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// VerboseError is an error that can describe itself in more detail than Error.
type VerboseError interface {
	error
	Verbose() string
}

type DErrorBuilder struct {
	dispMsg string
	details []string
	cause   error
}

func BuildDError(dispFmt string, args ...interface{}) *DErrorBuilder {
	return &DErrorBuilder{dispMsg: sprintf(dispFmt, args...)}
}

// BuildIf returns nil when |err| is nil, so that callers can chain builder calls and get a nil VerboseError back.
func BuildIf(err error, dispFmt string, args ...interface{}) *DErrorBuilder {
	if err == nil {
		return nil
	}

	return &DErrorBuilder{dispMsg: sprintf(dispFmt, args...), cause: err}
}

func (builder *DErrorBuilder) AddDetails(detailsFmt string, args ...interface{}) *DErrorBuilder {
	if builder == nil {
		return nil
	}

	builder.details = append(builder.details, sprintf(detailsFmt, args...))
	return builder
}

func (builder *DErrorBuilder) AddCause(cause error) *DErrorBuilder {
	if builder == nil {
		return nil
	}

	builder.cause = cause
	return builder
}

func (builder *DErrorBuilder) Build() VerboseError {
	if builder == nil {
		return nil
	}

	return &DError{builder.dispMsg, strings.Join(builder.details, "\n"), builder.cause}
}

type DError struct {
	DisplayMsg string
	Details    string
	cause      error
}

func NewDError(dispMsg, details string, cause error) *DError {
	return &DError{dispMsg, details, cause}
}

func (derr *DError) Error() string {
	return color.RedString(derr.DisplayMsg)
}

// Unwrap returns the cause so that the errors package can see through a DError.
func (derr *DError) Unwrap() error {
	return derr.cause
}

func (derr *DError) Verbose() string {
	sections := []string{derr.Error()}

	if derr.Details != "" {
		sections = append(sections, derr.Details)
	}

	if derr.cause != nil {
		var causeStr string
		if vCause, ok := derr.cause.(VerboseError); ok {
			causeStr = vCause.Verbose()
		} else {
			causeStr = derr.cause.Error()
		}

		sections = append(sections, "cause:", indent(causeStr, "\t"))
	}

	return strings.Join(sections, "\n")
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func indent(str, indentStr string) string {
	lines := strings.Split(str, "\n")
	return indentStr + strings.Join(lines, "\n"+indentStr)
}
