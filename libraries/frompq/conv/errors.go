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

package conv

import (
	"errors"
	"fmt"

	goerrors "gopkg.in/src-d/go-errors.v1"
)

// ErrInternalFault is returned when a conversion that must always succeed did not. It indicates a bug, either here
// or in a library, rather than a problem with the input file.
var ErrInternalFault = goerrors.NewKind("internal fault converting %s value %s: %v")

// ErrUnknownFieldKind is returned when a field carries a kind the translator has no case for.
var ErrUnknownFieldKind = goerrors.NewKind("no conversion defined for field kind %d")

// OverflowError is returned when a numeric value cannot be represented in the target type without loss.
type OverflowError struct {
	SourceType string
	TargetType string
	Value      string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("cannot convert %s value %s to %s: value out of range", e.SourceType, e.Value, e.TargetType)
}

// UnsupportedError is returned for parquet logical types that have no representation in the value model yet. It
// means the file uses a feature that is not implemented, not that the file is malformed.
type UnsupportedError struct {
	Kind string
	// Detail optionally describes the value that could not be converted
	Detail string
}

func (e *UnsupportedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("parquet %s fields are not supported (value %s)", e.Kind, e.Detail)
	}
	return fmt.Sprintf("parquet %s fields are not supported", e.Kind)
}

// IsOverflow returns true if |err| is or wraps an *OverflowError
func IsOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe)
}

// IsUnsupported returns true if |err| is or wraps an *UnsupportedError
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}

// IsConversionError returns true if |err| is or wraps one of the errors a translation of valid input can produce.
func IsConversionError(err error) bool {
	return IsOverflow(err) || IsUnsupported(err)
}
