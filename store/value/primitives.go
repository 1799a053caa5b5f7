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

package value

import (
	"bytes"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var NullValue Null

// Null is the absence of a value.
type Null byte

func (v Null) Kind() Kind {
	return NullKind
}

func (v Null) Equals(other Value) bool {
	return other == nil || other.Kind() == NullKind
}

func (v Null) HumanReadableString() string {
	return "null"
}

// Bool is a Value wrapper around the primitive bool type.
type Bool bool

func (v Bool) Kind() Kind {
	return BoolKind
}

func (v Bool) Equals(other Value) bool {
	return v == other
}

func (v Bool) HumanReadableString() string {
	return strconv.FormatBool(bool(v))
}

// Int is the single canonical integer width of the value model.
type Int int64

func (v Int) Kind() Kind {
	return IntKind
}

func (v Int) Equals(other Value) bool {
	return v == other
}

func (v Int) HumanReadableString() string {
	return strconv.FormatInt(int64(v), 10)
}

// Float is the floating point representation of the value model. NaN is considered equal to NaN so that decoded
// values can be compared structurally.
type Float float64

func (v Float) Kind() Kind {
	return FloatKind
}

func (v Float) Equals(other Value) bool {
	v2, ok := other.(Float)
	if !ok {
		return false
	}

	if math.IsNaN(float64(v)) && math.IsNaN(float64(v2)) {
		return true
	}

	return v == v2
}

func (v Float) HumanReadableString() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Decimal is the exact numeric representation of the value model.
type Decimal decimal.Decimal

func (v Decimal) Kind() Kind {
	return DecimalKind
}

func (v Decimal) Equals(other Value) bool {
	v2, ok := other.(Decimal)
	if !ok {
		return false
	}

	return decimal.Decimal(v).Equal(decimal.Decimal(v2))
}

func (v Decimal) HumanReadableString() string {
	return decimal.Decimal(v).String()
}

// String is a Value wrapper around a utf-8 string.
type String string

func (v String) Kind() Kind {
	return StringKind
}

func (v String) Equals(other Value) bool {
	return v == other
}

func (v String) HumanReadableString() string {
	return strconv.Quote(string(v))
}

// Binary is an opaque byte sequence.
type Binary []byte

// NewBinary returns a Binary holding a copy of |b|.
func NewBinary(b []byte) Binary {
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}

func (v Binary) Kind() Kind {
	return BinaryKind
}

func (v Binary) Equals(other Value) bool {
	v2, ok := other.(Binary)
	if !ok {
		return false
	}

	return bytes.Equal(v, v2)
}

func (v Binary) HumanReadableString() string {
	return "0x" + strings.ToUpper(hex.EncodeToString(v))
}

// Timestamp is an absolute instant carrying a fixed offset from UTC.
type Timestamp time.Time

func (v Timestamp) Kind() Kind {
	return TimestampKind
}

func (v Timestamp) Equals(other Value) bool {
	v2, ok := other.(Timestamp)
	if !ok {
		return false
	}

	return time.Time(v).Equal(time.Time(v2))
}

func (v Timestamp) HumanReadableString() string {
	return time.Time(v).Format(time.RFC3339Nano)
}
