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

// Package field describes the typed values produced by the parquet row source: one Field per column of a Row,
// tagged with the physical or logical type the column was declared with.
package field

import (
	"math"
)

// Field is a single decoded column value. The payload lives in one of the scalar slots depending on Kind:
// signed integers, dates and timestamps in i, unsigned integers in u, floating point values in f, strings and byte
// sequences in b. Nested kinds carry only their declared precision/scale or nothing at all.
type Field struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	b    []byte

	precision int32
	scale     int32
}

// Null is the field value of a missing optional column.
var Null = Field{kind: NullKind}

func NewBool(v bool) Field {
	var i int64
	if v {
		i = 1
	}
	return Field{kind: BoolKind, i: i}
}

func NewByte(v int8) Field {
	return Field{kind: ByteKind, i: int64(v)}
}

func NewUByte(v uint8) Field {
	return Field{kind: UByteKind, u: uint64(v)}
}

func NewShort(v int16) Field {
	return Field{kind: ShortKind, i: int64(v)}
}

func NewUShort(v uint16) Field {
	return Field{kind: UShortKind, u: uint64(v)}
}

func NewInt(v int32) Field {
	return Field{kind: IntKind, i: int64(v)}
}

func NewUInt(v uint32) Field {
	return Field{kind: UIntKind, u: uint64(v)}
}

func NewLong(v int64) Field {
	return Field{kind: LongKind, i: v}
}

func NewULong(v uint64) Field {
	return Field{kind: ULongKind, u: v}
}

func NewFloat(v float32) Field {
	return Field{kind: FloatKind, f: float64(v)}
}

func NewDouble(v float64) Field {
	return Field{kind: DoubleKind, f: v}
}

// NewStr returns a string field. The string is assumed to be utf-8 encoded.
func NewStr(v string) Field {
	return Field{kind: StrKind, b: []byte(v)}
}

// NewBytes returns a byte sequence field holding a copy of |v|.
func NewBytes(v []byte) Field {
	cp := make([]byte, len(v))
	copy(cp, v)
	return Field{kind: BytesKind, b: cp}
}

// NewDate returns a date field from a count of days since 1970-01-01.
func NewDate(daysSinceEpoch int32) Field {
	return Field{kind: DateKind, i: int64(daysSinceEpoch)}
}

func NewTimestampMillis(millisSinceEpoch int64) Field {
	return Field{kind: TimestampMillisKind, i: millisSinceEpoch}
}

func NewTimestampMicros(microsSinceEpoch int64) Field {
	return Field{kind: TimestampMicrosKind, i: microsSinceEpoch}
}

func NewTimestampNanos(nanosSinceEpoch int64) Field {
	return Field{kind: TimestampNanosKind, i: nanosSinceEpoch}
}

// NewDecimal returns a decimal field from the big-endian two's complement unscaled value and its declared precision
// and scale.
func NewDecimal(unscaled []byte, precision, scale int32) Field {
	cp := make([]byte, len(unscaled))
	copy(cp, unscaled)
	return Field{kind: DecimalKind, b: cp, precision: precision, scale: scale}
}

// NewGroup returns a nested struct field. Its contents are not decoded.
func NewGroup() Field {
	return Field{kind: GroupKind}
}

// NewList returns a list field. Its contents are not decoded.
func NewList() Field {
	return Field{kind: ListKind}
}

// NewMap returns a map field. Its contents are not decoded.
func NewMap() Field {
	return Field{kind: MapKind}
}

// Kind returns the type tag of the field.
func (f Field) Kind() Kind {
	return f.kind
}

func (f Field) Bool() bool {
	f.mustBe(BoolKind)
	return f.i != 0
}

// Int64 returns the payload of the signed integer, date and timestamp kinds.
func (f Field) Int64() int64 {
	f.mustBe(ByteKind, ShortKind, IntKind, LongKind, DateKind, TimestampMillisKind, TimestampMicrosKind, TimestampNanosKind)
	return f.i
}

// Uint64 returns the payload of the unsigned integer kinds.
func (f Field) Uint64() uint64 {
	f.mustBe(UByteKind, UShortKind, UIntKind, ULongKind)
	return f.u
}

// Float64 returns the payload of the floating point kinds. FloatKind payloads were widened exactly from float32.
func (f Field) Float64() float64 {
	f.mustBe(FloatKind, DoubleKind)
	return f.f
}

// Float32 returns the payload of a FloatKind field.
func (f Field) Float32() float32 {
	f.mustBe(FloatKind)
	return float32(f.f)
}

// Str returns the payload of a StrKind field.
func (f Field) Str() string {
	f.mustBe(StrKind)
	return string(f.b)
}

// Bytes returns the payload of a BytesKind field or the unscaled value of a DecimalKind field. Callers must not
// modify the returned slice.
func (f Field) Bytes() []byte {
	f.mustBe(BytesKind, DecimalKind)
	return f.b
}

// Precision returns the declared precision of a DecimalKind field.
func (f Field) Precision() int32 {
	f.mustBe(DecimalKind)
	return f.precision
}

// Scale returns the declared scale of a DecimalKind field.
func (f Field) Scale() int32 {
	f.mustBe(DecimalKind)
	return f.scale
}

// Equals returns true if both fields have the same kind and payload. NaN floats compare equal to each other.
func (f Field) Equals(other Field) bool {
	if f.kind != other.kind || f.i != other.i || f.u != other.u {
		return false
	}

	if f.f != other.f && !(math.IsNaN(f.f) && math.IsNaN(other.f)) {
		return false
	}

	if len(f.b) != len(other.b) || f.precision != other.precision || f.scale != other.scale {
		return false
	}

	for i := range f.b {
		if f.b[i] != other.b[i] {
			return false
		}
	}

	return true
}

func (f Field) mustBe(kinds ...Kind) {
	for _, k := range kinds {
		if f.kind == k {
			return
		}
	}

	panic("field of kind " + f.kind.String() + " accessed as " + kinds[0].String())
}
