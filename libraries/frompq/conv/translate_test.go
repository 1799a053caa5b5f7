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
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/frompq/libraries/frompq/field"
	"github.com/dolthub/frompq/store/value"
)

func TestTranslatePrimitives(t *testing.T) {
	tests := []struct {
		name     string
		input    field.Field
		expected value.Value
	}{
		{"null", field.Null, value.NullValue},
		{"true", field.NewBool(true), value.Bool(true)},
		{"false", field.NewBool(false), value.Bool(false)},
		{"int8 positive", field.NewByte(5), value.Binary{0x05}},
		{"int8 negative", field.NewByte(-1), value.Binary{0xff}},
		{"int8 min", field.NewByte(math.MinInt8), value.Binary{0x80}},
		{"uint8", field.NewUByte(200), value.Binary{200}},
		{"int16", field.NewShort(math.MinInt16), value.Int(math.MinInt16)},
		{"uint16", field.NewUShort(math.MaxUint16), value.Int(math.MaxUint16)},
		{"int32", field.NewInt(math.MaxInt32), value.Int(math.MaxInt32)},
		{"uint32", field.NewUInt(math.MaxUint32), value.Int(math.MaxUint32)},
		{"int64 min", field.NewLong(math.MinInt64), value.Int(math.MinInt64)},
		{"int64 max", field.NewLong(math.MaxInt64), value.Int(math.MaxInt64)},
		{"uint64 zero", field.NewULong(0), value.Int(0)},
		{"uint64 max int64", field.NewULong(math.MaxInt64), value.Int(math.MaxInt64)},
		{"float32", field.NewFloat(1.5), value.Float(1.5)},
		{"float32 inexact", field.NewFloat(0.1), value.Float(float64(float32(0.1)))},
		{"float64", field.NewDouble(-2.25), value.Float(-2.25)},
		{"float64 NaN", field.NewDouble(math.NaN()), value.Float(math.NaN())},
		{"float64 inf", field.NewDouble(math.Inf(1)), value.Float(math.Inf(1))},
		{"string", field.NewStr("Ann"), value.String("Ann")},
		{"empty string", field.NewStr(""), value.String("")},
		{"utf8 string", field.NewStr("Jim Halpêrt"), value.String("Jim Halpêrt")},
		{"bytes", field.NewBytes([]byte{0, 1, 2}), value.Binary{0, 1, 2}},
		{"empty bytes", field.NewBytes(nil), value.Binary{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := Translate(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected.Kind(), v.Kind())
			assert.True(t, test.expected.Equals(v), "expected %s, got %s", test.expected.HumanReadableString(), v.HumanReadableString())
		})
	}
}

func TestTranslateSmallIntsAreLosslessAndInjective(t *testing.T) {
	seen := make(map[value.Int]int64)
	check := func(f field.Field, expected int64) {
		v, err := Translate(f)
		require.NoError(t, err)
		require.Equal(t, value.Int(expected), v)
	}

	for i := math.MinInt16; i <= math.MaxInt16; i++ {
		check(field.NewShort(int16(i)), int64(i))
	}

	for i := 0; i <= math.MaxUint16; i++ {
		check(field.NewUShort(uint16(i)), int64(i))
	}

	samples32 := []int64{math.MinInt32, math.MinInt32 + 1, -65536, -1, 0, 1, 65536, math.MaxInt32 - 1, math.MaxInt32}
	for _, s := range samples32 {
		v, err := Translate(field.NewInt(int32(s)))
		require.NoError(t, err)
		prev, ok := seen[v.(value.Int)]
		require.False(t, ok && prev != s, "%d and %d map to the same value", prev, s)
		seen[v.(value.Int)] = s
	}

	samplesU32 := []uint32{0, 1, math.MaxInt32, math.MaxInt32 + 1, math.MaxUint32 - 1, math.MaxUint32}
	for _, s := range samplesU32 {
		check(field.NewUInt(s), int64(s))
	}
}

func TestTranslateUint64Overflow(t *testing.T) {
	tests := []uint64{
		math.MaxInt64 + 1,
		math.MaxInt64 + 1000,
		math.MaxUint64,
	}

	for _, input := range tests {
		t.Run(fmt.Sprint(input), func(t *testing.T) {
			v, err := Translate(field.NewULong(input))
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, IsOverflow(err))
			assert.False(t, IsUnsupported(err))

			oe, ok := err.(*OverflowError)
			require.True(t, ok)
			assert.Equal(t, "uint64", oe.SourceType)
			assert.Equal(t, "int64", oe.TargetType)
			assert.Equal(t, fmt.Sprint(input), oe.Value)
			assert.Contains(t, err.Error(), fmt.Sprint(input))
		})
	}
}

func TestTranslateUint64RoundTrips(t *testing.T) {
	inputs := []uint64{0, 1, 1 << 32, 1<<62 + 7, math.MaxInt64}
	for _, input := range inputs {
		v, err := Translate(field.NewULong(input))
		require.NoError(t, err)
		assert.Equal(t, input, uint64(v.(value.Int)))
	}
}

func TestTranslateDates(t *testing.T) {
	tests := []struct {
		days     int32
		expected string
	}{
		{0, "1970-01-01T00:00:00Z"},
		{1, "1970-01-02T00:00:00Z"},
		{-1, "1969-12-31T00:00:00Z"},
		{18628, "2021-01-01T00:00:00Z"},
		{-719162, "0001-01-01T00:00:00Z"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			v, err := Translate(field.NewDate(test.days))
			require.NoError(t, err)

			ts := time.Time(v.(value.Timestamp))
			assert.Equal(t, test.expected, ts.Format(time.RFC3339))
			assert.Equal(t, int64(test.days)*secondsPerDay, ts.Unix())
			assert.Zero(t, ts.Hour())
			assert.Zero(t, ts.Minute())
			assert.Zero(t, ts.Second())
			assert.Zero(t, ts.Nanosecond())

			_, offset := ts.Zone()
			assert.Zero(t, offset)
		})
	}
}

func TestTranslateDateExtremes(t *testing.T) {
	for _, days := range []int32{math.MinInt32, math.MaxInt32} {
		v, err := Translate(field.NewDate(days))
		require.NoError(t, err)

		ts := time.Time(v.(value.Timestamp))
		assert.Equal(t, int64(days)*secondsPerDay, ts.Unix())
	}
}

func TestTranslateTimestampsRoundTrip(t *testing.T) {
	inputs := []int64{0, 1, -1, 999, 1_000_000, 1609459200123, -62135596800000, math.MaxInt64 / 1000, math.MinInt64 / 1000}

	for _, input := range inputs {
		t.Run(fmt.Sprint(input), func(t *testing.T) {
			v, err := Translate(field.NewTimestampMillis(input))
			require.NoError(t, err)
			assert.Equal(t, input, time.Time(v.(value.Timestamp)).UnixMilli())

			v, err = Translate(field.NewTimestampMicros(input))
			require.NoError(t, err)
			assert.Equal(t, input, time.Time(v.(value.Timestamp)).UnixMicro())

			v, err = Translate(field.NewTimestampNanos(input))
			require.NoError(t, err)
			assert.Equal(t, input, time.Time(v.(value.Timestamp)).UnixNano())
		})
	}
}

func TestTranslateTimestampValues(t *testing.T) {
	v, err := Translate(field.NewTimestampMillis(1500))
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:01.5Z", v.HumanReadableString())

	v, err = Translate(field.NewTimestampMicros(1))
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00.000001Z", v.HumanReadableString())

	v, err = Translate(field.NewTimestampMicros(-1))
	require.NoError(t, err)
	assert.Equal(t, "1969-12-31T23:59:59.999999Z", v.HumanReadableString())
}

func TestTranslateUnsupported(t *testing.T) {
	tests := []struct {
		input  field.Field
		kind   string
		detail string
	}{
		{field.NewDecimal([]byte{0x04, 0xd2}, 9, 2), "decimal", "12.34"},
		{field.NewDecimal([]byte{0xfb, 0x2e}, 9, 2), "decimal", "-12.34"},
		{field.NewGroup(), "group", ""},
		{field.NewList(), "list", ""},
		{field.NewMap(), "map", ""},
	}

	for _, test := range tests {
		t.Run(test.kind, func(t *testing.T) {
			v, err := Translate(test.input)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, IsUnsupported(err))
			assert.False(t, IsOverflow(err))

			ue, ok := err.(*UnsupportedError)
			require.True(t, ok)
			assert.Equal(t, test.kind, ue.Kind)
			assert.Equal(t, test.detail, ue.Detail)
		})
	}
}

func TestTranslateHandlesEveryKind(t *testing.T) {
	samples := map[field.Kind]field.Field{
		field.NullKind:            field.Null,
		field.BoolKind:            field.NewBool(true),
		field.ByteKind:            field.NewByte(1),
		field.UByteKind:           field.NewUByte(1),
		field.ShortKind:           field.NewShort(1),
		field.UShortKind:          field.NewUShort(1),
		field.IntKind:             field.NewInt(1),
		field.UIntKind:            field.NewUInt(1),
		field.LongKind:            field.NewLong(1),
		field.ULongKind:           field.NewULong(1),
		field.FloatKind:           field.NewFloat(1),
		field.DoubleKind:          field.NewDouble(1),
		field.StrKind:             field.NewStr("a"),
		field.BytesKind:           field.NewBytes([]byte("a")),
		field.DateKind:            field.NewDate(1),
		field.TimestampMillisKind: field.NewTimestampMillis(1),
		field.TimestampMicrosKind: field.NewTimestampMicros(1),
		field.TimestampNanosKind:  field.NewTimestampNanos(1),
		field.DecimalKind:         field.NewDecimal([]byte{1}, 1, 0),
		field.GroupKind:           field.NewGroup(),
		field.ListKind:            field.NewList(),
		field.MapKind:             field.NewMap(),
	}

	for _, k := range field.AllKinds() {
		f, ok := samples[k]
		require.True(t, ok, "no sample for kind %s, add one and a conversion", k.String())
		require.Equal(t, k, f.Kind())

		_, err := Translate(f)
		if err != nil {
			assert.False(t, ErrUnknownFieldKind.Is(err), "kind %s is not handled", k.String())
			assert.True(t, IsConversionError(err), "kind %s returned unexpected error %v", k.String(), err)
		}
	}
}

func TestTranslateByteAsInt(t *testing.T) {
	tr := NewTranslator(Options{ByteMode: ByteAsInt})

	v, err := tr.Translate(field.NewByte(-3))
	require.NoError(t, err)
	assert.Equal(t, value.Int(-3), v)

	v, err = tr.Translate(field.NewUByte(255))
	require.NoError(t, err)
	assert.Equal(t, value.Int(255), v)
}

func TestTranslateNumberAsDecimal(t *testing.T) {
	tr := NewTranslator(Options{NumberMode: NumberAsDecimal})

	tests := []struct {
		input    field.Field
		expected string
	}{
		{field.NewFloat(0.1), "0.1"},
		{field.NewFloat(1.5), "1.5"},
		{field.NewDouble(0.1), "0.1"},
		{field.NewDouble(-123.456), "-123.456"},
		{field.NewDouble(0), "0"},
		{field.NewDouble(math.MaxFloat64), decimal.NewFromFloat(math.MaxFloat64).String()},
		{field.NewDouble(math.SmallestNonzeroFloat64), decimal.NewFromFloat(math.SmallestNonzeroFloat64).String()},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			v, err := tr.Translate(test.input)
			require.NoError(t, err)
			require.Equal(t, value.DecimalKind, v.Kind())
			assert.Equal(t, test.expected, decimal.Decimal(v.(value.Decimal)).String())
		})
	}

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := tr.Translate(field.NewDouble(f))
		require.Error(t, err)
		assert.True(t, IsOverflow(err))
		assert.Equal(t, "decimal", err.(*OverflowError).TargetType)
	}

	_, err := tr.Translate(field.NewFloat(float32(math.Inf(-1))))
	require.Error(t, err)
	assert.Equal(t, "float32", err.(*OverflowError).SourceType)
}

func TestTranslateCopiesBytes(t *testing.T) {
	b := []byte{1, 2, 3}
	f := field.NewBytes(b)
	v, err := Translate(f)
	require.NoError(t, err)

	b[0] = 9
	f.Bytes()[1] = 9
	assert.Equal(t, value.Binary{1, 2, 3}, v)
}

func TestParseModes(t *testing.T) {
	bm, err := ParseByteMode("INT")
	require.NoError(t, err)
	assert.Equal(t, ByteAsInt, bm)

	bm, err = ParseByteMode("")
	require.NoError(t, err)
	assert.Equal(t, ByteAsBinary, bm)

	_, err = ParseByteMode("nibble")
	assert.Error(t, err)

	nm, err := ParseNumberMode("decimal")
	require.NoError(t, err)
	assert.Equal(t, NumberAsDecimal, nm)

	_, err = ParseNumberMode("bignum")
	assert.Error(t, err)
}
