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

// Package conv converts typed parquet fields into values of the dynamic value model.
package conv

import (
	"github.com/dolthub/frompq/libraries/frompq/field"
	"github.com/dolthub/frompq/store/value"
)

// Translator converts fields to values. It holds no mutable state and is safe for concurrent use.
type Translator struct {
	opts Options
}

// NewTranslator returns a Translator configured with |opts|.
func NewTranslator(opts Options) Translator {
	return Translator{opts}
}

// Options returns the options the translator was created with.
func (t Translator) Options() Options {
	return t.opts
}

var defaultTranslator = NewTranslator(Options{})

// Translate converts |f| using the default options.
func Translate(f field.Field) (value.Value, error) {
	return defaultTranslator.Translate(f)
}

// Translate converts a single field. Every kind either converts or fails with a typed error; no input is ever
// replaced with a default value.
func (t Translator) Translate(f field.Field) (value.Value, error) {
	switch f.Kind() {
	case field.NullKind:
		return value.NullValue, nil
	case field.BoolKind:
		return value.Bool(f.Bool()), nil

	case field.ByteKind:
		if t.opts.ByteMode == ByteAsInt {
			return value.Int(f.Int64()), nil
		}
		return value.Binary{byte(int8(f.Int64()))}, nil
	case field.UByteKind:
		if t.opts.ByteMode == ByteAsInt {
			return value.Int(f.Uint64()), nil
		}
		return value.Binary{byte(f.Uint64())}, nil

	case field.ShortKind, field.IntKind, field.LongKind:
		return value.Int(f.Int64()), nil
	case field.UShortKind, field.UIntKind:
		// at most 32 bits wide, always fits
		return value.Int(int64(f.Uint64())), nil
	case field.ULongKind:
		n, err := uint64ToInt64(f.Uint64())
		if err != nil {
			return nil, err
		}
		return value.Int(n), nil

	case field.FloatKind:
		return t.convFloat(f.Float64(), 32)
	case field.DoubleKind:
		return t.convFloat(f.Float64(), 64)

	case field.StrKind:
		return value.String(f.Str()), nil
	case field.BytesKind:
		return value.NewBinary(f.Bytes()), nil

	case field.DateKind:
		return value.Timestamp(daysToTime(f.Int64())), nil
	case field.TimestampMillisKind:
		return value.Timestamp(millisToTime(f.Int64())), nil
	case field.TimestampMicrosKind:
		return value.Timestamp(microsToTime(f.Int64())), nil
	case field.TimestampNanosKind:
		return value.Timestamp(nanosToTime(f.Int64())), nil

	case field.DecimalKind:
		return nil, &UnsupportedError{Kind: field.DecimalKind.String(), Detail: unscaledToString(f.Bytes(), f.Scale())}
	case field.GroupKind:
		return nil, &UnsupportedError{Kind: field.GroupKind.String()}
	case field.ListKind:
		return nil, &UnsupportedError{Kind: field.ListKind.String()}
	case field.MapKind:
		return nil, &UnsupportedError{Kind: field.MapKind.String()}
	}

	return nil, ErrUnknownFieldKind.New(f.Kind())
}

func (t Translator) convFloat(f float64, bitSize int) (value.Value, error) {
	if t.opts.NumberMode == NumberAsDecimal {
		d, err := floatToDecimal(f, bitSize)
		if err != nil {
			return nil, err
		}
		return value.Decimal(d), nil
	}

	return value.Float(f), nil
}
