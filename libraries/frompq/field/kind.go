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

package field

// Kind is the physical or logical type tag of a Field as produced by the parquet row source.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	ByteKind
	UByteKind
	ShortKind
	UShortKind
	IntKind
	UIntKind
	LongKind
	ULongKind
	FloatKind
	DoubleKind
	StrKind
	BytesKind
	DateKind
	TimestampMillisKind
	TimestampMicrosKind
	TimestampNanosKind
	DecimalKind
	GroupKind
	ListKind
	MapKind

	// numKinds must remain last
	numKinds
)

var kindNames = [numKinds]string{
	NullKind:            "null",
	BoolKind:            "bool",
	ByteKind:            "int8",
	UByteKind:           "uint8",
	ShortKind:           "int16",
	UShortKind:          "uint16",
	IntKind:             "int32",
	UIntKind:            "uint32",
	LongKind:            "int64",
	ULongKind:           "uint64",
	FloatKind:           "float32",
	DoubleKind:          "float64",
	StrKind:             "string",
	BytesKind:           "bytes",
	DateKind:            "date",
	TimestampMillisKind: "timestamp_millis",
	TimestampMicrosKind: "timestamp_micros",
	TimestampNanosKind:  "timestamp_nanos",
	DecimalKind:         "decimal",
	GroupKind:           "group",
	ListKind:            "list",
	MapKind:             "map",
}

// String returns the type name used in error messages.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// IsValid returns true if |k| is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k < numKinds
}

// AllKinds returns every declared kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// IsNested returns true for the kinds that hold other fields rather than a single value.
func IsNested(k Kind) bool {
	switch k {
	case GroupKind, ListKind, MapKind:
		return true
	default:
		return false
	}
}
