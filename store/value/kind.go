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

// Kind identifies which variant of the value model a Value holds.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	DecimalKind
	StringKind
	BinaryKind
	TimestampKind
	RecordKind
	RecordListKind

	UnknownKind Kind = 255
)

var KindToString = map[Kind]string{
	UnknownKind:    "unknown",
	NullKind:       "Null",
	BoolKind:       "Bool",
	IntKind:        "Int",
	FloatKind:      "Float",
	DecimalKind:    "Decimal",
	StringKind:     "String",
	BinaryKind:     "Binary",
	TimestampKind:  "Timestamp",
	RecordKind:     "Record",
	RecordListKind: "RecordList",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if s, ok := KindToString[k]; ok {
		return s
	}
	return KindToString[UnknownKind]
}

// IsPrimitiveKind returns true for every kind that is not a container of other values.
func IsPrimitiveKind(k Kind) bool {
	switch k {
	case NullKind, BoolKind, IntKind, FloatKind, DecimalKind, StringKind, BinaryKind, TimestampKind:
		return true
	default:
		return false
	}
}
