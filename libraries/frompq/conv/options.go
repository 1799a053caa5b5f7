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
	"strings"
)

// ByteMode determines how 8 bit integer fields are represented.
type ByteMode int

const (
	// ByteAsBinary converts 8 bit integers to a one byte Binary holding the raw bit pattern. Consumers of the value
	// model have historically relied on this representation, so it is the default.
	ByteAsBinary ByteMode = iota
	// ByteAsInt converts 8 bit integers to Int.
	ByteAsInt
)

// NumberMode determines how floating point fields are represented.
type NumberMode int

const (
	// NumberAsFloat converts FLOAT and DOUBLE fields to Float. float32 values are widened exactly, and NaN and the
	// infinities are preserved.
	NumberAsFloat NumberMode = iota
	// NumberAsDecimal converts FLOAT and DOUBLE fields to Decimal using the shortest decimal representation that
	// round trips to the source float. Non-finite values fail with an *OverflowError.
	NumberAsDecimal
)

var byteModeNames = map[ByteMode]string{
	ByteAsBinary: "binary",
	ByteAsInt:    "int",
}

var numberModeNames = map[NumberMode]string{
	NumberAsFloat:   "float",
	NumberAsDecimal: "decimal",
}

func (m ByteMode) String() string {
	return byteModeNames[m]
}

func (m NumberMode) String() string {
	return numberModeNames[m]
}

// ByteModeNames returns the accepted names of ByteMode values.
func ByteModeNames() []string {
	return []string{byteModeNames[ByteAsBinary], byteModeNames[ByteAsInt]}
}

// NumberModeNames returns the accepted names of NumberMode values.
func NumberModeNames() []string {
	return []string{numberModeNames[NumberAsFloat], numberModeNames[NumberAsDecimal]}
}

// ParseByteMode parses the name of a ByteMode. The empty string is the default mode.
func ParseByteMode(s string) (ByteMode, error) {
	if s == "" {
		return ByteAsBinary, nil
	}

	for m, name := range byteModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("'%s' is not a valid byte mode. valid options are: %s", s, strings.Join(ByteModeNames(), "|"))
}

// ParseNumberMode parses the name of a NumberMode. The empty string is the default mode.
func ParseNumberMode(s string) (NumberMode, error) {
	if s == "" {
		return NumberAsFloat, nil
	}

	for m, name := range numberModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("'%s' is not a valid number mode. valid options are: %s", s, strings.Join(NumberModeNames(), "|"))
}

// Options configures a Translator. The zero value is the default behavior.
type Options struct {
	ByteMode   ByteMode
	NumberMode NumberMode
}
