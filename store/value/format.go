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
	"fmt"
	"io"
	"strings"
)

// Format is an output encoding for a RecordList.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	TextFormat
)

var formatNames = []string{"json", "yaml", "text"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// FormatNames returns the accepted names of Format values.
func FormatNames() []string {
	return append([]string(nil), formatNames...)
}

// ParseFormat parses a format name. The empty string is JSONFormat.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return JSONFormat, nil
	}

	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("'%s' is not a valid format. valid options are: %s", s, strings.Join(formatNames, "|"))
}

// Write encodes |l| to |wr| in format |f|. JSON output is indented.
func Write(wr io.Writer, f Format, l RecordList) error {
	switch f {
	case JSONFormat:
		return WriteJSON(wr, l, "  ")
	case YAMLFormat:
		return WriteYAML(wr, l)
	case TextFormat:
		return WriteTable(wr, l)
	}

	return fmt.Errorf("unknown format %d", int(f))
}
