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
	"bufio"
	"io"
	"strings"
)

// PrintedNull is the text printed in a table cell for a null value.
const PrintedNull = "<NULL>"

// WriteTable writes |l| to |wr| as a text table with one column per distinct field name, in order of first
// appearance. Cells of records that lack a column are left blank.
func WriteTable(wr io.Writer, l RecordList) error {
	cols := l.Columns()
	if len(cols) == 0 {
		return nil
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = StringWidth(col)
	}

	cells := make([][]string, l.Len())
	for i, r := range l.records {
		row := make([]string, len(cols))
		for j, col := range cols {
			if v, ok := r.Get(col); ok {
				row[j] = cellText(v)
			}

			if w := StringWidth(row[j]); w > widths[j] {
				widths[j] = w
			}
		}
		cells[i] = row
	}

	bw := bufio.NewWriter(wr)
	sep := separator(widths)

	bw.WriteString(sep)
	writeTableRow(bw, cols, widths)
	bw.WriteString(sep)
	for _, row := range cells {
		writeTableRow(bw, row, widths)
	}
	bw.WriteString(sep)

	return bw.Flush()
}

func cellText(v Value) string {
	if IsNull(v) {
		return PrintedNull
	}

	var s string
	if str, ok := v.(String); ok {
		s = string(str)
	} else {
		s = v.HumanReadableString()
	}

	return strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(s)
}

func separator(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')

	return sb.String()
}

func writeTableRow(bw *bufio.Writer, row []string, widths []int) {
	bw.WriteByte('|')
	for i, s := range row {
		bw.WriteByte(' ')
		bw.WriteString(s)
		bw.WriteString(strings.Repeat(" ", widths[i]-StringWidth(s)+1))
		bw.WriteByte('|')
	}
	bw.WriteByte('\n')
}
