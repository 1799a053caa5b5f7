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

// Column is a single (name, field) pair of a Row.
type Column struct {
	Name  string
	Field Field
}

// Row is an ordered sequence of columns. The order is the schema order of the file the row was read from.
type Row []Column

// NewRow returns a row from alternating names and fields. It panics if the arguments are not name/field pairs.
func NewRow(namesAndFields ...interface{}) Row {
	if len(namesAndFields)%2 != 0 {
		panic("NewRow requires name, field pairs")
	}

	r := make(Row, 0, len(namesAndFields)/2)
	for i := 0; i < len(namesAndFields); i += 2 {
		r = append(r, Column{namesAndFields[i].(string), namesAndFields[i+1].(Field)})
	}

	return r
}

// Names returns the column names of the row in order.
func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Name
	}

	return names
}
