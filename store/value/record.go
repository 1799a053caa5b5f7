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
	"strings"
)

// Field is a single named entry of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered sequence of named values. Names are not required to be unique, and the order in which fields
// were added is preserved.
type Record struct {
	fields []Field
}

// NewRecord returns a Record holding a copy of |fields|.
func NewRecord(fields ...Field) Record {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return Record{cp}
}

// NewRecordFromCols returns a Record pairing |cols| with |vals| positionally. It panics if the lengths differ.
func NewRecordFromCols(cols []string, vals []Value) Record {
	if len(cols) != len(vals) {
		panic("column and value counts must match")
	}

	fields := make([]Field, len(cols))
	for i := range cols {
		fields[i] = Field{cols[i], vals[i]}
	}

	return Record{fields}
}

func (r Record) Kind() Kind {
	return RecordKind
}

// Len returns the number of fields in the record
func (r Record) Len() int {
	return len(r.fields)
}

// FieldAt returns the field at position |i|.
func (r Record) FieldAt(i int) Field {
	return r.fields[i]
}

// Get returns the value of the first field named |name|.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Names returns the field names in record order.
func (r Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}

	return names
}

// Iter calls |cb| for every field in order until |cb| returns true or an error.
func (r Record) Iter(cb func(name string, v Value) (stop bool, err error)) error {
	for _, f := range r.fields {
		stop, err := cb(f.Name, f.Value)
		if err != nil {
			return err
		}

		if stop {
			break
		}
	}

	return nil
}

func (r Record) Equals(other Value) bool {
	r2, ok := other.(Record)
	if !ok || len(r.fields) != len(r2.fields) {
		return false
	}

	for i := range r.fields {
		f, f2 := r.fields[i], r2.fields[i]
		if f.Name != f2.Name {
			return false
		}

		if IsNull(f.Value) || IsNull(f2.Value) {
			if IsNull(f.Value) != IsNull(f2.Value) {
				return false
			}
			continue
		}

		if !f.Value.Equals(f2.Value) {
			return false
		}
	}

	return true
}

func (r Record) HumanReadableString() string {
	sb := strings.Builder{}
	sb.WriteString("{")
	for i, f := range r.fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(humanReadable(f.Value))
	}
	sb.WriteString("}")

	return sb.String()
}

// RecordList is the aggregate result of decoding a file: one record per row, in row order.
type RecordList struct {
	records []Record
}

// NewRecordList returns a RecordList holding a copy of |records|.
func NewRecordList(records ...Record) RecordList {
	cp := make([]Record, len(records))
	copy(cp, records)
	return RecordList{cp}
}

// EmptyRecordList is the result of decoding a file with no rows.
var EmptyRecordList = RecordList{records: []Record{}}

func (l RecordList) Kind() Kind {
	return RecordListKind
}

// Len returns the number of records in the list
func (l RecordList) Len() int {
	return len(l.records)
}

// Get returns the record at position |i|
func (l RecordList) Get(i int) Record {
	return l.records[i]
}

// Iter calls |cb| for every record in order until |cb| returns true or an error.
func (l RecordList) Iter(cb func(i int, r Record) (stop bool, err error)) error {
	for i, r := range l.records {
		stop, err := cb(i, r)
		if err != nil {
			return err
		}

		if stop {
			break
		}
	}

	return nil
}

// Columns returns the union of field names across all records, in order of first appearance.
func (l RecordList) Columns() []string {
	seen := make(map[string]struct{})
	var cols []string
	for _, r := range l.records {
		for _, f := range r.fields {
			if _, ok := seen[f.Name]; !ok {
				seen[f.Name] = struct{}{}
				cols = append(cols, f.Name)
			}
		}
	}

	return cols
}

func (l RecordList) Equals(other Value) bool {
	l2, ok := other.(RecordList)
	if !ok || len(l.records) != len(l2.records) {
		return false
	}

	for i := range l.records {
		if !l.records[i].Equals(l2.records[i]) {
			return false
		}
	}

	return true
}

func (l RecordList) HumanReadableString() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, r := range l.records {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.HumanReadableString())
	}
	sb.WriteString("]")

	return sb.String()
}

// RecordListBuilder accumulates records for a RecordList. The builder must not be used after Build is called.
type RecordListBuilder struct {
	records []Record
	built   bool
}

// NewRecordListBuilder returns a builder with capacity for |sizeHint| records.
func NewRecordListBuilder(sizeHint int) *RecordListBuilder {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &RecordListBuilder{records: make([]Record, 0, sizeHint)}
}

// Append adds |r| to the end of the list being built.
func (b *RecordListBuilder) Append(r Record) {
	if b.built {
		panic("append after build")
	}

	b.records = append(b.records, r)
}

// Len returns the number of records appended so far.
func (b *RecordListBuilder) Len() int {
	return len(b.records)
}

// Build returns the completed list. Ownership of the accumulated records moves to the returned list.
func (b *RecordListBuilder) Build() RecordList {
	b.built = true
	return RecordList{b.records}
}

func humanReadable(v Value) string {
	if v == nil {
		return NullValue.HumanReadableString()
	}
	return v.HumanReadableString()
}
