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

package parquet

import (
	"encoding/binary"
	"fmt"

	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/types"

	"github.com/dolthub/frompq/libraries/frompq/field"
)

// ColumnInfo describes a top level column of a parquet file.
type ColumnInfo struct {
	Name string
	Kind field.Kind
}

// fieldConv converts a non-nil physical value read from a leaf column into a Field.
type fieldConv func(v interface{}) (field.Field, error)

type column struct {
	info ColumnInfo
	// leaf is the index of the column in the file's leaf columns, or -1 for nested columns, which are not read
	leaf int
	conv fieldConv
	buf  []interface{}
}

// columnsFromSchema walks the flattened schema of a file, in which every group element is followed by its children,
// and returns one column per child of the root element. |names| holds the name of each element as written in the
// file.
func columnsFromSchema(elems []*parquet.SchemaElement, names []string) ([]column, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("parquet file has an empty schema")
	}

	root := elems[0]
	numTop := int(root.GetNumChildren())

	cols := make([]column, 0, numTop)
	pos, leaf := 1, 0
	for i := 0; i < numTop; i++ {
		if pos >= len(elems) {
			return nil, fmt.Errorf("parquet schema declares %d columns but only has %d elements", numTop, len(elems))
		}

		elem := elems[pos]
		next, leaves, err := skipElement(elems, pos)
		if err != nil {
			return nil, err
		}

		col := column{info: ColumnInfo{Name: names[pos]}, leaf: -1}
		if isGroup(elem) || elem.GetRepetitionType() == parquet.FieldRepetitionType_REPEATED {
			col.info.Kind = nestedKind(elem)
		} else {
			col.leaf = leaf
			col.info.Kind, col.conv, err = leafConv(elem, names[pos])
			if err != nil {
				return nil, err
			}
		}

		cols = append(cols, col)
		pos = next
		leaf += leaves
	}

	return cols, nil
}

// skipElement returns the position of the element after the subtree rooted at |pos| and the number of leaves in it.
func skipElement(elems []*parquet.SchemaElement, pos int) (next int, leaves int, err error) {
	if pos >= len(elems) {
		return 0, 0, fmt.Errorf("parquet schema is truncated at element %d", pos)
	}

	elem := elems[pos]
	if !isGroup(elem) {
		return pos + 1, 1, nil
	}

	next = pos + 1
	for i := 0; i < int(elem.GetNumChildren()); i++ {
		var childLeaves int
		next, childLeaves, err = skipElement(elems, next)
		if err != nil {
			return 0, 0, err
		}
		leaves += childLeaves
	}

	return next, leaves, nil
}

func isGroup(elem *parquet.SchemaElement) bool {
	return elem.GetNumChildren() > 0 || !elem.IsSetType()
}

func nestedKind(elem *parquet.SchemaElement) field.Kind {
	if elem.IsSetConvertedType() {
		switch elem.GetConvertedType() {
		case parquet.ConvertedType_LIST:
			return field.ListKind
		case parquet.ConvertedType_MAP, parquet.ConvertedType_MAP_KEY_VALUE:
			return field.MapKind
		}
	}

	if elem.IsSetLogicalType() {
		lt := elem.GetLogicalType()
		if lt.IsSetLIST() {
			return field.ListKind
		} else if lt.IsSetMAP() {
			return field.MapKind
		}
	}

	// an unannotated repeated field is a list of its element type
	if elem.GetRepetitionType() == parquet.FieldRepetitionType_REPEATED {
		return field.ListKind
	}

	return field.GroupKind
}

// leafConv determines the field kind of a primitive column from its physical type and its converted or logical type
// annotation, and returns the function that converts values read from the column.
func leafConv(elem *parquet.SchemaElement, name string) (field.Kind, fieldConv, error) {
	ann := annotationOf(elem)

	switch elem.GetType() {
	case parquet.Type_BOOLEAN:
		return field.BoolKind, func(v interface{}) (field.Field, error) {
			b, ok := v.(bool)
			if !ok {
				return field.Field{}, unexpectedValue(name, "bool", v)
			}
			return field.NewBool(b), nil
		}, nil

	case parquet.Type_INT32:
		kind := field.IntKind
		switch ann {
		case annInt8:
			kind = field.ByteKind
		case annUint8:
			kind = field.UByteKind
		case annInt16:
			kind = field.ShortKind
		case annUint16:
			kind = field.UShortKind
		case annUint32:
			kind = field.UIntKind
		case annDate:
			kind = field.DateKind
		case annDecimal:
			kind = field.DecimalKind
		}

		precision, scale := decimalParams(elem)
		return kind, func(v interface{}) (field.Field, error) {
			n, ok := v.(int32)
			if !ok {
				return field.Field{}, unexpectedValue(name, "int32", v)
			}

			switch kind {
			case field.ByteKind:
				return field.NewByte(int8(n)), nil
			case field.UByteKind:
				return field.NewUByte(uint8(n)), nil
			case field.ShortKind:
				return field.NewShort(int16(n)), nil
			case field.UShortKind:
				return field.NewUShort(uint16(n)), nil
			case field.UIntKind:
				return field.NewUInt(uint32(n)), nil
			case field.DateKind:
				return field.NewDate(n), nil
			case field.DecimalKind:
				unscaled := make([]byte, 4)
				binary.BigEndian.PutUint32(unscaled, uint32(n))
				return field.NewDecimal(unscaled, precision, scale), nil
			}
			return field.NewInt(n), nil
		}, nil

	case parquet.Type_INT64:
		kind := field.LongKind
		switch ann {
		case annUint64:
			kind = field.ULongKind
		case annTimestampMillis:
			kind = field.TimestampMillisKind
		case annTimestampMicros:
			kind = field.TimestampMicrosKind
		case annTimestampNanos:
			kind = field.TimestampNanosKind
		case annDecimal:
			kind = field.DecimalKind
		}

		precision, scale := decimalParams(elem)
		return kind, func(v interface{}) (field.Field, error) {
			n, ok := v.(int64)
			if !ok {
				return field.Field{}, unexpectedValue(name, "int64", v)
			}

			switch kind {
			case field.ULongKind:
				return field.NewULong(uint64(n)), nil
			case field.TimestampMillisKind:
				return field.NewTimestampMillis(n), nil
			case field.TimestampMicrosKind:
				return field.NewTimestampMicros(n), nil
			case field.TimestampNanosKind:
				return field.NewTimestampNanos(n), nil
			case field.DecimalKind:
				unscaled := make([]byte, 8)
				binary.BigEndian.PutUint64(unscaled, uint64(n))
				return field.NewDecimal(unscaled, precision, scale), nil
			}
			return field.NewLong(n), nil
		}, nil

	case parquet.Type_INT96:
		// legacy impala/spark timestamps, reduced to millisecond precision
		return field.TimestampMillisKind, func(v interface{}) (field.Field, error) {
			s, ok := v.(string)
			if !ok || len(s) != 12 {
				return field.Field{}, unexpectedValue(name, "int96", v)
			}
			return field.NewTimestampMillis(types.INT96ToTime(s).UnixMilli()), nil
		}, nil

	case parquet.Type_FLOAT:
		return field.FloatKind, func(v interface{}) (field.Field, error) {
			f, ok := v.(float32)
			if !ok {
				return field.Field{}, unexpectedValue(name, "float32", v)
			}
			return field.NewFloat(f), nil
		}, nil

	case parquet.Type_DOUBLE:
		return field.DoubleKind, func(v interface{}) (field.Field, error) {
			f, ok := v.(float64)
			if !ok {
				return field.Field{}, unexpectedValue(name, "float64", v)
			}
			return field.NewDouble(f), nil
		}, nil

	case parquet.Type_BYTE_ARRAY, parquet.Type_FIXED_LEN_BYTE_ARRAY:
		kind := field.BytesKind
		if ann == annString && elem.GetType() == parquet.Type_BYTE_ARRAY {
			kind = field.StrKind
		} else if ann == annDecimal {
			kind = field.DecimalKind
		}

		precision, scale := decimalParams(elem)
		return kind, func(v interface{}) (field.Field, error) {
			s, ok := v.(string)
			if !ok {
				return field.Field{}, unexpectedValue(name, "byte array", v)
			}

			switch kind {
			case field.StrKind:
				return field.NewStr(s), nil
			case field.DecimalKind:
				return field.NewDecimal([]byte(s), precision, scale), nil
			}
			return field.NewBytes([]byte(s)), nil
		}, nil
	}

	return 0, nil, fmt.Errorf("column '%s' has unknown physical type %v", name, elem.GetType())
}

func unexpectedValue(col, expected string, v interface{}) error {
	return fmt.Errorf("column '%s': expected %s value but read %T", col, expected, v)
}

func decimalParams(elem *parquet.SchemaElement) (precision, scale int32) {
	if elem.IsSetLogicalType() && elem.GetLogicalType().IsSetDECIMAL() {
		dt := elem.GetLogicalType().GetDECIMAL()
		return dt.GetPrecision(), dt.GetScale()
	}
	return elem.GetPrecision(), elem.GetScale()
}
