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
	"github.com/xitongsys/parquet-go/parquet"
)

// annotation is the logical interpretation of a primitive column, unified across the legacy converted types and the
// newer logical types.
type annotation int

const (
	annNone annotation = iota
	annString
	annInt8
	annUint8
	annInt16
	annUint16
	annInt32
	annUint32
	annInt64
	annUint64
	annDate
	annDecimal
	annTimestampMillis
	annTimestampMicros
	annTimestampNanos
	annOther
)

var convertedToAnnotation = map[parquet.ConvertedType]annotation{
	parquet.ConvertedType_UTF8:             annString,
	parquet.ConvertedType_ENUM:             annString,
	parquet.ConvertedType_JSON:             annString,
	parquet.ConvertedType_INT_8:            annInt8,
	parquet.ConvertedType_UINT_8:           annUint8,
	parquet.ConvertedType_INT_16:           annInt16,
	parquet.ConvertedType_UINT_16:          annUint16,
	parquet.ConvertedType_INT_32:           annInt32,
	parquet.ConvertedType_UINT_32:          annUint32,
	parquet.ConvertedType_INT_64:           annInt64,
	parquet.ConvertedType_UINT_64:          annUint64,
	parquet.ConvertedType_DATE:             annDate,
	parquet.ConvertedType_DECIMAL:          annDecimal,
	parquet.ConvertedType_TIMESTAMP_MILLIS: annTimestampMillis,
	parquet.ConvertedType_TIMESTAMP_MICROS: annTimestampMicros,
}

// annotationOf prefers the converted type when present, since writers that set a logical type also set the
// equivalent converted type where one exists. Logical types without a converted equivalent, such as nanosecond
// timestamps, are only found on the logical type.
func annotationOf(elem *parquet.SchemaElement) annotation {
	if elem.IsSetConvertedType() {
		if ann, ok := convertedToAnnotation[elem.GetConvertedType()]; ok {
			return ann
		}
		return annOther
	}

	if !elem.IsSetLogicalType() {
		return annNone
	}

	lt := elem.GetLogicalType()
	switch {
	case lt.IsSetSTRING(), lt.IsSetENUM(), lt.IsSetJSON():
		return annString
	case lt.IsSetDATE():
		return annDate
	case lt.IsSetDECIMAL():
		return annDecimal
	case lt.IsSetTIMESTAMP():
		unit := lt.GetTIMESTAMP().GetUnit()
		switch {
		case unit.IsSetMILLIS():
			return annTimestampMillis
		case unit.IsSetMICROS():
			return annTimestampMicros
		case unit.IsSetNANOS():
			return annTimestampNanos
		}
	case lt.IsSetINTEGER():
		it := lt.GetINTEGER()
		switch {
		case it.GetBitWidth() == 8 && it.GetIsSigned():
			return annInt8
		case it.GetBitWidth() == 8:
			return annUint8
		case it.GetBitWidth() == 16 && it.GetIsSigned():
			return annInt16
		case it.GetBitWidth() == 16:
			return annUint16
		case it.GetBitWidth() == 32 && it.GetIsSigned():
			return annInt32
		case it.GetBitWidth() == 32:
			return annUint32
		case it.GetBitWidth() == 64 && it.GetIsSigned():
			return annInt64
		case it.GetBitWidth() == 64:
			return annUint64
		}
	}

	return annOther
}
