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
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/dolthub/frompq/libraries/frompq/field"
)

type person struct {
	Name   string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Age    int32   `parquet:"name=age, type=INT32"`
	Tiny   int32   `parquet:"name=tiny, type=INT32, convertedtype=INT_8"`
	UTiny  int32   `parquet:"name=utiny, type=INT32, convertedtype=UINT_8"`
	Short  int32   `parquet:"name=short, type=INT32, convertedtype=INT_16"`
	Big    int64   `parquet:"name=big, type=INT64, convertedtype=UINT_64"`
	Weight float32 `parquet:"name=weight, type=FLOAT"`
	Score  float64 `parquet:"name=score, type=DOUBLE"`
	Ok     bool    `parquet:"name=ok, type=BOOLEAN"`
	Day    int32   `parquet:"name=day, type=INT32, convertedtype=DATE"`
	Ts     int64   `parquet:"name=ts, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	TsUs   int64   `parquet:"name=ts_us, type=INT64, convertedtype=TIMESTAMP_MICROS"`
	Blob   string  `parquet:"name=blob, type=BYTE_ARRAY"`
	Nick   *string `parquet:"name=nick, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

type withList struct {
	ID   int64   `parquet:"name=id, type=INT64"`
	Tags []int32 `parquet:"name=tags, type=INT32, repetitiontype=REPEATED"`
	Last string  `parquet:"name=last, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func writeParquet(t *testing.T, obj interface{}, rows ...interface{}) []byte {
	fw, err := buffer.NewBufferFile(nil)
	require.NoError(t, err)

	pw, err := writer.NewParquetWriter(fw, obj, 1)
	require.NoError(t, err)

	for _, r := range rows {
		require.NoError(t, pw.Write(r))
	}

	require.NoError(t, pw.WriteStop())
	return fw.(buffer.BufferFile).Bytes()
}

func strPtr(s string) *string {
	return &s
}

func readAll(t *testing.T, rd *ParquetReader) []field.Row {
	ctx := context.Background()

	var rows []field.Row
	for {
		r, err := rd.ReadRow(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows = append(rows, r)
	}

	return rows
}

func TestReadPrimitiveColumns(t *testing.T) {
	data := writeParquet(t, new(person),
		person{"Ann", 30, -3, 200, -300, -1, 1.5, 2.25, true, 19000, 1600000000000, 1600000000000123, "\x00\x01", strPtr("annie")},
		person{"Bob", 41, 7, 7, 7, 42, 0, -1, false, -1, 0, 0, "", nil},
	)

	rd, err := NewParquetReaderFromBytes(data)
	require.NoError(t, err)
	defer rd.Close(context.Background())

	assert.Equal(t, int64(2), rd.NumRows())
	assert.Equal(t, []ColumnInfo{
		{"name", field.StrKind},
		{"age", field.IntKind},
		{"tiny", field.ByteKind},
		{"utiny", field.UByteKind},
		{"short", field.ShortKind},
		{"big", field.ULongKind},
		{"weight", field.FloatKind},
		{"score", field.DoubleKind},
		{"ok", field.BoolKind},
		{"day", field.DateKind},
		{"ts", field.TimestampMillisKind},
		{"ts_us", field.TimestampMicrosKind},
		{"blob", field.BytesKind},
		{"nick", field.StrKind},
	}, rd.Columns())

	rows := readAll(t, rd)
	require.Len(t, rows, 2)

	expected := field.NewRow(
		"name", field.NewStr("Ann"),
		"age", field.NewInt(30),
		"tiny", field.NewByte(-3),
		"utiny", field.NewUByte(200),
		"short", field.NewShort(-300),
		"big", field.NewULong(^uint64(0)),
		"weight", field.NewFloat(1.5),
		"score", field.NewDouble(2.25),
		"ok", field.NewBool(true),
		"day", field.NewDate(19000),
		"ts", field.NewTimestampMillis(1600000000000),
		"ts_us", field.NewTimestampMicros(1600000000000123),
		"blob", field.NewBytes([]byte{0, 1}),
		"nick", field.NewStr("annie"),
	)

	require.Len(t, rows[0], len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Name, rows[0][i].Name)
		assert.True(t, expected[i].Field.Equals(rows[0][i].Field), "column %s: %v", expected[i].Name, rows[0][i].Field)
	}

	assert.Equal(t, field.NullKind, rows[1][13].Field.Kind())
	assert.Equal(t, field.DateKind, rows[1][9].Field.Kind())
	assert.Equal(t, int64(-1), rows[1][9].Field.Int64())

	_, err = rd.ReadRow(context.Background())
	assert.Equal(t, io.EOF, err)
}

func TestReadAcrossBatches(t *testing.T) {
	orig := ReadBatchSize
	ReadBatchSize = 7
	defer func() { ReadBatchSize = orig }()

	var rows []interface{}
	for i := 0; i < 50; i++ {
		rows = append(rows, person{Name: "p", Age: int32(i)})
	}

	rd, err := NewParquetReaderFromBytes(writeParquet(t, new(person), rows...))
	require.NoError(t, err)
	defer rd.Close(context.Background())

	read := readAll(t, rd)
	require.Len(t, read, 50)
	for i, r := range read {
		assert.Equal(t, int64(i), r[1].Field.Int64())
	}
}

func TestRepeatedColumnIsList(t *testing.T) {
	data := writeParquet(t, new(withList),
		withList{ID: 1, Tags: []int32{1, 2, 3}, Last: "x"},
		withList{ID: 2, Last: "y"},
	)

	rd, err := NewParquetReaderFromBytes(data)
	require.NoError(t, err)
	defer rd.Close(context.Background())

	assert.Equal(t, []ColumnInfo{
		{"id", field.LongKind},
		{"tags", field.ListKind},
		{"last", field.StrKind},
	}, rd.Columns())

	rows := readAll(t, rd)
	require.Len(t, rows, 2)
	assert.Equal(t, field.ListKind, rows[0][1].Field.Kind())
	assert.Equal(t, "x", rows[0][2].Field.Str())
	assert.Equal(t, "y", rows[1][2].Field.Str())
}

func TestOpenParquetReader(t *testing.T) {
	data := writeParquet(t, new(person), person{Name: "Ann", Age: 30})

	path := filepath.Join(t.TempDir(), "people.parquet")
	require.NoError(t, os.WriteFile(path, data, 0644))

	rd, err := OpenParquetReader(path)
	require.NoError(t, err)

	rows := readAll(t, rd)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ann", rows[0][0].Field.Str())

	require.NoError(t, rd.Close(context.Background()))
	assert.Error(t, rd.Close(context.Background()))

	_, err = rd.ReadRow(context.Background())
	assert.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := OpenParquetReader(filepath.Join(t.TempDir(), "missing.parquet"))
	assert.Error(t, err)
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte("PAR1")},
		{"not parquet", []byte("this is certainly not a parquet file at all")},
		{"bad footer", append([]byte("PAR1garbagegarbage"), []byte{0xff, 0xff, 0, 0, 'P', 'A', 'R', '1'}...)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewParquetReaderFromBytes(test.data)
			assert.Error(t, err)
		})
	}
}
