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
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"

	"github.com/dolthub/frompq/libraries/frompq/field"
)

// ReadBatchSize is the number of rows read from each column at a time.
var ReadBatchSize int64 = 4096

// ReadParallelism is the number of goroutines the parquet library uses to decode pages.
var ReadParallelism int64 = 4

// ParquetReader reads the rows of a parquet file as rows of typed fields. Only top level primitive columns are read.
// Top level group, list and map columns produce a field of the matching nested kind in every row.
type ParquetReader struct {
	file    source.ParquetFile
	pr      *reader.ParquetReader
	cols    []column
	numRows int64
	read    int64
	pos     int
	n       int
}

// OpenParquetReader opens the parquet file at |path| on the local filesystem.
func OpenParquetReader(path string) (*ParquetReader, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}

	rd, err := NewParquetReader(fr)
	if err != nil {
		_ = fr.Close()
		return nil, err
	}

	return rd, nil
}

// NewParquetReaderFromBytes reads a parquet file held in memory.
func NewParquetReaderFromBytes(buf []byte) (*ParquetReader, error) {
	fr, err := buffer.NewBufferFile(buf)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to open parquet buffer")
	}

	return NewParquetReader(fr)
}

// NewParquetReader reads the footer of |file| and prepares to read its rows.
func NewParquetReader(file source.ParquetFile) (rd *ParquetReader, err error) {
	defer recoverFault("reading parquet footer", &err)

	pr, err := reader.NewParquetColumnReader(file, ReadParallelism)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read parquet footer")
	}

	sh := pr.SchemaHandler
	names := make([]string, len(sh.SchemaElements))
	for i := range names {
		// the reader renames schema elements to exported go identifiers; report the names written to the file
		if i < len(sh.Infos) && sh.Infos[i] != nil {
			names[i] = sh.Infos[i].ExName
		} else {
			names[i] = sh.SchemaElements[i].GetName()
		}
	}

	cols, err := columnsFromSchema(sh.SchemaElements, names)
	if err != nil {
		pr.ReadStop()
		return nil, pkgerrors.Wrap(err, "invalid parquet schema")
	}

	return &ParquetReader{file: file, pr: pr, cols: cols, numRows: pr.GetNumRows()}, nil
}

// Columns returns the top level columns of the file in schema order.
func (pqr *ParquetReader) Columns() []ColumnInfo {
	infos := make([]ColumnInfo, len(pqr.cols))
	for i, col := range pqr.cols {
		infos[i] = col.info
	}

	return infos
}

// NumRows returns the number of rows recorded in the file footer.
func (pqr *ParquetReader) NumRows() int64 {
	return pqr.numRows
}

// ReadRow reads the next row. io.EOF is returned once every row has been read.
func (pqr *ParquetReader) ReadRow(ctx context.Context) (field.Row, error) {
	if pqr.pr == nil {
		return nil, errors.New("parquet reader is closed")
	}

	if pqr.read >= pqr.numRows {
		return nil, io.EOF
	}

	if pqr.pos >= pqr.n {
		if err := pqr.readBatch(); err != nil {
			return nil, err
		}
	}

	r := make(field.Row, len(pqr.cols))
	for i, col := range pqr.cols {
		r[i].Name = col.info.Name

		if col.leaf < 0 {
			r[i].Field = nestedField(col.info.Kind)
			continue
		}

		v := col.buf[pqr.pos]
		if v == nil {
			r[i].Field = field.Null
			continue
		}

		f, err := col.conv(v)
		if err != nil {
			return nil, err
		}

		r[i].Field = f
	}

	pqr.pos++
	pqr.read++

	return r, nil
}

func (pqr *ParquetReader) readBatch() (err error) {
	defer recoverFault("reading parquet column data", &err)

	n := pqr.numRows - pqr.read
	if n > ReadBatchSize {
		n = ReadBatchSize
	}

	for i := range pqr.cols {
		col := &pqr.cols[i]
		if col.leaf < 0 {
			continue
		}

		vals, _, _, err := pqr.pr.ReadColumnByIndex(int64(col.leaf), n)
		if err != nil {
			return pkgerrors.Wrapf(err, "failed to read column '%s'", col.info.Name)
		}

		if int64(len(vals)) != n {
			return fmt.Errorf("column '%s' returned %d values where %d were expected", col.info.Name, len(vals), n)
		}

		col.buf = vals
	}

	pqr.pos, pqr.n = 0, int(n)
	return nil
}

// Close releases the file and the column readers.
func (pqr *ParquetReader) Close(ctx context.Context) error {
	if pqr.pr == nil {
		return errors.New("already closed")
	}

	pqr.pr.ReadStop()
	pqr.pr = nil

	return pqr.file.Close()
}

func nestedField(kind field.Kind) field.Field {
	switch kind {
	case field.ListKind:
		return field.NewList()
	case field.MapKind:
		return field.NewMap()
	}
	return field.NewGroup()
}

// recoverFault turns a panic raised while decoding malformed input into an error.
func recoverFault(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %v", op, r)
	}
}
