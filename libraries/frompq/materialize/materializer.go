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

// Package materialize drains a source of typed parquet rows and assembles the rows into a value.RecordList.
package materialize

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/frompq/libraries/frompq/conv"
	"github.com/dolthub/frompq/libraries/frompq/field"
	"github.com/dolthub/frompq/store/value"
)

// RowSource is a finite, forward only sequence of rows.
type RowSource interface {
	// ReadRow returns the next row, or io.EOF once every row has been read. Each row is returned exactly once.
	ReadRow(ctx context.Context) (field.Row, error)
}

// RowCounter is an optional interface for row sources that know how many rows they will produce.
type RowCounter interface {
	NumRows() int64
}

// Materializer converts every row of a RowSource into a record. A Materializer is single use and is not safe for
// concurrent use.
type Materializer struct {
	tr       conv.Translator
	logger   logrus.FieldLogger
	state    State
	rowsRead int
}

// New returns a Materializer that converts fields with |tr|. A nil |logger| discards log output.
func New(tr conv.Translator, logger logrus.FieldLogger) *Materializer {
	if logger == nil {
		logger = discardLogger()
	}

	return &Materializer{tr: tr, logger: logger, state: Empty}
}

// Materialize converts all of |src| with the default translator.
func Materialize(ctx context.Context, src RowSource) (value.RecordList, error) {
	return New(conv.NewTranslator(conv.Options{}), nil).Materialize(ctx, src)
}

// State returns the current lifecycle state
func (m *Materializer) State() State {
	return m.state
}

// RowsRead returns the number of rows pulled from the source so far
func (m *Materializer) RowsRead() int {
	return m.rowsRead
}

// Materialize pulls rows from |src| until it is exhausted and returns one record per row in source order. The first
// error from the source or from the translator aborts the whole materialization; no partial result is returned.
func (m *Materializer) Materialize(ctx context.Context, src RowSource) (value.RecordList, error) {
	if m.state != Empty {
		return value.RecordList{}, ErrAlreadyRun.New(m.state.String())
	}

	m.state = Streaming
	b := value.NewRecordListBuilder(sizeHint(src))

	for {
		if err := ctx.Err(); err != nil {
			return m.fail(err)
		}

		r, err := src.ReadRow(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			return m.fail(&SourceError{Row: m.rowsRead, Err: err})
		}

		rec, err := TranslateRow(m.tr, m.rowsRead, r)
		if err != nil {
			return m.fail(err)
		}

		m.rowsRead++
		b.Append(rec)

		if m.rowsRead%progressInterval == 0 {
			m.logger.WithField("rows", m.rowsRead).Debug("materializing rows")
		}
	}

	m.state = Complete
	m.logger.WithField("rows", m.rowsRead).Debug("materialized all rows")

	return b.Build(), nil
}

const progressInterval = 64 * 1024

func (m *Materializer) fail(err error) (value.RecordList, error) {
	m.state = Failed
	m.logger.WithError(err).WithField("rows", m.rowsRead).Debug("materialization failed")
	return value.RecordList{}, err
}

// TranslateRow converts every column of |r| in order. |rowIdx| is only used to annotate errors.
func TranslateRow(tr conv.Translator, rowIdx int, r field.Row) (value.Record, error) {
	fields := make([]value.Field, len(r))
	for i, col := range r {
		v, err := tr.Translate(col.Field)
		if err != nil {
			return value.Record{}, &RowError{Row: rowIdx, Column: i, Name: col.Name, Err: err}
		}

		fields[i] = value.Field{Name: col.Name, Value: v}
	}

	return value.NewRecord(fields...), nil
}

func sizeHint(src RowSource) int {
	if rc, ok := src.(RowCounter); ok {
		n := rc.NumRows()
		if n > 0 && n < maxSizeHint {
			return int(n)
		}
	}
	return 0
}

const maxSizeHint = 1 << 20

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
