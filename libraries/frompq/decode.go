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

// Package frompq decodes parquet files into dynamic values. A decoded file is a list of records, one per row, with
// one field per top level column in schema order.
package frompq

import (
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/frompq/libraries/frompq/conv"
	"github.com/dolthub/frompq/libraries/frompq/materialize"
	"github.com/dolthub/frompq/libraries/frompq/table/typed/parquet"
	"github.com/dolthub/frompq/store/value"
)

// Options control how a parquet file is decoded. The zero value decodes with the default conversion policy on the
// calling goroutine and logs nothing.
type Options struct {
	Conv conv.Options

	// Parallelism is the number of goroutines converting rows. Values below 2 convert rows on the calling goroutine.
	Parallelism int

	Logger logrus.FieldLogger
}

func (opts Options) logger() logrus.FieldLogger {
	if opts.Logger != nil {
		return opts.Logger
	}

	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Decode decodes the parquet file held in |buf|. Failures to parse the file, including an unreadable footer, are
// returned as a *materialize.SourceError. Conversion failures are returned as a *materialize.RowError wrapping the
// conversion error. No partial result is ever returned.
func Decode(ctx context.Context, buf []byte, opts Options) (value.RecordList, error) {
	logger := opts.logger()
	logger.WithField("size", humanize.Bytes(uint64(len(buf)))).Debug("decoding parquet buffer")

	rd, err := parquet.NewParquetReaderFromBytes(buf)
	if err != nil {
		return value.RecordList{}, &materialize.SourceError{Err: err}
	}

	return decodeRows(ctx, rd, opts, logger)
}

// DecodeFile decodes the parquet file at |path| on the local filesystem.
func DecodeFile(ctx context.Context, path string, opts Options) (value.RecordList, error) {
	logger := opts.logger().WithField("path", path)
	logger.Debug("decoding parquet file")

	rd, err := parquet.OpenParquetReader(path)
	if err != nil {
		return value.RecordList{}, &materialize.SourceError{Err: err}
	}

	return decodeRows(ctx, rd, opts, logger)
}

// Columns returns the top level columns of the parquet file in |buf| without decoding any rows.
func Columns(ctx context.Context, buf []byte) ([]parquet.ColumnInfo, int64, error) {
	rd, err := parquet.NewParquetReaderFromBytes(buf)
	if err != nil {
		return nil, 0, &materialize.SourceError{Err: err}
	}

	return columnsOf(ctx, rd)
}

func columnsOf(ctx context.Context, rd *parquet.ParquetReader) ([]parquet.ColumnInfo, int64, error) {
	cols, n := rd.Columns(), rd.NumRows()
	if err := rd.Close(ctx); err != nil {
		return nil, 0, &materialize.SourceError{Err: err}
	}

	return cols, n, nil
}

func decodeRows(ctx context.Context, rd *parquet.ParquetReader, opts Options, logger logrus.FieldLogger) (value.RecordList, error) {
	defer func() {
		if err := rd.Close(ctx); err != nil {
			logger.WithError(err).Warn("failed to close parquet reader")
		}
	}()

	logger.WithFields(logrus.Fields{
		"rows":    rd.NumRows(),
		"columns": len(rd.Columns()),
	}).Debug("opened parquet file")

	start := time.Now()
	m := materialize.New(conv.NewTranslator(opts.Conv), logger)

	var recs value.RecordList
	var err error
	if opts.Parallelism > 1 {
		recs, err = m.MaterializeParallel(ctx, rd, opts.Parallelism)
	} else {
		recs, err = m.Materialize(ctx, rd)
	}

	if err != nil {
		return value.RecordList{}, err
	}

	logger.WithFields(logrus.Fields{
		"rows":    recs.Len(),
		"elapsed": time.Since(start).String(),
	}).Info("decoded parquet file")

	return recs, nil
}
