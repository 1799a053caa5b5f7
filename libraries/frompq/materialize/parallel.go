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

package materialize

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dolthub/frompq/libraries/frompq/field"
	"github.com/dolthub/frompq/store/value"
)

type rowJob struct {
	idx int
	row field.Row
}

// firstFailure tracks the failure with the lowest row index seen so far.
type firstFailure struct {
	mu  sync.Mutex
	idx int
	err error
}

func (ff *firstFailure) record(idx int, err error) {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	if ff.err == nil || idx < ff.idx {
		ff.idx = idx
		ff.err = err
	}
}

// skip returns true if a failure has already been recorded at a lower row index than |idx|, in which case the row at
// |idx| cannot affect the result.
func (ff *firstFailure) skip(idx int) bool {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	return ff.err != nil && ff.idx < idx
}

func (ff *firstFailure) failed() bool {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	return ff.err != nil
}

// MaterializeParallel behaves like Materialize, but translates rows on |workers| goroutines. Rows are still read from
// |src| one at a time on a single goroutine and the output keeps source order. When more than one row fails, the
// error of the row with the lowest index is returned, which is the same error Materialize would return.
func (m *Materializer) MaterializeParallel(ctx context.Context, src RowSource, workers int) (value.RecordList, error) {
	if workers <= 1 {
		return m.Materialize(ctx, src)
	}

	if m.state != Empty {
		return value.RecordList{}, ErrAlreadyRun.New(m.state.String())
	}

	m.state = Streaming

	var ff firstFailure
	var mu sync.Mutex
	records := make([]value.Record, 0, sizeHint(src))
	store := func(idx int, rec value.Record) {
		mu.Lock()
		defer mu.Unlock()

		for len(records) <= idx {
			records = append(records, value.Record{})
		}
		records[idx] = rec
	}

	jobs := make(chan rowJob, workers*2)
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(jobs)

		for idx := 0; !ff.failed(); idx++ {
			r, err := src.ReadRow(egCtx)
			if err == io.EOF {
				return nil
			} else if err != nil {
				if ctxErr := egCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				ff.record(idx, &SourceError{Row: idx, Err: err})
				return nil
			}

			select {
			case jobs <- rowJob{idx, r}:
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}

		return nil
	})

	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			for job := range jobs {
				if ff.skip(job.idx) {
					continue
				}

				rec, err := TranslateRow(m.tr, job.idx, job.row)
				if err != nil {
					ff.record(job.idx, err)
					continue
				}

				store(job.idx, rec)
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return m.fail(err)
	}

	if ff.err != nil {
		m.rowsRead = ff.idx
		return m.fail(ff.err)
	}

	m.rowsRead = len(records)
	m.state = Complete
	m.logger.WithField("rows", m.rowsRead).WithField("workers", workers).Debug("materialized all rows")

	return value.NewRecordList(records...), nil
}
