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

package conv

import (
	"time"
)

// Epoch is the instant every parquet date and timestamp is relative to, 1970-01-01T00:00:00 with zero UTC offset.
var Epoch = time.Unix(0, 0).UTC()

const secondsPerDay = 24 * 60 * 60

// The conversions below work in seconds and sub-second remainders instead of time.Duration so that the full range
// of the parquet types can be represented without overflow.

func daysToTime(days int64) time.Time {
	return time.Unix(days*secondsPerDay, 0).UTC()
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

func microsToTime(micros int64) time.Time {
	return time.UnixMicro(micros).UTC()
}

func nanosToTime(nanos int64) time.Time {
	return time.Unix(0, nanos).UTC()
}
