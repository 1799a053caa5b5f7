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

// State is the lifecycle of a Materializer. Empty moves to Streaming when the first row is requested. Complete and
// Failed are terminal.
type State int

const (
	Empty State = iota
	Streaming
	Complete
	Failed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Streaming:
		return "streaming"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// IsTerminal returns true for Complete and Failed.
func (s State) IsTerminal() bool {
	return s == Complete || s == Failed
}
