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

// Package value contains the self-describing value model that decoded parquet rows are materialized into. Every
// Value is immutable once constructed, and container values exclusively own their children.
package value

// Value is implemented by every variant of the value model.
type Value interface {
	// Kind returns the variant of this value
	Kind() Kind

	// Equals returns true if |other| is the same kind and holds the same data
	Equals(other Value) bool

	// HumanReadableString returns a representation of the value suitable for printing to a terminal
	HumanReadableString() string
}

// IsNull returns true if the value is nil, or if the value is of kind NullKind
func IsNull(v Value) bool {
	return v == nil || v.Kind() == NullKind
}
