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

package value

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StringWidth returns the number of terminal cells needed to print |text|. Each line is split into grapheme clusters,
// and the width of the widest line is returned.
func StringWidth(text string) int {
	var maxWidth int
	for _, line := range strings.Split(text, "\n") {
		var width int
		g := uniseg.NewGraphemes(line)

		for g.Next() {
			var chWidth int
			for _, r := range g.Runes() {
				chWidth = runewidth.RuneWidth(r)
				if chWidth > 0 {
					// first rune with a width decides the width of the cluster
					break
				}
			}
			width += chWidth
		}

		if width > maxWidth {
			maxWidth = width
		}
	}

	return maxWidth
}
