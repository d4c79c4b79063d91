//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	"regexp"

	gott "github.com/timburks/mathed/types"
)

// Highlight colors.
const (
	colorText        gott.Color = 0xff
	colorMacro       gott.Color = 0x70
	colorPunctuation gott.Color = 0x71
	colorNumber      gott.Color = 0x83
	colorPlaceholder gott.Color = 0xf8
	colorCursor      gott.Color = 0x02
)

// The LatexHighlighter colors display markup.
type LatexHighlighter struct {
	macroPattern       *regexp.Regexp
	punctuationPattern *regexp.Regexp
	numberPattern      *regexp.Regexp
	placeholderPattern *regexp.Regexp
	cursorPattern      *regexp.Regexp
}

func NewLatexHighlighter() *LatexHighlighter {
	h := &LatexHighlighter{}

	h.macroPattern = regexp.MustCompile(`\\([A-Za-z]+|.)`)
	h.punctuationPattern = regexp.MustCompile(`[{}\[\]^_()]`)
	h.numberPattern = regexp.MustCompile(`[0-9]+(\.[0-9]*)?`)
	h.placeholderPattern = regexp.MustCompile(regexp.QuoteMeta(Placeholder))
	h.cursorPattern = regexp.MustCompile(regexp.QuoteMeta(CursorMarker))

	return h
}

// Highlight returns one color for each rune of text.
func (h *LatexHighlighter) Highlight(text string) []gott.Color {
	colors := make([]gott.Color, len(text))
	for j := range colors {
		colors[j] = colorText
	}

	// later patterns win
	for _, p := range []struct {
		pattern *regexp.Regexp
		color   gott.Color
	}{
		{h.numberPattern, colorNumber},
		{h.punctuationPattern, colorPunctuation},
		{h.macroPattern, colorMacro},
		{h.placeholderPattern, colorPlaceholder},
		{h.cursorPattern, colorCursor},
	} {
		for _, match := range p.pattern.FindAllStringIndex(text, -1) {
			for k := match[0]; k < match[1]; k++ {
				colors[k] = p.color
			}
		}
	}

	runeColors := make([]gott.Color, 0, len(text))
	for i := range text {
		runeColors = append(runeColors, colors[i])
	}
	return runeColors
}
