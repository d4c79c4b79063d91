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
	"fmt"
	"strings"

	gott "github.com/timburks/mathed/types"
)

// A Window shows the display markup of an editor's expression, wrapped to
// the window width, with an info bar on its last row.
type Window struct {
	editor      *Editor
	origin      gott.Point
	size        gott.Size
	offset      int // first wrapped line shown
	highlighter *LatexHighlighter
}

func NewWindow(e *Editor) *Window {
	return &Window{
		editor:      e,
		highlighter: NewLatexHighlighter(),
	}
}

func (w *Window) Layout(origin gott.Point, size gott.Size) {
	w.origin = origin
	w.size = size
}

// draw the wrapped markup in the area defined by origin and size
func (w *Window) Render(display gott.Display) {
	if w.size.Cols <= 0 || w.size.Rows <= 0 {
		return
	}
	text := []rune(w.editor.DisplayLatex())
	colors := w.highlighter.Highlight(string(text))
	w.adjustOffsetForCursor(string(text))

	textRows := w.size.Rows - 1
	for i := 0; i < textRows; i++ {
		start := (i + w.offset) * w.size.Cols
		row := w.origin.Row + i
		if start >= len(text) {
			display.SetCell(w.origin.Col, row, '~', gott.ColorWhite)
			continue
		}
		end := start + w.size.Cols
		if end > len(text) {
			end = len(text)
		}
		for j := start; j < end; j++ {
			display.SetCell(w.origin.Col+j-start, row, text[j], colors[j])
		}
	}

	// Draw the info bar as a single line at the bottom of the window.
	infoText := w.computeInfoBarText(w.size.Cols)
	infoRow := w.origin.Row + w.size.Rows - 1
	for x, ch := range infoText {
		display.SetCellReversed(w.origin.Col+x, infoRow, ch, gott.ColorBlack)
	}
}

// Compute the text to display on the info bar.
func (w *Window) computeInfoBarText(length int) string {
	e := w.editor
	x := e.Expression()
	finalText := fmt.Sprintf(" history %d ", e.HistoryLength())
	text := fmt.Sprintf(" [%d] v%d depth %d", x.Number(), x.Version(), e.Cursor().Depth())
	for len(text) < length-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	if len(text) > length {
		text = text[:length]
	}
	return text
}

// Recompute the offset to keep the line holding the cursor marker onscreen.
func (w *Window) adjustOffsetForCursor(text string) {
	i := strings.Index(text, CursorMarker)
	if i < 0 {
		return
	}
	line := len([]rune(text[:i])) / w.size.Cols
	textRows := w.size.Rows - 1
	if line < w.offset {
		w.offset = line
	}
	if textRows > 0 && line-w.offset >= textRows {
		w.offset = line - textRows + 1
	}
}
