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
package screen

import (
	"log"

	"github.com/nsf/termbox-go"

	"github.com/timburks/mathed/editor"
	gott "github.com/timburks/mathed/types"
)

// The Screen draws an editor window and the message bar.
type Screen struct {
	size gott.Size // screen size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(w *editor.Window, c gott.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize gott.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	// the window ends with its own info bar; the last row is for messages
	w.Layout(gott.Point{Row: 0, Col: 0}, gott.Size{Rows: s.size.Rows - 1, Cols: s.size.Cols})
	w.Render(s)
	s.RenderMessageBar(c)
	termbox.HideCursor()
	termbox.Flush()
}

func (s *Screen) SetCell(j int, i int, c rune, color gott.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), 0x01)
}

func (s *Screen) SetCellReversed(j int, i int, c rune, color gott.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.ColorWhite)
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	line := messageBarText(c, s.size.Cols)
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

func messageBarText(c gott.Commander, cols int) string {
	var line string
	switch c.GetMode() {
	case gott.ModeCommand:
		line += ":" + c.GetCommand()
	case gott.ModeLisp:
		line += c.GetLispText()
	default:
		line += c.GetMessage()
	}
	if r := []rune(line); len(r) > cols {
		line = string(r[0:cols])
	}
	return line
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return translate(event)
}

func translate(event termbox.Event) *gott.Event {
	var t int
	switch event.Type {
	case termbox.EventKey:
		t = gott.EventKey
	case termbox.EventResize:
		t = gott.EventResize
	default:
		t = gott.EventOther
	}
	return &gott.Event{
		Type: t,
		Key:  key(event.Key, event.Ch),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key, ch rune) gott.Key {
	if k == 0 && ch != 0 {
		return gott.KeyChar
	}
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlL:
		return gott.KeyCtrlL
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeySpace:
		return gott.KeySpace
	default:
		return gott.KeyUnsupported
	}
}
