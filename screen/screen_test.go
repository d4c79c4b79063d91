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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nsf/termbox-go"

	gott "github.com/timburks/mathed/types"
)

func TestTranslate(t *testing.T) {
	for _, tc := range []struct {
		event termbox.Event
		want  gott.Event
	}{
		{termbox.Event{Type: termbox.EventKey, Ch: 'x'}, gott.Event{Type: gott.EventKey, Key: gott.KeyChar, Ch: 'x'}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace2}, gott.Event{Type: gott.EventKey, Key: gott.KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace}, gott.Event{Type: gott.EventKey, Key: gott.KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, gott.Event{Type: gott.EventKey, Key: gott.KeyArrowLeft}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlS}, gott.Event{Type: gott.EventKey, Key: gott.KeyCtrlS}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyF1}, gott.Event{Type: gott.EventKey, Key: gott.KeyUnsupported}},
		{termbox.Event{Type: termbox.EventResize}, gott.Event{Type: gott.EventResize, Key: gott.KeyUnsupported}},
		{termbox.Event{Type: termbox.EventMouse}, gott.Event{Type: gott.EventOther, Key: gott.KeyUnsupported}},
	} {
		if diff := cmp.Diff(tc.want, *translate(tc.event)); diff != "" {
			t.Errorf("%+v (-want +got):\n%s", tc.event, diff)
		}
	}
}

type fakeCommander struct {
	mode    int
	command string
	lisp    string
	message string
}

func (c *fakeCommander) SetMode(m int)       { c.mode = m }
func (c *fakeCommander) GetMode() int        { return c.mode }
func (c *fakeCommander) GetCommand() string  { return c.command }
func (c *fakeCommander) GetLispText() string { return c.lisp }
func (c *fakeCommander) GetMessage() string  { return c.message }

func TestMessageBarText(t *testing.T) {
	c := &fakeCommander{command: "sym pi", lisp: `(latex)`, message: "a long status message"}
	for _, tc := range []struct {
		mode int
		want string
	}{
		{gott.ModeEdit, "a long sta"},
		{gott.ModeCommand, ":sym pi"},
		{gott.ModeLisp, "(latex)"},
	} {
		c.mode = tc.mode
		if diff := cmp.Diff(tc.want, messageBarText(c, 10)); diff != "" {
			t.Errorf("mode %d (-want +got):\n%s", tc.mode, diff)
		}
	}
}
