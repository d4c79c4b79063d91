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
package commander

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timburks/mathed/operations"
	gott "github.com/timburks/mathed/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor   gott.Editor
	mode     int    // editor mode
	debug    bool   // debug mode displays information about events (key codes, etc)
	command  string // command as it is being typed on the command line
	lispText string // lisp command as it is being typed
	message  string // status message
}

// NewCommander returns a commander for e. Lisp primitives act on the most
// recently created commander's editor.
func NewCommander(e gott.Editor) *Commander {
	c := &Commander{editor: e, mode: gott.ModeEdit}
	active = c
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *gott.Event) error {
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	e := c.editor

	switch event.Key {
	//
	// the command and lisp lines go to the message bar
	//
	case gott.KeyEsc:
		c.mode = gott.ModeCommand
		c.command = ""
	case gott.KeyCtrlE:
		c.mode = gott.ModeLisp
		c.lispText = "("
	//
	// cursor movement isn't saved for repetition
	//
	case gott.KeyArrowLeft, gott.KeyArrowRight:
		return e.HandleKey(event)
	//
	// "performed" operations are saved for repetition
	//
	case gott.KeyBackspace, gott.KeyDelete, gott.KeyChar:
		return c.perform(&operations.Keystroke{Event: *event}, 1)
	case gott.KeyCtrlL:
		return c.perform(&operations.Clear{}, 1)
	case gott.KeyCtrlS:
		c.save()
	case gott.KeyCtrlR:
		if err := e.Repeat(); err != nil {
			c.message = err.Error()
		}
	case gott.KeyCtrlQ:
		c.mode = gott.ModeQuit
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *gott.Event) error {
	switch event.Key {
	case gott.KeyEsc:
		c.mode = gott.ModeEdit
	case gott.KeyEnter:
		c.PerformCommand()
	case gott.KeyBackspace:
		if len(c.command) > 0 {
			c.command = c.command[0 : len(c.command)-1]
		}
	case gott.KeySpace:
		c.command += " "
	case gott.KeyChar:
		c.command = c.command + string(event.Ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	switch event.Key {
	case gott.KeyEsc:
		c.mode = gott.ModeEdit
	case gott.KeyEnter:
		c.message = c.ParseEval(c.lispText)
		c.mode = gott.ModeEdit
	case gott.KeyBackspace:
		if len(c.lispText) > 0 {
			c.lispText = c.lispText[0 : len(c.lispText)-1]
		}
	case gott.KeySpace:
		c.lispText += " "
	case gott.KeyChar:
		c.lispText = c.lispText + string(event.Ch)
	}
	return nil
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

// perform runs an operation and reports its error on the message bar.
func (c *Commander) perform(op gott.Operation, multiplier int) error {
	err := c.editor.Perform(op, multiplier)
	if err != nil {
		c.message = err.Error()
	} else {
		c.message = ""
	}
	return err
}

// save shows the saved markup between the editor's delimiters.
func (c *Commander) save() string {
	op := &operations.Save{}
	c.perform(op, 1)
	d := c.editor.Delimiter()
	c.message = d + op.Text + d
	return op.Text
}

// PerformCommand runs the command line. Commands that move, insert or delete
// take an optional repeat count as their last argument.
func (c *Commander) PerformCommand() {
	e := c.editor

	parts := strings.Fields(c.command)
	c.command = ""
	c.mode = gott.ModeEdit
	if len(parts) == 0 {
		return
	}
	switch parts[0] {
	case "q":
		c.mode = gott.ModeQuit
	case "w", "save":
		c.save()
	case "wq":
		c.save()
		c.mode = gott.ModeQuit
	case "sym":
		if len(parts) < 2 {
			c.message = "usage: sym key [count]"
			return
		}
		if n, ok := c.count(parts, 2); ok {
			c.perform(&operations.Insert{Kind: operations.InsertSymbol, Key: parts[1]}, n)
		}
	case "tpl":
		if len(parts) < 2 {
			c.message = "usage: tpl key [count]"
			return
		}
		if n, ok := c.count(parts, 2); ok {
			c.perform(&operations.Insert{Kind: operations.InsertTemplate, Key: parts[1]}, n)
		}
	case "root":
		index := "n"
		if len(parts) > 1 {
			index = parts[1]
		}
		c.perform(&operations.Insert{Kind: operations.InsertNthRoot, Key: index}, 1)
	case "paste":
		c.perform(&operations.Paste{Text: strings.Join(parts[1:], "")}, 1)
	case "replace":
		if len(parts) != 2 || len([]rune(parts[1])) != 1 {
			c.message = "usage: replace character"
			return
		}
		c.perform(&operations.ReplaceCharacter{Character: []rune(parts[1])[0]}, 1)
	case "right", "left":
		direction := gott.MoveRight
		if parts[0] == "left" {
			direction = gott.MoveLeft
		}
		if n, ok := c.count(parts, 1); ok {
			c.perform(&operations.Move{Direction: direction}, n)
		}
	case "delete":
		if n, ok := c.count(parts, 1); ok {
			c.perform(&operations.Delete{}, n)
		}
	case "repeat":
		if err := e.Repeat(); err != nil {
			c.message = err.Error()
		}
	case "clear":
		c.perform(&operations.Clear{}, 1)
	case "history":
		c.message = fmt.Sprintf("%d expressions in history", e.HistoryLength())
	case "register":
		if len(parts) != 3 {
			c.message = "usage: register key markup"
			return
		}
		if err := e.RegisterSymbol(parts[1], parts[2]); err != nil {
			c.message = err.Error()
		} else {
			c.message = fmt.Sprintf("registered %s as %s", parts[1], parts[2])
		}
	case "template":
		if len(parts) != 4 {
			c.message = "usage: template key markup slots"
			return
		}
		slots, err := strconv.Atoi(parts[3])
		if err != nil {
			c.message = "invalid slot count: " + parts[3]
			return
		}
		if err := e.RegisterTemplate(parts[1], parts[2], slots); err != nil {
			c.message = err.Error()
		} else {
			c.message = fmt.Sprintf("registered template %s", parts[1])
		}
	case "latex":
		c.message = e.Latex()
	case "debug":
		if len(parts) == 2 {
			if parts[1] == "on" {
				c.debug = true
			} else if parts[1] == "off" {
				c.debug = false
				c.message = ""
			}
		}
	default:
		c.message = "unknown command: " + parts[0]
	}
}

// Execute runs one command line and returns the resulting message.
func (c *Commander) Execute(line string) string {
	c.command = line
	c.message = ""
	c.PerformCommand()
	return c.message
}

// count reads the optional repeat count at parts[i].
func (c *Commander) count(parts []string, i int) (int, bool) {
	if len(parts) <= i {
		return 1, true
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil || n < 1 {
		c.message = "invalid count: " + parts[i]
		return 0, false
	}
	return n, true
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
