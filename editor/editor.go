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
	"log"

	gott "github.com/timburks/mathed/types"
)

// DefaultDelimiter surrounds saved markup.
const DefaultDelimiter = "$$"

var _ gott.Editor = (*Editor)(nil)

// An Archive keeps cleared expressions beyond the session.
type Archive interface {
	AddExpression(latex string) (int, error)
}

// The Editor is one editing session: the expression being built, its cursor,
// the history of cleared expressions and the session's symbol catalog.
type Editor struct {
	expression *Expression
	cursor     *Cursor
	catalog    *Catalog
	history    []*Expression
	delimiter  string
	persistent bool           // keep the expression after saving
	archive    Archive        // optional
	display    func(string)   // receives display markup after every change
	previous   gott.Operation // last operation performed, available to repeat
}

func NewEditor() *Editor {
	e := &Editor{
		catalog:   NewCatalog(),
		delimiter: DefaultDelimiter,
	}
	e.expression = NewExpression()
	e.cursor = NewCursor(e.expression, e.updateDisplay)
	return e
}

func (e *Editor) SetDelimiter(delimiter string) {
	e.delimiter = delimiter
}

func (e *Editor) SetPersistent(persistent bool) {
	e.persistent = persistent
}

func (e *Editor) SetArchive(archive Archive) {
	e.archive = archive
}

// SetDisplay sets the function that receives display markup after each
// change and calls it once with the current markup.
func (e *Editor) SetDisplay(display func(string)) {
	e.display = display
	e.updateDisplay(e.cursor.DisplayLatex())
}

func (e *Editor) updateDisplay(markup string) {
	if e.display != nil {
		e.display(markup)
	}
}

func (e *Editor) Expression() *Expression {
	return e.expression
}

func (e *Editor) Cursor() *Cursor {
	return e.cursor
}

func (e *Editor) Catalog() *Catalog {
	return e.catalog
}

// History returns the cleared expressions, oldest first.
func (e *Editor) History() []*Expression {
	return append([]*Expression(nil), e.history...)
}

func (e *Editor) HistoryLength() int {
	return len(e.history)
}

func (e *Editor) Perform(op gott.Operation, multiplier int) error {
	err := op.Perform(e, multiplier)
	// save the operation for repeats
	e.previous = op
	return err
}

func (e *Editor) Repeat() error {
	if e.previous == nil {
		return nil
	}
	return e.previous.Perform(e, 0)
}

func (e *Editor) InsertSymbol(key string) error {
	s, err := e.catalog.Symbol(e.cursor.Block(), key)
	if err != nil {
		return err
	}
	e.cursor.Insert(s)
	return nil
}

// InsertFragment inserts a leaf carrying markup the catalog recognizes.
func (e *Editor) InsertFragment(fragment string) error {
	s, err := e.catalog.Fragment(e.cursor.Block(), fragment)
	if err != nil {
		return err
	}
	e.cursor.Insert(s)
	return nil
}

func (e *Editor) InsertTemplate(key string) error {
	c, err := e.catalog.Template(e.cursor.Block(), key)
	if err != nil {
		return err
	}
	e.cursor.Insert(c)
	return nil
}

func (e *Editor) InsertNthRoot(index string) error {
	c, err := NewNthRoot(e.cursor.Block(), index)
	if err != nil {
		return err
	}
	e.cursor.Insert(c)
	return nil
}

func (e *Editor) InsertCharacter(c rune) error {
	m, ok := CharacterMarkup(c)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
	}
	e.cursor.Insert(&Symbol{markup: m})
	return nil
}

// ReplaceCharacter replaces the component before the cursor with a typed
// character. At the start of a block nothing is removed and the character is
// inserted there.
func (e *Editor) ReplaceCharacter(c rune) error {
	m, ok := CharacterMarkup(c)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
	}
	if e.cursor.Index() > 0 {
		e.cursor.DeleteBefore()
	}
	e.cursor.Insert(&Symbol{markup: m})
	return nil
}

func (e *Editor) DeleteBefore() {
	e.cursor.DeleteBefore()
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case gott.MoveLeft:
		e.cursor.SeekLeft()
	case gott.MoveRight:
		e.cursor.SeekRight()
	}
}

// HandleKey passes a key event to the cursor. A printable key without
// markup is reported instead of being dropped.
func (e *Editor) HandleKey(event *gott.Event) error {
	if event != nil && event.Type == gott.EventKey && event.Key == gott.KeyChar {
		if _, ok := CharacterMarkup(event.Ch); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidSymbol, event.Ch)
		}
	}
	e.cursor.HandleKey(event)
	return nil
}

func (e *Editor) RegisterSymbol(key, markup string) error {
	return e.catalog.RegisterSymbol(key, markup)
}

func (e *Editor) RegisterTemplate(key, markup string, slots int) error {
	return e.catalog.RegisterTemplate(key, markup, slots)
}

func (e *Editor) Latex() string {
	return e.cursor.Latex()
}

func (e *Editor) DisplayLatex() string {
	return e.cursor.DisplayLatex()
}

// Clear moves the current expression into the history and starts a new one.
func (e *Editor) Clear() {
	old := e.expression
	e.history = append(e.history, old)
	if e.archive != nil && !old.IsEmpty() {
		if _, err := e.archive.AddExpression(ToLatex(old)); err != nil {
			log.Printf("archiving expression %d: %v", old.Number(), err)
		}
	}
	e.expression = NewExpression()
	e.cursor.Reset(e.expression)
}

// Delimiter returns the math delimiter shown around saved markup.
func (e *Editor) Delimiter() string {
	return e.delimiter
}

// Save returns the markup for the current expression and, unless the editor
// is persistent, clears it.
func (e *Editor) Save() string {
	s := e.Latex()
	if !e.persistent {
		e.Clear()
	}
	return s
}
