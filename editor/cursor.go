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
	gott "github.com/timburks/mathed/types"
)

// A Cursor is the single editing position in an expression.
//
// Inside a block of n components the cursor stops in each gap (0..n) and on
// each component. Resting on a component puts the cursor just past it, the
// same place as the following gap for insertion and deletion, but a
// structural component is entered only from there: moving right from the gap
// before a fraction first steps past it, and the next move right enters its
// numerator. Crossing from one slot to the next takes two moves as well: the
// first stops between the slots, the second enters the next one.
type Cursor struct {
	expression   *Expression
	block        *Block // block the cursor is in
	index        int    // components[:index] are left of the cursor
	onComponent  bool   // resting on components[index-1] rather than in the gap after it
	betweenSlots bool   // at the start of block but not yet past the boundary with the previous slot
	display      func(string)
}

// NewCursor returns a cursor at the start of the expression. If display is
// not nil it is called with the display markup after every change.
func NewCursor(e *Expression, display func(string)) *Cursor {
	c := &Cursor{display: display}
	c.Reset(e)
	return c
}

// Reset binds the cursor to e and moves it to the start of e's root block.
func (c *Cursor) Reset(e *Expression) {
	c.expression = e
	c.block = e.root
	c.index = 0
	c.onComponent = false
	c.betweenSlots = false
	c.updateDisplay()
}

func (c *Cursor) Expression() *Expression {
	return c.expression
}

func (c *Cursor) Block() *Block {
	return c.block
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) OnComponent() bool {
	return c.onComponent
}

// BetweenSlots reports whether the cursor is stopped on the boundary between
// a slot and the one before it.
func (c *Cursor) BetweenSlots() bool {
	return c.betweenSlots
}

// Component returns the component immediately left of the cursor, or nil at
// the start of a block.
func (c *Cursor) Component() Component {
	return c.block.At(c.index - 1)
}

// Depth returns how many structural components enclose the cursor.
func (c *Cursor) Depth() int {
	return c.block.Depth()
}

// Latex returns the final markup for the cursor's expression.
func (c *Cursor) Latex() string {
	return ToLatex(c.expression)
}

// DisplayLatex returns the markup with the cursor marker.
func (c *Cursor) DisplayLatex() string {
	return ToDisplayLatex(c)
}

func (c *Cursor) updateDisplay() {
	if c.display != nil {
		c.display(ToDisplayLatex(c))
	}
}

func (c *Cursor) within(s Structure) bool {
	for b := c.block; b != nil; b = b.Parent() {
		if b.owner == s {
			return true
		}
	}
	return false
}

func (c *Cursor) enter(s Structure, slot int, atEnd bool) {
	c.block = s.Blocks()[slot]
	c.onComponent = false
	c.betweenSlots = false
	if atEnd {
		c.index = c.block.Len()
	} else {
		c.index = 0
	}
}

// ascend moves out of the current block to just after its owner.
func (c *Cursor) ascend(onOwner bool) {
	owner := c.block.owner
	parent := owner.Parent()
	c.block = parent
	c.index = parent.indexOf(owner) + 1
	c.onComponent = onOwner
	c.betweenSlots = false
}

func (c *Cursor) SeekRight() {
	b := c.block
	switch {
	case c.betweenSlots:
		c.betweenSlots = false
	case c.onComponent:
		if s, ok := b.components[c.index-1].(Structure); ok {
			c.enter(s, 0, false)
		} else {
			c.onComponent = false
		}
	case c.index < b.Len():
		c.index++
		c.onComponent = true
	case b.owner != nil:
		if next := b.slot + 1; next < len(b.owner.Blocks()) {
			c.enter(b.owner, next, false)
			c.betweenSlots = true
		} else {
			c.ascend(false)
		}
	default:
		// end of the root block
		return
	}
	c.updateDisplay()
}

func (c *Cursor) SeekLeft() {
	b := c.block
	switch {
	case c.onComponent:
		c.onComponent = false
		c.index--
	case c.index > 0:
		if s, ok := b.components[c.index-1].(Structure); ok {
			c.enter(s, len(s.Blocks())-1, true)
		} else {
			c.onComponent = true
		}
	case b.owner != nil:
		switch {
		case b.slot > 0 && c.betweenSlots:
			c.enter(b.owner, b.slot-1, true)
		case b.slot > 0:
			c.betweenSlots = true
		default:
			c.ascend(true)
		}
	default:
		// start of the root block
		return
	}
	c.updateDisplay()
}

// Insert places a newly built component at the cursor and rests the cursor on
// it. A component that is already part of a tree is ignored.
func (c *Cursor) Insert(component Component) {
	if p := component.Parent(); p != nil && p.indexOf(component) >= 0 {
		return
	}
	c.block.insert(c.index, component)
	c.index++
	c.onComponent = true
	c.betweenSlots = false
	c.expression.touch()
	c.updateDisplay()
}

// DeleteBefore removes the component left of the cursor along with everything
// inside it. At the start of a slot the cursor moves onto the owning
// component instead, so that a second call deletes it.
func (c *Cursor) DeleteBefore() {
	b := c.block
	switch {
	case c.index > 0:
		b.removeAt(c.index - 1)
		c.index--
		c.onComponent = false
		c.expression.touch()
	case b.owner != nil:
		c.ascend(true)
	default:
		return
	}
	c.updateDisplay()
}

// HandleKey applies a key event: arrows move, backspace and delete remove the
// component before the cursor, and typeable characters insert a symbol.
// Anything else is ignored.
func (c *Cursor) HandleKey(event *gott.Event) {
	if event == nil || event.Type != gott.EventKey {
		return
	}
	switch event.Key {
	case gott.KeyArrowLeft:
		c.SeekLeft()
	case gott.KeyArrowRight:
		c.SeekRight()
	case gott.KeyBackspace, gott.KeyDelete:
		c.DeleteBefore()
	case gott.KeyChar:
		if m, ok := CharacterMarkup(event.Ch); ok {
			c.Insert(&Symbol{markup: m})
		}
	}
}
