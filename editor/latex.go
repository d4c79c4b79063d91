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
)

// CursorMarker is spliced into display markup at the cursor. No catalog entry
// produces it.
const CursorMarker = `\textcolor{red}{|}`

// Placeholder stands in for empty slots in display markup.
const Placeholder = `\square`

// ToDisplayLatex returns the markup for the cursor's expression with the
// cursor marker at the cursor position.
func ToDisplayLatex(c *Cursor) string {
	return renderBlock(c.expression.root, c)
}

// markup accumulates rendered fragments, separating a control word from a
// following letter so that \pi x does not become \pix.
type markup struct {
	strings.Builder
}

func (m *markup) append(s string) {
	if s == "" {
		return
	}
	if endsWithControlWord(m.String()) && isLetter(s[0]) {
		m.WriteByte(' ')
	}
	m.WriteString(s)
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func endsWithControlWord(s string) bool {
	i := len(s)
	for i > 0 && isLetter(s[i-1]) {
		i--
	}
	return i < len(s) && i > 0 && s[i-1] == '\\'
}

// renderBlock renders b. With a nil cursor the result is final markup and child
// blocks come from their caches; otherwise the cursor marker and placeholders
// are added.
func renderBlock(b *Block, cursor *Cursor) string {
	display := cursor != nil
	here := display && cursor.block == b
	if display && b.IsEmpty() && !here {
		return Placeholder
	}
	var m markup
	if here && cursor.index == 0 {
		m.append(CursorMarker)
	}
	for i, c := range b.components {
		m.append(renderComponent(c, cursor))
		if here && cursor.index == i+1 {
			m.append(CursorMarker)
		}
	}
	return m.String()
}

func renderChild(b *Block, cursor *Cursor) string {
	if cursor == nil {
		return b.Latex()
	}
	return renderBlock(b, cursor)
}

func renderComponent(c Component, cursor *Cursor) string {
	switch c := c.(type) {
	case *Symbol:
		return c.markup
	case *Unary:
		arg := renderChild(c.blocks[0], cursor)
		if c.Kind == TemplateNthRoot {
			return fmt.Sprintf(`\sqrt[%s]{%s}`, c.Index, arg)
		}
		return fmt.Sprintf(unaryTemplates[c.Kind], arg)
	case *Binary:
		return fmt.Sprintf(binaryTemplates[c.Kind],
			renderChild(c.blocks[0], cursor),
			renderChild(c.blocks[1], cursor))
	case *BigOperator:
		var m markup
		m.append(`\` + c.Operator)
		// empty bounds are left out unless the cursor is inside the operator
		inside := cursor != nil && cursor.within(c)
		if lower := c.blocks[LowerBound]; inside || !lower.IsEmpty() {
			m.append("_{" + renderChild(lower, cursor) + "}")
		}
		if upper := c.blocks[UpperBound]; inside || !upper.IsEmpty() {
			m.append("^{" + renderChild(upper, cursor) + "}")
		}
		m.append(renderChild(c.blocks[Body], cursor))
		return m.String()
	case *Trig:
		return fmt.Sprintf(`\%s{(%s)}`, c.Function, renderChild(c.blocks[0], cursor))
	case *Custom:
		var b strings.Builder
		for i := 0; i < len(c.Markup); i++ {
			if n := customSlot(c.Markup, i); n >= 0 {
				b.WriteString(renderChild(c.blocks[n], cursor))
				i++
				continue
			}
			b.WriteByte(c.Markup[i])
		}
		return b.String()
	}
	panic(fmt.Sprintf("unknown component %T", c))
}
