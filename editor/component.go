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

import "fmt"

// A Component is a node placed in a Block. The set of component types is
// closed: *Symbol is the only leaf, and *Unary, *Binary, *BigOperator and
// *Trig are the structural components, which own child blocks.
type Component interface {
	// Parent returns the block holding the component.
	Parent() *Block
	setParent(b *Block)
	isComponent()
}

// A Structure is a component that owns a fixed number of child blocks.
type Structure interface {
	Component
	// Blocks returns the child blocks in slot order.
	Blocks() []*Block
}

// Symbol is a leaf carrying a single markup fragment.
type Symbol struct {
	parent *Block
	markup string
}

// NewSymbol builds a leaf for markup from the default catalog.
func NewSymbol(block *Block, fragment string) (*Symbol, error) {
	if !isRecognizedMarkup(fragment) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, fragment)
	}
	return &Symbol{parent: block, markup: fragment}, nil
}

func (s *Symbol) Markup() string     { return s.markup }
func (s *Symbol) Parent() *Block     { return s.parent }
func (s *Symbol) setParent(b *Block) { s.parent = b }
func (s *Symbol) isComponent()       {}
func (s *Symbol) String() string     { return s.markup }

// structure holds the child blocks shared by all structural components.
type structure struct {
	parent *Block
	blocks []*Block
}

func (s *structure) Parent() *Block     { return s.parent }
func (s *structure) setParent(b *Block) { s.parent = b }
func (s *structure) isComponent()       {}

func (s *structure) Blocks() []*Block {
	return append([]*Block{}, s.blocks...)
}

// Block returns the child block for slot i.
func (s *structure) Block(i int) *Block {
	if i < 0 || i >= len(s.blocks) {
		return nil
	}
	return s.blocks[i]
}

func (s *structure) init(owner Structure, parent *Block, slots int) {
	s.parent = parent
	s.blocks = make([]*Block, slots)
	for i := range s.blocks {
		s.blocks[i] = newBlock(owner, i)
	}
}

const defaultRootIndex = "n"

// Unary wraps a single block: square and nth roots, limits, and the
// subscript and superscript scripts whose base is whatever precedes them.
type Unary struct {
	structure
	Kind  string
	Index string // literal root index, only for nth roots
}

func NewUnary(block *Block, kind string) (*Unary, error) {
	if kind == TemplateNthRoot {
		return NewNthRoot(block, defaultRootIndex)
	}
	if _, ok := unaryTemplates[kind]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}
	u := &Unary{Kind: kind}
	u.init(u, block, 1)
	return u, nil
}

// NewNthRoot builds a root whose index is baked into the markup. The index
// must be made of typeable characters.
func NewNthRoot(block *Block, index string) (*Unary, error) {
	if index == "" {
		return nil, fmt.Errorf("%w: empty root index", ErrInvalidSymbol)
	}
	for _, c := range index {
		if _, ok := CharacterMarkup(c); !ok {
			return nil, fmt.Errorf("%w: root index %q", ErrInvalidSymbol, index)
		}
	}
	u := &Unary{Kind: TemplateNthRoot, Index: index}
	u.init(u, block, 1)
	return u, nil
}

// Binary owns two blocks: fractions and combined sub/superscripts.
type Binary struct {
	structure
	Kind string
}

func NewBinary(block *Block, kind string) (*Binary, error) {
	if _, ok := binaryTemplates[kind]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}
	b := &Binary{Kind: kind}
	b.init(b, block, 2)
	return b, nil
}

// Slots of a BigOperator.
const (
	LowerBound = 0
	UpperBound = 1
	Body       = 2
)

// BigOperator is a sum, product, integral, union, intersection or big
// logical operator with lower bound, upper bound and body blocks.
type BigOperator struct {
	structure
	Operator string
}

func NewBigOperator(block *Block, operator string) (*BigOperator, error) {
	if !bigOperators[operator] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, operator)
	}
	o := &BigOperator{Operator: operator}
	o.init(o, block, 3)
	return o, nil
}

// Trig applies a trigonometric function to an argument block.
type Trig struct {
	structure
	Function string
}

func NewTrig(block *Block, function string) (*Trig, error) {
	if !trigFunctions[function] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, function)
	}
	t := &Trig{Function: function}
	t.init(t, block, 1)
	return t, nil
}

// Custom is a template registered for one session. Its markup names the
// slots #1 to #9.
type Custom struct {
	structure
	Key    string
	Markup string
}

func NewCustom(block *Block, key, markup string, slots int) (*Custom, error) {
	if err := checkCustomMarkup(markup, slots); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	c := &Custom{Key: key, Markup: markup}
	c.init(c, block, slots)
	return c, nil
}

// customSlot returns the slot named by a #n parameter at markup[i:], or -1.
func customSlot(markup string, i int) int {
	if markup[i] != '#' || i+1 >= len(markup) {
		return -1
	}
	if d := markup[i+1]; '1' <= d && d <= '9' {
		return int(d - '1')
	}
	return -1
}

func checkCustomMarkup(markup string, slots int) error {
	if slots < 1 || slots > 9 {
		return fmt.Errorf("%w: %d slots", ErrInvalidTemplate, slots)
	}
	if reserved(markup) {
		return fmt.Errorf("%w: reserved markup", ErrInvalidTemplate)
	}
	used := make([]bool, slots)
	for i := range markup {
		n := customSlot(markup, i)
		if n < 0 {
			continue
		}
		if n >= slots {
			return fmt.Errorf("%w: #%d with %d slots", ErrInvalidTemplate, n+1, slots)
		}
		used[n] = true
	}
	for n, ok := range used {
		if !ok {
			return fmt.Errorf("%w: #%d is not used", ErrInvalidTemplate, n+1)
		}
	}
	return nil
}
