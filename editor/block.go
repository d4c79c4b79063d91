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

// A Block is an ordered run of components forming one slot of an expression:
// the root of an Expression or one child slot of a structural component.
type Block struct {
	components []Component
	owner      Structure // component owning this block, nil for a root block
	slot       int       // index of this block among its owner's blocks
	latex      string    // cached markup
	cached     bool
}

func newBlock(owner Structure, slot int) *Block {
	return &Block{owner: owner, slot: slot}
}

// Owner returns the structural component that holds this block, or nil for a
// root block.
func (b *Block) Owner() Structure {
	return b.owner
}

// Slot returns the index of this block among its owner's blocks.
func (b *Block) Slot() int {
	return b.slot
}

// Parent returns the block that contains this block's owner.
func (b *Block) Parent() *Block {
	if b.owner == nil {
		return nil
	}
	return b.owner.Parent()
}

func (b *Block) Len() int {
	return len(b.components)
}

func (b *Block) IsEmpty() bool {
	return len(b.components) == 0
}

func (b *Block) At(i int) Component {
	if i < 0 || i >= len(b.components) {
		return nil
	}
	return b.components[i]
}

// Components returns a copy of the block's components in reading order.
func (b *Block) Components() []Component {
	return append([]Component{}, b.components...)
}

// Depth counts the structural components between this block and the root.
func (b *Block) Depth() int {
	depth := 0
	for x := b; x != nil && x.owner != nil; x = x.Parent() {
		depth++
	}
	return depth
}

func (b *Block) indexOf(c Component) int {
	for i, x := range b.components {
		if x == c {
			return i
		}
	}
	return -1
}

func (b *Block) insert(i int, c Component) {
	if i < 0 {
		i = 0
	}
	if i > len(b.components) {
		i = len(b.components)
	}
	b.components = append(b.components, nil)
	copy(b.components[i+1:], b.components[i:])
	b.components[i] = c
	c.setParent(b)
	b.invalidate()
}

func (b *Block) removeAt(i int) Component {
	if i < 0 || i >= len(b.components) {
		return nil
	}
	c := b.components[i]
	copy(b.components[i:], b.components[i+1:])
	b.components[len(b.components)-1] = nil
	b.components = b.components[:len(b.components)-1]
	c.setParent(nil)
	b.invalidate()
	return c
}

// invalidate drops the cached markup of this block and all of its ancestors.
func (b *Block) invalidate() {
	for x := b; x != nil; x = x.Parent() {
		x.cached = false
	}
}

// Latex returns the markup for the block, computing it only when the block or
// one of its descendants changed since the last call.
func (b *Block) Latex() string {
	if !b.cached {
		b.latex = renderBlock(b, nil)
		b.cached = true
	}
	return b.latex
}
