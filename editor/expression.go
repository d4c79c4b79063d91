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

import "time"

var lastExpressionNumber = -1

// An Expression is one equation being built: a root block plus the identity
// used to tell archived equations apart.
type Expression struct {
	number  int
	version int
	created time.Time
	root    *Block
}

func NewExpression() *Expression {
	lastExpressionNumber++
	return &Expression{
		number:  lastExpressionNumber,
		created: time.Now(),
		root:    newBlock(nil, 0),
	}
}

func (e *Expression) Root() *Block {
	return e.root
}

// Number identifies the expression among all expressions created by this process.
func (e *Expression) Number() int {
	return e.number
}

// Version counts the edits made to the expression.
func (e *Expression) Version() int {
	return e.version
}

func (e *Expression) Created() time.Time {
	return e.created
}

func (e *Expression) IsEmpty() bool {
	return e.root.IsEmpty()
}

func (e *Expression) touch() {
	e.version++
}

// ToLatex returns the markup for an expression.
func ToLatex(e *Expression) string {
	return e.root.Latex()
}
