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
package operations

import (
	gott "github.com/timburks/mathed/types"
)

// What an Insert places at the cursor.
const (
	InsertSymbol = iota
	InsertTemplate
	InsertNthRoot
	InsertCharacter
)

// Insert places a symbol, template, nth root or typed character at the
// cursor, once per multiplier.
type Insert struct {
	operation
	Kind      int
	Key       string // symbol or template key, or the root index
	Character rune
}

func (op *Insert) Perform(e gott.Editor, multiplier int) error {
	op.init(multiplier)
	for i := 0; i < op.Multiplier; i++ {
		var err error
		switch op.Kind {
		case InsertSymbol:
			err = e.InsertSymbol(op.Key)
		case InsertTemplate:
			err = e.InsertTemplate(op.Key)
		case InsertNthRoot:
			err = e.InsertNthRoot(op.Key)
		case InsertCharacter:
			err = e.InsertCharacter(op.Character)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
