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
	"fmt"
	"unicode"

	gott "github.com/timburks/mathed/types"
)

// Paste types a string at the cursor, one leaf per character. Whitespace is
// skipped.
type Paste struct {
	operation
	Text string
}

func (op *Paste) Perform(e gott.Editor, multiplier int) error {
	op.init(multiplier)
	for i := 0; i < op.Multiplier; i++ {
		for _, c := range op.Text {
			if unicode.IsSpace(c) {
				continue
			}
			if err := e.InsertCharacter(c); err != nil {
				return fmt.Errorf("paste %q: %w", op.Text, err)
			}
		}
	}
	return nil
}
