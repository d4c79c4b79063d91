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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timburks/mathed/editor"
	gott "github.com/timburks/mathed/types"
)

func TestPerformAndRepeat(t *testing.T) {
	e := editor.NewEditor()
	for _, tc := range []struct {
		op         gott.Operation
		multiplier int
		want       string
	}{
		{&Insert{Kind: InsertCharacter, Character: 'x'}, 3, "xxx"},
		{&Delete{}, 2, "x"},
		{&Insert{Kind: InsertSymbol, Key: "pi"}, 1, `x\pi`},
		{&Paste{Text: "+ 1"}, 2, `x\pi+1+1`},
		{&Move{Direction: gott.MoveLeft}, 6, `x\pi+1+1`},
		{&ReplaceCharacter{Character: '-'}, 1, `x\pi-1+1`},
	} {
		if err := e.Perform(tc.op, tc.multiplier); err != nil {
			t.Fatalf("%T: %v", tc.op, err)
		}
		if diff := cmp.Diff(tc.want, e.Latex()); diff != "" {
			t.Errorf("%T: latex (-want +got):\n%s", tc.op, diff)
		}
	}
	// the replacement leaves the cursor after the new minus sign
	if err := e.Repeat(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`x\pi-1+1`, e.Latex()); diff != "" {
		t.Errorf("repeat: latex (-want +got):\n%s", diff)
	}
}

func TestRepeatKeepsMultiplier(t *testing.T) {
	e := editor.NewEditor()
	if err := e.Perform(&Insert{Kind: InsertCharacter, Character: 'a'}, 2); err != nil {
		t.Fatal(err)
	}
	if err := e.Repeat(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("aaaa", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}

func TestInsertTemplate(t *testing.T) {
	e := editor.NewEditor()
	for _, op := range []gott.Operation{
		&Insert{Kind: InsertTemplate, Key: "frac"},
		&Move{Direction: gott.MoveRight},
		&Insert{Kind: InsertNthRoot, Key: "3"},
		&Move{Direction: gott.MoveRight},
		&Paste{Text: "x"},
	} {
		if err := e.Perform(op, 1); err != nil {
			t.Fatalf("%T: %v", op, err)
		}
	}
	if diff := cmp.Diff(`\frac{\sqrt[3]{x}}{}`, e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}

func TestInsertErrors(t *testing.T) {
	e := editor.NewEditor()
	if err := e.Perform(&Insert{Kind: InsertSymbol, Key: "nope"}, 1); !errors.Is(err, editor.ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, editor.ErrInvalidSymbol)
	}
	if err := e.Perform(&Insert{Kind: InsertTemplate, Key: "nope"}, 1); !errors.Is(err, editor.ErrUnknownTemplate) {
		t.Errorf("got %v, want %v", err, editor.ErrUnknownTemplate)
	}
	if err := e.Perform(&Paste{Text: "a\tb\x01"}, 1); !errors.Is(err, editor.ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, editor.ErrInvalidSymbol)
	}
	if diff := cmp.Diff("ab", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}

func TestSaveAndClear(t *testing.T) {
	e := editor.NewEditor()
	if err := e.Perform(&Paste{Text: "x=1"}, 1); err != nil {
		t.Fatal(err)
	}
	save := &Save{}
	if err := e.Perform(save, 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("x=1", save.Text); diff != "" {
		t.Errorf("saved (-want +got):\n%s", diff)
	}
	if err := e.Perform(&Clear{}, 1); err != nil {
		t.Fatal(err)
	}
	if n := e.HistoryLength(); n != 2 {
		t.Errorf("history length = %d, want 2", n)
	}
	if got := e.Latex(); got != "" {
		t.Errorf("latex = %q after clear", got)
	}
}

func TestReplaceCharacterRejected(t *testing.T) {
	e := editor.NewEditor()
	if err := e.Perform(&Paste{Text: "ab"}, 1); err != nil {
		t.Fatal(err)
	}
	err := e.Perform(&ReplaceCharacter{Character: '\t'}, 1)
	if !errors.Is(err, editor.ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, editor.ErrInvalidSymbol)
	}
	if diff := cmp.Diff("ab", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}

func TestReplaceCharacterAtSlotStart(t *testing.T) {
	e := editor.NewEditor()
	for _, op := range []gott.Operation{
		&Insert{Kind: InsertTemplate, Key: "sqrt"},
		&Move{Direction: gott.MoveRight},
		&ReplaceCharacter{Character: 'y'},
	} {
		if err := e.Perform(op, 1); err != nil {
			t.Fatalf("%T: %v", op, err)
		}
	}
	if diff := cmp.Diff(`\sqrt{y}`, e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}

func TestKeystroke(t *testing.T) {
	e := editor.NewEditor()
	typed := &Keystroke{Event: gott.Event{Type: gott.EventKey, Key: gott.KeyChar, Ch: 'z'}}
	if err := e.Perform(typed, 2); err != nil {
		t.Fatal(err)
	}
	if err := e.Repeat(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("zzzz", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
	backspace := &Keystroke{Event: gott.Event{Type: gott.EventKey, Key: gott.KeyBackspace}}
	if err := e.Perform(backspace, 3); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("z", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
	tab := &Keystroke{Event: gott.Event{Type: gott.EventKey, Key: gott.KeyChar, Ch: '\t'}}
	if err := e.Perform(tab, 1); !errors.Is(err, editor.ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, editor.ErrInvalidSymbol)
	}
}
