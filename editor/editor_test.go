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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gott "github.com/timburks/mathed/types"
)

type fakeArchive struct {
	added []string
	err   error
}

func (a *fakeArchive) AddExpression(latex string) (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	a.added = append(a.added, latex)
	return len(a.added), nil
}

func TestClear(t *testing.T) {
	e := NewEditor()
	archive := &fakeArchive{}
	e.SetArchive(archive)
	step(t, e, "frac", right, 'x')
	first := e.Expression()

	e.Clear()
	if n := e.HistoryLength(); n != 1 {
		t.Errorf("history length = %d, want 1", n)
	}
	if diff := cmp.Diff("", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
	if e.Expression() == first || e.Expression().Number() <= first.Number() {
		t.Errorf("clear did not start a new expression")
	}
	if e.Cursor().Block() != e.Expression().Root() {
		t.Errorf("cursor is not in the new expression")
	}

	// empty expressions enter the history but not the archive
	e.Clear()
	if n := e.HistoryLength(); n != 2 {
		t.Errorf("history length = %d, want 2", n)
	}
	if diff := cmp.Diff([]string{`\frac{x}{}`}, archive.added); diff != "" {
		t.Errorf("archived (-want +got):\n%s", diff)
	}
	if got := e.History()[0]; got != first {
		t.Errorf("history starts with %v, want the first expression", got)
	}
}

func TestClearArchiveFailure(t *testing.T) {
	e := NewEditor()
	e.SetArchive(&fakeArchive{err: errors.New("disk full")})
	step(t, e, 'x')
	e.Clear()
	if n := e.HistoryLength(); n != 1 {
		t.Errorf("history length = %d, want 1", n)
	}
}

func TestSave(t *testing.T) {
	e := NewEditor()
	step(t, e, 'x', "sup", right, '2')
	if diff := cmp.Diff(`x^{2}`, e.Save()); diff != "" {
		t.Errorf("saved (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("", e.Latex()); diff != "" {
		t.Errorf("latex after save (-want +got):\n%s", diff)
	}

	e.SetDelimiter("$")
	e.SetPersistent(true)
	step(t, e, 'y')
	if diff := cmp.Diff("$", e.Delimiter()); diff != "" {
		t.Errorf("delimiter (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(`y`, e.Save()); diff != "" {
		t.Errorf("saved (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("y", e.Latex()); diff != "" {
		t.Errorf("persistent latex (-want +got):\n%s", diff)
	}
	if n := e.HistoryLength(); n != 1 {
		t.Errorf("history length = %d, want 1", n)
	}
}

func TestRepeatWithoutOperation(t *testing.T) {
	e := NewEditor()
	if err := e.Repeat(); err != nil {
		t.Errorf("Repeat() = %v", err)
	}
	if diff := cmp.Diff("", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}

func TestRegisterSymbol(t *testing.T) {
	e := NewEditor()
	if err := e.RegisterSymbol("ell", `\ell`); err != nil {
		t.Fatal(err)
	}
	if err := e.InsertSymbol("ell"); err != nil {
		t.Fatal(err)
	}
	if err := e.InsertFragment(`\ell`); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`\ell\ell`, e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
	if err := e.RegisterSymbol("", `\ell`); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, ErrInvalidSymbol)
	}

	// registrations belong to one session
	if err := NewEditor().InsertSymbol("ell"); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, ErrInvalidSymbol)
	}
}

func TestRegisterReservedMarkup(t *testing.T) {
	e := NewEditor()
	for _, markup := range []string{CursorMarker, Placeholder, `x` + CursorMarker, `\square_{0}`} {
		if err := e.RegisterSymbol("bar", markup); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("RegisterSymbol(%q) = %v, want %v", markup, err, ErrInvalidSymbol)
		}
		if err := e.RegisterTemplate("bar", markup+"{#1}", 1); !errors.Is(err, ErrInvalidTemplate) {
			t.Errorf("RegisterTemplate(%q) = %v, want %v", markup, err, ErrInvalidTemplate)
		}
	}
	if err := e.InsertSymbol("bar"); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, ErrInvalidSymbol)
	}
	step(t, e, 'x')
	if n := strings.Count(e.DisplayLatex(), CursorMarker); n != 1 {
		t.Errorf("%d cursor markers in %q", n, e.DisplayLatex())
	}
}

func TestRegisterTemplate(t *testing.T) {
	e := NewEditor()
	if err := e.RegisterTemplate("binom", `\binom{#1}{#2}`, 2); err != nil {
		t.Fatal(err)
	}
	if err := e.RegisterTemplate("bar", `\overline{#1}`, 1); err != nil {
		t.Fatal(err)
	}

	step(t, e, "binom")
	if diff := cmp.Diff(`\binom{\square}{\square}`+CursorMarker, e.DisplayLatex()); diff != "" {
		t.Errorf("display latex (-want +got):\n%s", diff)
	}
	step(t, e, right, 'n', right, right, right, 'k')
	if diff := cmp.Diff(`\binom{n}{k` + CursorMarker + `}`, e.DisplayLatex()); diff != "" {
		t.Errorf("display latex (-want +got):\n%s", diff)
	}
	if depth := e.Cursor().Depth(); depth != 1 {
		t.Errorf("depth = %d, want 1", depth)
	}

	// leave the denominator, then add a bar over y
	step(t, e, right, right, "bar", right, 'y')
	if diff := cmp.Diff(`\binom{n}{k}\overline{y}`, e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}

	// the whole template goes with one delete from just after it
	step(t, e, right, right)
	e.DeleteBefore()
	if diff := cmp.Diff(`\binom{n}{k}`, e.Latex()); diff != "" {
		t.Errorf("latex after delete (-want +got):\n%s", diff)
	}

	keys := e.Catalog().TemplateKeys()
	if !contains(keys, "binom") || !contains(keys, "frac") {
		t.Errorf("template keys %v", keys)
	}
	if err := NewEditor().InsertTemplate("binom"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("got %v, want %v", err, ErrUnknownTemplate)
	}
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func TestRegisterTemplateErrors(t *testing.T) {
	e := NewEditor()
	for _, tc := range []struct {
		key    string
		markup string
		slots  int
	}{
		{"", `\bar{#1}`, 1},
		{"none", `\bar{x}`, 0},
		{"many", `#1`, 10},
		{"unused", `\binom{#1}{x}`, 2},
		{"extra", `\binom{#1}{#3}`, 2},
	} {
		if err := e.RegisterTemplate(tc.key, tc.markup, tc.slots); !errors.Is(err, ErrInvalidTemplate) {
			t.Errorf("RegisterTemplate(%q, %q, %d) = %v, want %v", tc.key, tc.markup, tc.slots, err, ErrInvalidTemplate)
		}
	}
	if keys := e.Catalog().TemplateKeys(); contains(keys, "unused") {
		t.Errorf("rejected template was registered")
	}
}

func TestReplaceCharacter(t *testing.T) {
	e := NewEditor()
	step(t, e, 'a', 'b')
	if err := e.ReplaceCharacter('\t'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, ErrInvalidSymbol)
	}
	if diff := cmp.Diff("ab", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
	if err := e.ReplaceCharacter('c'); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("ac", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}

	// at the start of a slot the character goes into the slot
	step(t, e, "sqrt", right)
	if err := e.ReplaceCharacter('y'); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`ac\sqrt{y}`, e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}

func TestHandleKeyReportsUntypeable(t *testing.T) {
	e := NewEditor()
	err := e.HandleKey(&gott.Event{Type: gott.EventKey, Key: gott.KeyChar, Ch: '\t'})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("got %v, want %v", err, ErrInvalidSymbol)
	}
	if err := e.HandleKey(&gott.Event{Type: gott.EventKey, Key: gott.KeyChar, Ch: 'q'}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("q", e.Latex()); diff != "" {
		t.Errorf("latex (-want +got):\n%s", diff)
	}
}
