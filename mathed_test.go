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
package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timburks/mathed/commander"
	"github.com/timburks/mathed/config"
	"github.com/timburks/mathed/editor"
	"github.com/timburks/mathed/store"
)

func setup(t *testing.T) (*commander.Commander, *editor.Editor) {
	cfg := config.Default()
	cfg.Symbols = map[string]string{"ell": `\ell`}
	cfg.Templates = map[string]config.Template{"binom": {Markup: `\binom{#1}{#2}`, Slots: 2}}
	e, err := newEditor(cfg)
	if err != nil {
		t.Fatalf("newEditor failed: %+v", err)
	}
	return commander.NewCommander(e), e
}

func TestRunScript(t *testing.T) {
	c, e := setup(t)
	var out bytes.Buffer
	script := `
(template "frac")
(right)
(type "x")
(right)
(right)
(right)
(symbol "ell")
`
	if err := runScript(&out, c, e, script); err != nil {
		t.Fatalf("runScript failed: %+v", err)
	}
	if diff := cmp.Diff("\\frac{x}{\\ell}\n", out.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestRunScriptWithConfiguredTemplate(t *testing.T) {
	c, e := setup(t)
	var out bytes.Buffer
	script := `
(template "binom")
(right)
(type "n")
(right)
(right)
(right)
(type "2")
`
	if err := runScript(&out, c, e, script); err != nil {
		t.Fatalf("runScript failed: %+v", err)
	}
	if diff := cmp.Diff("\\binom{n}{2}\n", out.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestNewEditorRejectsBadTemplate(t *testing.T) {
	cfg := config.Default()
	cfg.Templates = map[string]config.Template{"bad": {Markup: `\bad{#2}`, Slots: 1}}
	if _, err := newEditor(cfg); err == nil {
		t.Errorf("no error for a template with an unknown slot")
	}
}

func TestRunEmptyScript(t *testing.T) {
	c, e := setup(t)
	var out bytes.Buffer
	if err := runScript(&out, c, e, "\n"); err != nil {
		t.Fatalf("runScript failed: %+v", err)
	}
	if diff := cmp.Diff("\n", out.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestRunScriptError(t *testing.T) {
	c, e := setup(t)
	var out bytes.Buffer
	if err := runScript(&out, c, e, `(symbol "nope")`); err == nil {
		t.Errorf("no error for an unknown symbol")
	}
}

func TestEvalLine(t *testing.T) {
	c, e := setup(t)
	for _, tc := range []struct {
		line   string
		output string
		quit   bool
	}{
		{`:sym pi`, `\pi` + editor.CursorMarker, false},
		{`(type "2")`, `\pi2` + editor.CursorMarker, false},
		{`:save`, `$$\pi2$$`, false},
		{`:history`, "1 expressions in history", false},
		{`:q`, "", true},
	} {
		output, quit := evalLine(c, e, tc.line)
		if diff := cmp.Diff(tc.output, output); diff != "" {
			t.Errorf("%s: output (-want +got):\n%s", tc.line, diff)
		}
		if quit != tc.quit {
			t.Errorf("%s: quit = %v", tc.line, quit)
		}
	}
}

func TestPrintHistory(t *testing.T) {
	st, cleanup := store.MustGetTempStore()
	defer cleanup()
	st.AddExpression(`\pi`)
	st.AddExpression(`\frac{x}{y}`)
	var out bytes.Buffer
	if err := printHistory(&out, st); err != nil {
		t.Fatalf("printHistory failed: %+v", err)
	}
	want := "    1  \\pi\n    2  \\frac{x}{y}\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}
