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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mathed.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
delimiter: "\\["
persistent: true
history: /tmp/mathed.db
dpi: 72
symbols:
  ell: \ell
  deg: ^{\circ}
templates:
  binom:
    markup: \binom{#1}{#2}
    slots: 2
`)
	got, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Delimiter:  `\[`,
		Persistent: true,
		History:    "/tmp/mathed.db",
		FontSize:   12,
		DPI:        72,
		Symbols:    map[string]string{"ell": `\ell`, "deg": `^{\circ}`},
		Templates:  map[string]Template{"binom": {Markup: `\binom{#1}{#2}`, Slots: 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	got, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
	if _, err := Load(path, false); err == nil {
		t.Errorf("no error for a missing required file")
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, text := range []string{
		"delimiter: [",
		"dpi: -1",
		"font_size: big",
	} {
		if _, err := Load(write(t, text), false); err == nil {
			t.Errorf("no error for %q", text)
		}
	}
}
