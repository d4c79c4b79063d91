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
// Package config reads editor settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the name of the settings file in the home directory.
const DefaultFileName = ".mathed.yaml"

// Config holds the editor settings.
type Config struct {
	Delimiter  string              `yaml:"delimiter"`
	Persistent bool                `yaml:"persistent"`
	History    string              `yaml:"history"` // bbolt path; empty disables the archive
	Preview    string              `yaml:"preview"` // PNG path for live typesetting
	FontSize   float64             `yaml:"font_size"`
	DPI        float64             `yaml:"dpi"`
	Symbols    map[string]string   `yaml:"symbols"`   // extra symbol keys and their markup
	Templates  map[string]Template `yaml:"templates"` // extra template keys
}

// A Template is a user-defined structural template. Markup names its slots
// #1 to #9.
type Template struct {
	Markup string `yaml:"markup"`
	Slots  int    `yaml:"slots"`
}

func Default() *Config {
	return &Config{
		Delimiter: "$$",
		FontSize:  12,
		DPI:       256,
	}
}

// DefaultPath returns the settings file in the user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads settings from path over the defaults. A missing file is not an
// error when optional is set.
func Load(path string, optional bool) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Delimiter == "" {
		c.Delimiter = "$$"
	}
	if c.FontSize <= 0 || c.DPI <= 0 {
		return nil, fmt.Errorf("%s: font_size and dpi must be positive", path)
	}
	return c, nil
}
