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
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// symbolMarkup maps symbol keys to their markup.
var symbolMarkup = map[string]string{
	// lowercase greek letters
	"alpha":   `\alpha`,
	"beta":    `\beta`,
	"gamma":   `\gamma`,
	"delta":   `\delta`,
	"epsilon": `\epsilon`,
	"zeta":    `\zeta`,
	"eta":     `\eta`,
	"theta":   `\theta`,
	"iota":    `\iota`,
	"kappa":   `\kappa`,
	"lambda":  `\lambda`,
	"mu":      `\mu`,
	"nu":      `\nu`,
	"xi":      `\xi`,
	"omicron": `\omicron`,
	"pi":      `\pi`,
	"rho":     `\rho`,
	"sigma":   `\sigma`,
	"tau":     `\tau`,
	"upsilon": `\upsilon`,
	"phi":     `\phi`,
	"chi":     `\chi`,
	"psi":     `\psi`,
	"omega":   `\omega`,

	// uppercase greek letters; the ones without a macro are latin capitals
	"Alpha":   `A`,
	"Beta":    `B`,
	"Gamma":   `\Gamma`,
	"Delta":   `\Delta`,
	"Epsilon": `E`,
	"Zeta":    `Z`,
	"Eta":     `H`,
	"Theta":   `\Theta`,
	"Iota":    `I`,
	"Kappa":   `K`,
	"Lambda":  `\Lambda`,
	"Mu":      `M`,
	"Nu":      `N`,
	"Xi":      `\Xi`,
	"Omicron": `O`,
	"Pi":      `\Pi`,
	"Rho":     `P`,
	"Sigma":   `\Sigma`,
	"Tau":     `T`,
	"Upsilon": `\Upsilon`,
	"Phi":     `\Phi`,
	"Chi":     `X`,
	"Psi":     `\Psi`,
	"Omega":   `\Omega`,

	// operators and relations
	"times":        `\times`,
	"div":          `\div`,
	"centerdot":    `\cdot`,
	"plusmn":       `\pm`,
	"mnplus":       `\mp`,
	"starf":        `\star`,
	"bigcup":       `\bigcup`,
	"bigcap":       `\bigcap`,
	"cup":          `\cup`,
	"cap":          `\cap`,
	"lt":           `\lt`,
	"gt":           `\gt`,
	"leq":          `\leq`,
	"GreaterEqual": `\geq`,
	"equals":       `=`,
	"approx":       `\approx`,
	"NotEqual":     `\ne`,
	"sub":          `\subset`,
	"sup":          `\supset`,
	"sube":         `\subseteq`,
	"supe":         `\supseteq`,
	"nsub":         `\not\subset`,
	"nsup":         `\not\supset`,
	"nsube":        `\not\subseteq`,
	"nsupe":        `\not\supseteq`,
	"propto":       `\propto`,
	"parallel":     `\parallel`,
	"npar":         `\nparallel`,
	"asympeq":      `\asymp`,
	"isin":         `\in`,
	"notin":        `\notin`,
	"exist":        `\exists`,
	"nexist":       `\nexists`,
	"perp":         `\perp`,
	"angle":        `\angle`,
	"angmsd":       `\measuredangle`,

	// arrows
	"Leftarrow":          `\Leftarrow`,
	"Rightarrow":         `\Rightarrow`,
	"Leftrightarrow":     `\Leftrightarrow`,
	"rightarrow":         `\to`,
	"leftarrow":          `\gets`,
	"leftrightarrow":     `\leftrightarrow`,
	"longrightarrow":     `\longrightarrow`,
	"longleftarrow":      `\longleftarrow`,
	"longleftrightarrow": `\longleftrightarrow`,
	"uparrow":            `\uparrow`,
	"downarrow":          `\downarrow`,
	"updownarrow":        `\updownarrow`,

	// miscellaneous
	"PartialD": `\partial`,
	"hbar":     `\hbar`,
	"real":     `\Re`,
	"nabla":    `\nabla`,
	"infin":    `\infty`,
}

// characterMarkup maps typeable punctuation to markup. Letters and digits
// stand for themselves.
var characterMarkup = map[rune]string{
	'+':  `+`,
	'-':  `-`,
	'*':  `*`,
	'/':  `/`,
	'=':  `=`,
	'<':  `<`,
	'>':  `>`,
	'(':  `(`,
	')':  `)`,
	'[':  `[`,
	']':  `]`,
	',':  `,`,
	'.':  `.`,
	'!':  `!`,
	'?':  `?`,
	':':  `:`,
	';':  `;`,
	'|':  `|`,
	'\'': `'`,
	'{':  `\{`,
	'}':  `\}`,
	'%':  `\%`,
	'#':  `\#`,
	'&':  `\&`,
	'$':  `\$`,
	'~':  `\sim`,
	'\\': `\backslash`,
}

// Structural template keys.
const (
	TemplateSqrt     = "sqrt"
	TemplateNthRoot  = "nsqrt"
	TemplateLimit    = "lim"
	TemplateSub      = "sub"
	TemplateSup      = "sup"
	TemplateFraction = "frac"
	TemplateSubSup   = "subsup"
)

var unaryTemplates = map[string]string{
	TemplateSqrt:  `\sqrt{%s}`,
	TemplateLimit: `\lim_{%s}`,
	TemplateSub:   `_{%s}`,
	TemplateSup:   `^{%s}`,
}

var binaryTemplates = map[string]string{
	TemplateFraction: `\frac{%s}{%s}`,
	TemplateSubSup:   `_{%s}^{%s}`,
}

var bigOperators = map[string]bool{
	"sum":      true,
	"prod":     true,
	"coprod":   true,
	"int":      true,
	"iint":     true,
	"iiint":    true,
	"oint":     true,
	"bigcup":   true,
	"bigcap":   true,
	"bigvee":   true,
	"bigwedge": true,
}

var trigFunctions = map[string]bool{
	"sin":    true,
	"cos":    true,
	"tan":    true,
	"sec":    true,
	"csc":    true,
	"cot":    true,
	"arcsin": true,
	"arccos": true,
	"arctan": true,
}

// recognizedMarkup is every fragment a Symbol may carry, built once from the
// tables above.
var recognizedMarkup = func() map[string]bool {
	m := make(map[string]bool)
	for _, v := range symbolMarkup {
		m[v] = true
	}
	for _, v := range characterMarkup {
		m[v] = true
	}
	return m
}()

// CharacterMarkup returns the markup for a typed character.
func CharacterMarkup(c rune) (string, bool) {
	if c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
		return string(c), true
	}
	m, ok := characterMarkup[c]
	return m, ok
}

func isRecognizedMarkup(fragment string) bool {
	if recognizedMarkup[fragment] {
		return true
	}
	r := []rune(fragment)
	if len(r) != 1 {
		return false
	}
	m, ok := CharacterMarkup(r[0])
	return ok && m == fragment
}

// A Catalog resolves symbol and template keys. The default tables are shared
// and never modified; registrations made on a Catalog belong to its session.
type Catalog struct {
	symbols   map[string]string
	markup    map[string]bool
	templates map[string]registeredTemplate
}

type registeredTemplate struct {
	markup string
	slots  int
}

func NewCatalog() *Catalog {
	return &Catalog{
		symbols:   make(map[string]string),
		markup:    make(map[string]bool),
		templates: make(map[string]registeredTemplate),
	}
}

// reserved reports whether markup contains the cursor marker or the
// placeholder, which only the display serializer may produce.
func reserved(markup string) bool {
	return strings.Contains(markup, CursorMarker) || strings.Contains(markup, Placeholder)
}

// RegisterSymbol adds a symbol to this catalog. Registered markup is accepted
// by the catalog's symbol constructors.
func (c *Catalog) RegisterSymbol(key, markup string) error {
	if key == "" || markup == "" {
		return fmt.Errorf("%w: empty registration %q", ErrInvalidSymbol, key)
	}
	if reserved(markup) {
		return fmt.Errorf("%w: %q uses reserved markup", ErrInvalidSymbol, key)
	}
	c.symbols[key] = markup
	c.markup[markup] = true
	return nil
}

// RegisterTemplate adds a structural template with the given number of slots.
// The markup names its slots #1 to #9 and must use each of them. A registered
// key takes precedence over a built-in one.
func (c *Catalog) RegisterTemplate(key, markup string, slots int) error {
	if key == "" {
		return fmt.Errorf("%w: empty registration", ErrInvalidTemplate)
	}
	if err := checkCustomMarkup(markup, slots); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	c.templates[key] = registeredTemplate{markup: markup, slots: slots}
	return nil
}

// Lookup returns the markup for a symbol key.
func (c *Catalog) Lookup(key string) (string, bool) {
	if m, ok := c.symbols[key]; ok {
		return m, true
	}
	m, ok := symbolMarkup[key]
	return m, ok
}

func (c *Catalog) recognizes(fragment string) bool {
	return c.markup[fragment] || isRecognizedMarkup(fragment)
}

// Symbol builds the leaf for a symbol key.
func (c *Catalog) Symbol(block *Block, key string) (*Symbol, error) {
	m, ok := c.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, key)
	}
	return &Symbol{parent: block, markup: m}, nil
}

// Fragment builds a leaf from markup, which must be known to the catalog.
func (c *Catalog) Fragment(block *Block, fragment string) (*Symbol, error) {
	if !c.recognizes(fragment) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, fragment)
	}
	return &Symbol{parent: block, markup: fragment}, nil
}

// Template builds the structural component named by key: a fixed template,
// a big operator or a trigonometric function.
func (c *Catalog) Template(block *Block, key string) (Component, error) {
	if t, ok := c.templates[key]; ok {
		return NewCustom(block, key, t.markup, t.slots)
	}
	switch {
	case key == TemplateNthRoot:
		return NewNthRoot(block, defaultRootIndex)
	case unaryTemplates[key] != "":
		return NewUnary(block, key)
	case binaryTemplates[key] != "":
		return NewBinary(block, key)
	case bigOperators[key]:
		return NewBigOperator(block, key)
	case trigFunctions[key]:
		return NewTrig(block, key)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, key)
}

// SymbolKeys returns the keys of the default and registered symbols in order.
func (c *Catalog) SymbolKeys() []string {
	keys := make([]string, 0, len(symbolMarkup)+len(c.symbols))
	for k := range symbolMarkup {
		keys = append(keys, k)
	}
	for k := range c.symbols {
		if _, ok := symbolMarkup[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func isBuiltinTemplate(key string) bool {
	return key == TemplateNthRoot || unaryTemplates[key] != "" || binaryTemplates[key] != "" ||
		bigOperators[key] || trigFunctions[key]
}

// TemplateKeys returns every key accepted by Template in order.
func (c *Catalog) TemplateKeys() []string {
	keys := []string{TemplateNthRoot}
	for k := range c.templates {
		if !isBuiltinTemplate(k) {
			keys = append(keys, k)
		}
	}
	for k := range unaryTemplates {
		keys = append(keys, k)
	}
	for k := range binaryTemplates {
		keys = append(keys, k)
	}
	for k := range bigOperators {
		keys = append(keys, k)
	}
	for k := range trigFunctions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
