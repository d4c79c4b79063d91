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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/timburks/mathed/commander"
	"github.com/timburks/mathed/config"
	"github.com/timburks/mathed/editor"
	"github.com/timburks/mathed/screen"
	"github.com/timburks/mathed/store"
	"github.com/timburks/mathed/typeset"
	gott "github.com/timburks/mathed/types"
)

const usage = "usage: mathed [--config path] [--png path] [--eval script | --repl | --history]"

func main() {
	var script, configPath, png string
	var repl, history bool

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval a lisp script
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return
			}
		case "--png": // typeset the expression to an image as it changes
			i++
			if i < len(os.Args) {
				png = os.Args[i]
			} else {
				log.Output(1, "No file specified for --png option")
				return
			}
		case "--repl":
			repl = true
		case "--history":
			history = true
		default:
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
	}

	o := options{script: script, config: configPath, png: png, repl: repl, history: history}
	if err := run(o); err != nil {
		log.Output(1, err.Error())
		os.Exit(1)
	}
}

type options struct {
	script  string
	config  string
	png     string
	repl    bool
	history bool
}

func run(o options) error {
	cfg, err := loadConfig(o.config)
	if err != nil {
		return err
	}

	// The editor manages the expression being built.
	e, err := newEditor(cfg)
	if err != nil {
		return err
	}

	// Cleared expressions are archived when a history database is configured.
	var st store.Store
	if cfg.History != "" {
		st, err = store.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer st.Close()
		e.SetArchive(st)
	}

	// The previewer typesets each change in the background.
	if o.png != "" {
		cfg.Preview = o.png
	}
	if cfg.Preview != "" {
		t := &typeset.PNG{Size: cfg.FontSize, DPI: cfg.DPI}
		previewer := typeset.NewPreviewer(t, typeset.WriteFile(cfg.Preview))
		defer previewer.Close()
		// let the last preview finish before closing
		defer previewer.Wait()
		e.SetDisplay(func(string) {
			previewer.Update(e.Latex())
		})
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	switch {
	case o.history:
		if st == nil {
			return errors.New("no history database configured")
		}
		return printHistory(os.Stdout, st)
	case o.script != "":
		b, err := os.ReadFile(o.script)
		if err != nil {
			return err
		}
		return runScript(os.Stdout, c, e, string(b))
	case o.repl:
		return runREPL(c, e)
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return runScript(os.Stdout, c, e, string(b))
	default:
		return runScreen(c, e)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path, false)
	}
	return config.Load(config.DefaultPath(), true)
}

func newEditor(cfg *config.Config) (*editor.Editor, error) {
	e := editor.NewEditor()
	e.SetDelimiter(cfg.Delimiter)
	e.SetPersistent(cfg.Persistent)
	for key, markup := range cfg.Symbols {
		if err := e.RegisterSymbol(key, markup); err != nil {
			return nil, err
		}
	}
	for key, t := range cfg.Templates {
		if err := e.RegisterTemplate(key, t.Markup, t.Slots); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// runScript evaluates a lisp script and prints the resulting markup.
func runScript(w io.Writer, c *commander.Commander, e *editor.Editor, source string) error {
	if strings.TrimSpace(source) != "" {
		if _, err := c.Eval("(begin " + source + "\n)"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, e.Latex())
	return err
}

func printHistory(w io.Writer, st store.Store) error {
	next, err := st.NextExpressionSeq()
	if err != nil {
		return err
	}
	expressions, err := st.Expressions(0, next)
	if err != nil {
		return err
	}
	for _, x := range expressions {
		fmt.Fprintf(w, "%5d  %s\n", x.Seq, x.Latex)
	}
	return nil
}

const historyFile = ".mathed_history"

// runREPL reads lisp expressions and ':' commands from a prompt, printing
// the display markup after each one.
func runREPL(c *commander.Commander, e *editor.Editor) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt("mathed> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		output, quit := evalLine(c, e, line)
		fmt.Println(output)
		if quit {
			break
		}
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

// evalLine runs one REPL line: a ':' command or a lisp expression.
func evalLine(c *commander.Commander, e *editor.Editor, line string) (output string, quit bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		message := c.Execute(strings.TrimPrefix(line, ":"))
		if c.GetMode() == gott.ModeQuit {
			return message, true
		}
		if message == "" {
			message = e.DisplayLatex()
		}
		return message, false
	}
	return c.ParseEval(line), false
}

func runScreen(c *commander.Commander, e *editor.Editor) error {
	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return errors.New("unable to open the terminal")
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.mathedlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	w := editor.NewWindow(e)
	for c.GetMode() != gott.ModeQuit {
		s.Render(w, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}
