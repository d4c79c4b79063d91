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
package commander

import (
	"fmt"
	"log"

	"github.com/steelseries/golisp"

	"github.com/timburks/mathed/operations"
	gott "github.com/timburks/mathed/types"
)

// active is the commander whose editor the lisp primitives drive.
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("symbol", "1", SymbolImpl)
	golisp.MakePrimitiveFunction("template", "1", TemplateImpl)
	golisp.MakePrimitiveFunction("nth-root", "1", NthRootImpl)
	golisp.MakePrimitiveFunction("type", "1", TypeImpl)
	golisp.MakePrimitiveFunction("right", "0", RightImpl)
	golisp.MakePrimitiveFunction("left", "0", LeftImpl)
	golisp.MakePrimitiveFunction("delete", "0", DeleteImpl)
	golisp.MakePrimitiveFunction("clear", "0", ClearImpl)
	golisp.MakePrimitiveFunction("save", "0", SaveImpl)
	golisp.MakePrimitiveFunction("latex", "0", LatexImpl)
	golisp.MakePrimitiveFunction("display-latex", "0", DisplayLatexImpl)
	golisp.MakePrimitiveFunction("history-count", "0", HistoryCountImpl)
	golisp.MakePrimitiveFunction("register-symbol", "2", RegisterSymbolImpl)
	golisp.MakePrimitiveFunction("register-template", "3", RegisterTemplateImpl)
}

func activeEditor() (gott.Editor, error) {
	if active == nil {
		return nil, fmt.Errorf("no editor")
	}
	return active.editor, nil
}

func stringArg(name string, val *golisp.Data) (string, error) {
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

// perform runs op on the active editor and returns the display markup.
func perform(op gott.Operation) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	if err := e.Perform(op, 1); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.DisplayLatex()), nil
}

func insert(name string, kind int, args *golisp.Data) (*golisp.Data, error) {
	key, err := stringArg(name, golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return perform(&operations.Insert{Kind: kind, Key: key})
}

func SymbolImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return insert("symbol", operations.InsertSymbol, args)
}

func TemplateImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return insert("template", operations.InsertTemplate, args)
}

func NthRootImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return insert("nth-root", operations.InsertNthRoot, args)
}

func TypeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArg("type", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return perform(&operations.Paste{Text: text})
}

func RightImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Move{Direction: gott.MoveRight})
}

func LeftImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Move{Direction: gott.MoveLeft})
}

func DeleteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Delete{})
}

func ClearImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Clear{})
}

func SaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	op := &operations.Save{}
	if _, err := perform(op); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(op.Text), nil
}

func LatexImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.Latex()), nil
}

func DisplayLatexImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.DisplayLatex()), nil
}

func HistoryCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.HistoryLength())), nil
}

func RegisterSymbolImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	key, err := stringArg("register-symbol", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	markup, err := stringArg("register-symbol", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	if err := e.RegisterSymbol(key, markup); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(key), nil
}

func RegisterTemplateImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	key, err := stringArg("register-template", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	markup, err := stringArg("register-template", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	slots := golisp.Caddr(args)
	if !golisp.IntegerP(slots) {
		return nil, fmt.Errorf("register-template requires an integer slot count")
	}
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	if err := e.RegisterTemplate(key, markup, int(golisp.IntegerValue(slots))); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(key), nil
}

// Eval evaluates lisp source against this commander's editor.
func (c *Commander) Eval(source string) (string, error) {
	active = c
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		return "", err
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}

// ParseEval evaluates lisp source and returns its value as text, or the
// error message.
func (c *Commander) ParseEval(command string) string {
	value, err := c.Eval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return value
}
