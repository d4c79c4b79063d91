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
package types

// Editor modes
const (
	ModeEdit    = 0
	ModeCommand = 1
	ModeLisp    = 2
	ModeQuit    = 9999
)

// Move directions
const (
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

type Key int

// Keys that the editor distinguishes from printable characters.
const (
	KeyChar Key = iota
	KeyUnsupported
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyCtrlE
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
)

// An Event is a key press or screen change, already translated from the terminal library.
// For printable characters Key is KeyChar and Ch holds the character.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Color int

const (
	ColorBlack Color = 0x01
	ColorWhite Color = 0x08
)

// A Display receives cells drawn by windows and bars.
type Display interface {
	SetCell(col int, row int, c rune, color Color)
	SetCellReversed(col int, row int, c rune, color Color)
}

// Editor is the surface that operations and the commander drive.
type Editor interface {
	InsertSymbol(key string) error
	InsertTemplate(key string) error
	InsertNthRoot(index string) error
	InsertCharacter(c rune) error
	ReplaceCharacter(c rune) error
	DeleteBefore()
	MoveCursor(direction int)
	HandleKey(event *Event) error
	Clear()
	Save() string
	RegisterSymbol(key, markup string) error
	RegisterTemplate(key, markup string, slots int) error

	Latex() string
	DisplayLatex() string
	Delimiter() string
	HistoryLength() int

	Perform(op Operation, multiplier int) error
	Repeat() error
}

type Operation interface {
	Perform(e Editor, multiplier int) error
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
}
