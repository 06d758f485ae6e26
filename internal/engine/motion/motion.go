// Package motion moves a cursor through a document.
//
// An Engine ties a document, a cursor and a viewport together. Vertical
// moves consult the viewport's scroll policy with the cursor's current
// screen row before changing line, so the screen follows the cursor.
package motion

import (
	"errors"
	"fmt"

	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/document"
	"github.com/dshills/kite/internal/renderer/viewport"
)

// ErrUnknownMotion is returned by Apply for a Motion it does not implement.
var ErrUnknownMotion = errors.New("unknown motion")

// Motion identifies a cursor movement.
type Motion uint8

const (
	None Motion = iota
	Left
	Right
	Up
	Down
	WordForward
	WordBackward
	PageUp
	PageDown
	LineStart
	LineEnd
	FileStart
	FileEnd
	// WrapLeft and WrapRight step one byte, crossing line boundaries.
	WrapLeft
	WrapRight
)

var motionNames = map[Motion]string{
	None:         "none",
	Left:         "left",
	Right:        "right",
	Up:           "up",
	Down:         "down",
	WordForward:  "wordForward",
	WordBackward: "wordBackward",
	PageUp:       "pageUp",
	PageDown:     "pageDown",
	LineStart:    "lineStart",
	LineEnd:      "lineEnd",
	FileStart:    "fileStart",
	FileEnd:      "fileEnd",
	WrapLeft:     "wrapLeft",
	WrapRight:    "wrapRight",
}

// String returns the motion's name.
func (m Motion) String() string {
	if s, ok := motionNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Motion(%d)", uint8(m))
}

// Engine applies motions to a cursor.
type Engine struct {
	doc *document.Document
	cur *cursor.Cursor
	vp  *viewport.Viewport
}

// New creates an engine operating on the given session state.
func New(doc *document.Document, cur *cursor.Cursor, vp *viewport.Viewport) *Engine {
	return &Engine{doc: doc, cur: cur, vp: vp}
}

// Apply performs m count times. A count of zero or less means once.
// Unknown motions leave the cursor untouched and return ErrUnknownMotion.
func (e *Engine) Apply(m Motion, count int) error {
	if count <= 0 {
		count = 1
	}

	switch m {
	case Left, Right, Up, Down, WordForward, WordBackward, WrapLeft, WrapRight:
		for range count {
			e.step(m)
		}
	case PageUp:
		for range e.vp.Rows() * count {
			e.up()
		}
	case PageDown:
		for range e.vp.Rows() * count {
			e.down()
		}
	case LineStart:
		e.cur.SetColumn(0)
	case LineEnd:
		e.cur.Column = e.doc.LineLen(e.cur.Line)
		e.cur.Desired = cursor.EndOfLine
	case FileStart:
		e.cur.Line = 0
		e.vp.JumpStart()
		e.cur.ApplyDesired(e.doc.LineLen(0))
	case FileEnd:
		e.cur.Line = e.doc.Len() - 1
		e.vp.JumpEnd(e.doc)
		e.cur.ApplyDesired(e.doc.LineLen(e.cur.Line))
	default:
		return fmt.Errorf("apply %s: %w", m, ErrUnknownMotion)
	}

	e.vp.Reveal(e.doc, e.cur.Line)
	return nil
}

func (e *Engine) step(m Motion) {
	switch m {
	case Left:
		if e.cur.Column > 0 {
			e.cur.SetColumn(e.cur.Column - 1)
		}
	case Right:
		if e.cur.Column < e.doc.LineLen(e.cur.Line) {
			e.cur.SetColumn(e.cur.Column + 1)
		}
	case Up:
		e.up()
	case Down:
		e.down()
	case WordForward:
		e.wordForward()
	case WordBackward:
		e.wordBackward()
	case WrapLeft:
		e.wrapLeft()
	case WrapRight:
		e.wrapRight()
	}
}

// up moves one line up, scrolling first if the cursor sits in the top
// margin.
func (e *Engine) up() bool {
	if e.cur.Line == 0 {
		return false
	}
	e.vp.ScrollUpIfNeeded(e.screenRow())
	e.cur.Line--
	e.cur.ApplyDesired(e.doc.LineLen(e.cur.Line))
	return true
}

// down moves one line down, scrolling first if the cursor sits in the
// bottom margin.
func (e *Engine) down() bool {
	if e.cur.Line >= e.doc.Len()-1 {
		return false
	}
	e.vp.ScrollDownIfNeeded(e.doc, e.screenRow())
	e.cur.Line++
	e.cur.ApplyDesired(e.doc.LineLen(e.cur.Line))
	return true
}

func (e *Engine) screenRow() int {
	return e.vp.CursorScreenRow(e.doc, e.cur.Line, e.cur.Column)
}
