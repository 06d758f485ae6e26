package mode

import (
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
)

// InsertMode implements text entry.
type InsertMode struct{}

// NewInsertMode creates a new insert mode instance.
func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

// ID returns the mode identifier.
func (m *InsertMode) ID() ID { return ModeInsert }

// Status returns the status bar text.
func (m *InsertMode) Status() string { return "INSERT" }

// Enter is called when entering insert mode.
func (m *InsertMode) Enter(Editor) {}

// Exit is called when leaving insert mode.
func (m *InsertMode) Exit(Editor) {}

var insertKeyMotions = map[key.Key]motion.Motion{
	key.KeyLeft:     motion.Left,
	key.KeyRight:    motion.Right,
	key.KeyUp:       motion.Up,
	key.KeyDown:     motion.Down,
	key.KeyPageUp:   motion.PageUp,
	key.KeyPageDown: motion.PageDown,
	key.KeyHome:     motion.LineStart,
	key.KeyEnd:      motion.LineEnd,
}

// HandleKey interprets one key in insert mode.
func (m *InsertMode) HandleKey(ed Editor, ev key.Event) error {
	if mv, ok := insertKeyMotions[ev.Key]; ok {
		ed.Move(mv, 1)
		return nil
	}

	switch ev.Key {
	case key.KeyEnter:
		return m.newline(ed)
	case key.KeyBackspace:
		return m.backspace(ed)
	case key.KeyDelete:
		return m.deleteForward(ed)
	}

	if ev.IsPrintable() {
		cur := ed.Cursor()
		ed.Document().Line(cur.Line).InsertAt(cur.Column, ev.Byte)
		cur.SetColumn(cur.Column + 1)
		ed.SetModified()
	}
	return nil
}

// newline splits the line at the cursor and moves to the start of the new
// line.
func (m *InsertMode) newline(ed Editor) error {
	cur := ed.Cursor()
	if err := ed.Document().SplitLine(cur.Line, cur.Column); err != nil {
		return err
	}
	ed.SetModified()
	ed.Move(motion.Down, 1)
	ed.Move(motion.LineStart, 1)
	return nil
}

// backspace deletes left of the cursor. At the start of a line it joins
// the line onto the previous one and leaves the cursor at the seam.
func (m *InsertMode) backspace(ed Editor) error {
	cur := ed.Cursor()
	doc := ed.Document()

	if cur.Column > 0 {
		doc.Line(cur.Line).DeleteAt(cur.Column - 1)
		cur.SetColumn(cur.Column - 1)
		ed.SetModified()
		return nil
	}
	if cur.Line == 0 {
		return nil
	}

	line := cur.Line
	seam := doc.LineLen(line - 1)
	ed.Move(motion.Up, 1)
	if err := doc.MergeLines(line); err != nil {
		return err
	}
	cur.SetColumn(seam)
	ed.SetModified()
	return nil
}

// deleteForward deletes the byte under the cursor, or joins the next line
// when the cursor is at the line end.
func (m *InsertMode) deleteForward(ed Editor) error {
	cur := ed.Cursor()
	doc := ed.Document()

	if cur.Column < doc.LineLen(cur.Line) {
		doc.Line(cur.Line).DeleteAt(cur.Column)
		ed.SetModified()
		return nil
	}
	if cur.Line+1 >= doc.Len() {
		return nil
	}
	if err := doc.MergeLines(cur.Line + 1); err != nil {
		return err
	}
	ed.SetModified()
	return nil
}
