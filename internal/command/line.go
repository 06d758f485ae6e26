package command

import "github.com/dshills/kite/internal/engine/text"

// Line is the command text being typed and the cursor within it.
type Line struct {
	text text.Text
	pos  int
}

// Reset empties the line.
func (l *Line) Reset() {
	l.text.Clear()
	l.pos = 0
}

// String returns the typed text.
func (l *Line) String() string {
	return l.text.String()
}

// Len returns the length of the typed text.
func (l *Line) Len() int {
	return l.text.Len()
}

// Pos returns the cursor position, in [0, Len()].
func (l *Line) Pos() int {
	return l.pos
}

// MoveLeft moves the cursor one byte left. It reports false at the start.
func (l *Line) MoveLeft() bool {
	if l.pos == 0 {
		return false
	}
	l.pos--
	return true
}

// MoveRight moves the cursor one byte right. It reports false at the end.
func (l *Line) MoveRight() bool {
	if l.pos >= l.text.Len() {
		return false
	}
	l.pos++
	return true
}

// Insert adds b at the cursor unless the line already holds maxLen bytes.
func (l *Line) Insert(b byte, maxLen int) bool {
	if l.text.Len() >= maxLen {
		return false
	}
	l.text.InsertAt(l.pos, b)
	l.pos++
	return true
}

// Backspace removes the byte left of the cursor. It reports false when
// the cursor is at the start and nothing was removed.
func (l *Line) Backspace() bool {
	if l.pos == 0 {
		return false
	}
	l.pos--
	l.text.DeleteAt(l.pos)
	return true
}

// Delete removes the byte under the cursor, if any.
func (l *Line) Delete() {
	l.text.DeleteAt(l.pos)
}
