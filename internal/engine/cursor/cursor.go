// Package cursor provides the editing position within a document.
package cursor

import (
	"fmt"
	"math"
)

// EndOfLine is the desired column meaning "stick to the end of the line"
// across vertical moves.
const EndOfLine = math.MaxInt

// Lines is the read-only view of a document needed to keep a cursor valid.
type Lines interface {
	Len() int
	LineLen(i int) int
}

// Cursor is a line/column position plus the column the user last asked for.
//
// Desired may exceed the length of the current line; Column is derived from
// it on vertical moves.
type Cursor struct {
	Line    int
	Column  int
	Desired int
}

// SetColumn moves to column c and remembers it as the desired column.
func (c *Cursor) SetColumn(col int) {
	c.Column = col
	c.Desired = col
}

// ApplyDesired sets Column to Desired clamped to a line of length n.
func (c *Cursor) ApplyDesired(n int) {
	c.Column = min(c.Desired, n)
	if c.Column < 0 {
		c.Column = 0
	}
}

// Clamp forces the cursor back inside lines. Desired is left untouched.
func (c *Cursor) Clamp(lines Lines) {
	if c.Line >= lines.Len() {
		c.Line = lines.Len() - 1
	}
	if c.Line < 0 {
		c.Line = 0
	}
	if n := lines.LineLen(c.Line); c.Column > n {
		c.Column = n
	}
	if c.Column < 0 {
		c.Column = 0
	}
}

// Valid reports whether the cursor is inside lines.
func (c Cursor) Valid(lines Lines) bool {
	return c.Line >= 0 && c.Line < lines.Len() &&
		c.Column >= 0 && c.Column <= lines.LineLen(c.Line)
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.Line, c.Column)
}
