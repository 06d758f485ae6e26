package document

import (
	"fmt"
	"strings"

	"github.com/dshills/kite/internal/engine/text"
)

// Document is an ordered, non-empty collection of lines.
type Document struct {
	lines []text.Text
}

// New creates a document with a single empty line.
func New() *Document {
	d := &Document{}
	d.ReplaceAll(nil)
	return d
}

// FromLines creates a document holding a copy of lines.
func FromLines(lines []string) *Document {
	d := &Document{}
	d.ReplaceAll(lines)
	return d
}

// ReplaceAll discards the current content and loads lines.
// An empty input yields one empty line.
func (d *Document) ReplaceAll(lines []string) {
	d.lines = nil
	if len(lines) == 0 {
		d.AppendLine("")
		return
	}
	d.reserve(len(lines))
	for _, l := range lines {
		d.lines = append(d.lines, text.New(l))
	}
}

// Len returns the number of lines. It is always at least 1.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i, or nil if i is out of range.
func (d *Document) Line(i int) *text.Text {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	return &d.lines[i]
}

// LineLen returns the byte length of line i, or 0 if i is out of range.
func (d *Document) LineLen(i int) int {
	if l := d.Line(i); l != nil {
		return l.Len()
	}
	return 0
}

// LineString returns a copy of line i, or "" if i is out of range.
func (d *Document) LineString(i int) string {
	if l := d.Line(i); l != nil {
		return l.String()
	}
	return ""
}

// Lines returns a copy of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i := range d.lines {
		out[i] = d.lines[i].String()
	}
	return out
}

// Text returns the lines joined by newlines, without a trailing newline.
func (d *Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

// Size returns the byte length of Text.
func (d *Document) Size() int {
	n := len(d.lines) - 1
	for i := range d.lines {
		n += d.lines[i].Len()
	}
	return n
}

// AppendLine adds s as a new last line.
func (d *Document) AppendLine(s string) {
	d.reserve(1)
	d.lines = append(d.lines, text.New(s))
}

// InsertLine inserts s so that it becomes line i. Valid indices are
// [0, Len()].
func (d *Document) InsertLine(i int, s string) error {
	if i < 0 || i > len(d.lines) {
		return fmt.Errorf("insert line %d: %w", i, ErrLineOutOfRange)
	}
	d.insert(i, text.New(s))
	return nil
}

// SplitLine moves the bytes of line l from column c onward into a new line
// directly below it.
func (d *Document) SplitLine(l, c int) error {
	line := d.Line(l)
	if line == nil {
		return fmt.Errorf("split line %d: %w", l, ErrLineOutOfRange)
	}
	if c < 0 || c > line.Len() {
		return fmt.Errorf("split line %d at %d: %w", l, c, ErrColumnOutOfRange)
	}
	tail := text.FromBytes(line.Bytes()[c:])
	line.Resize(c)
	d.insert(l+1, tail)
	return nil
}

// MergeLines appends line l to line l-1 and removes line l.
func (d *Document) MergeLines(l int) error {
	if l == 0 {
		return fmt.Errorf("merge line %d: %w", l, ErrMergeFirstLine)
	}
	if l < 0 || l >= len(d.lines) {
		return fmt.Errorf("merge line %d: %w", l, ErrLineOutOfRange)
	}
	d.lines[l-1].Append(d.lines[l].Bytes())
	d.remove(l)
	return nil
}

// RemoveLine deletes line l. Removing the only line leaves one empty line.
func (d *Document) RemoveLine(l int) error {
	if l < 0 || l >= len(d.lines) {
		return fmt.Errorf("remove line %d: %w", l, ErrLineOutOfRange)
	}
	if len(d.lines) == 1 {
		d.lines[0].Clear()
		return nil
	}
	d.remove(l)
	return nil
}

func (d *Document) insert(i int, t text.Text) {
	d.reserve(1)
	d.lines = append(d.lines, text.Text{})
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = t
}

func (d *Document) remove(i int) {
	copy(d.lines[i:], d.lines[i+1:])
	d.lines[len(d.lines)-1] = text.Text{}
	d.lines = d.lines[:len(d.lines)-1]
}

// reserve grows the line slice to twice the required count when full.
func (d *Document) reserve(added int) {
	need := len(d.lines) + added
	if need <= cap(d.lines) {
		return
	}
	grown := make([]text.Text, len(d.lines), 2*need)
	copy(grown, d.lines)
	d.lines = grown
}
