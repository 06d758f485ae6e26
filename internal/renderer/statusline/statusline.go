// Package statusline renders the bottom row of the screen: either the
// status bar or, while a command is being typed, the command line.
package statusline

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusLine holds what the status row shows.
type StatusLine struct {
	// Display state
	status   string // Mode name or status message
	filename string // Associated file name (empty for none)
	modified bool   // Document has unsaved changes
	count    string // Pending count as typed
	line     int    // Cursor line (1-indexed for display)
	col      int    // Cursor column (1-indexed for display)

	// Command line state
	commandActive bool
	commandBuffer string
	commandCursor int

	barStyle ansi.Style
	width    int
}

// New creates a status line for a terminal width columns wide.
func New(width int) *StatusLine {
	return &StatusLine{
		width:    width,
		barStyle: ansi.Style{}.Reverse(true),
	}
}

// SetStatus sets the text shown at the left edge.
func (s *StatusLine) SetStatus(text string) { s.status = text }

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) { s.filename = filename }

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) { s.modified = modified }

// SetCount updates the pending count shown in the middle.
func (s *StatusLine) SetCount(count string) { s.count = count }

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetCommand switches the row to the command line showing buffer with
// the cursor at byte cursor. An inactive command line restores the bar.
func (s *StatusLine) SetCommand(active bool, buffer string, cursor int) {
	s.commandActive = active
	s.commandBuffer = buffer
	s.commandCursor = cursor
}

// Resize updates the width.
func (s *StatusLine) Resize(width int) { s.width = width }

// CommandCursorColumn returns the 1-based screen column of the command
// line cursor.
func (s *StatusLine) CommandCursorColumn() int {
	return min(s.commandCursor+2, max(s.width, 1))
}

// Render returns the row content, exactly width cells wide.
func (s *StatusLine) Render() string {
	if s.commandActive {
		return fit(":"+s.commandBuffer, s.width)
	}
	return s.barStyle.Styled(s.Bar())
}

// Bar returns the unstyled status bar text, exactly width cells wide.
func (s *StatusLine) Bar() string {
	row := []byte(strings.Repeat(" ", max(s.width, 0)))

	left := " " + s.status + "  " + s.displayName()
	n := copy(row, left)

	right := s.formatPosition() + " "
	if start := len(row) - len(right); start > n {
		copy(row[start:], right)
	}

	if s.count != "" {
		start := (len(row) - len(s.count)) / 2
		if start > n && start+len(s.count) < len(row)-len(right) {
			copy(row[start:], s.count)
		}
	}
	return string(row)
}

func (s *StatusLine) displayName() string {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if s.modified {
		name += " [+]"
	}
	return name
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	return strconv.Itoa(max(s.line, 1)) + "," + strconv.Itoa(max(s.col, 1))
}

// fit pads or truncates str to width bytes.
func fit(str string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(str) >= width {
		return str[:width]
	}
	return str + strings.Repeat(" ", width-len(str))
}
