package mode

import (
	"fmt"

	"github.com/dshills/kite/internal/command"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/document"
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
)

// ID identifies a mode.
type ID uint8

// Standard modes.
const (
	ModeNormal ID = iota
	ModeInsert
	ModeCommandLine
	ModeVisual
)

// String returns the mode's name.
func (id ID) String() string {
	switch id {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeCommandLine:
		return "command-line"
	case ModeVisual:
		return "visual"
	default:
		return fmt.Sprintf("mode(%d)", uint8(id))
	}
}

// Mode defines the interface for editor modes.
type Mode interface {
	// ID returns the mode identifier.
	ID() ID

	// Status returns the text shown on the status bar while the mode is
	// active and no message is set.
	Status() string

	// Enter is called when entering this mode.
	Enter(ed Editor)

	// Exit is called when leaving this mode.
	Exit(ed Editor)

	// HandleKey interprets one key event. A returned error is fatal to
	// the session.
	HandleKey(ed Editor, ev key.Event) error
}

// Editor is what a mode handler may use of the editing session.
type Editor interface {
	// Document returns the document being edited.
	Document() *document.Document

	// Cursor returns the session cursor.
	Cursor() *cursor.Cursor

	// Move applies a motion through the motion engine.
	Move(m motion.Motion, count int)

	// Count returns the pending repeat count.
	Count() *Count

	// SwitchMode changes the active mode.
	SwitchMode(id ID)

	// CommandLine returns the command line being typed.
	CommandLine() *command.Line

	// ExecuteCommand runs a ':' command line.
	ExecuteCommand(line string) error

	// SetModified marks the document as changed.
	SetModified()

	// Cols returns the terminal width.
	Cols() int
}
