package mode

import (
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
)

// NormalMode implements navigation mode.
// Digits build a count; motion keys consume it.
type NormalMode struct{}

// NewNormalMode creates a new normal mode instance.
func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

// ID returns the mode identifier.
func (m *NormalMode) ID() ID { return ModeNormal }

// Status returns the status bar text.
func (m *NormalMode) Status() string { return "NORMAL" }

// Enter is called when entering normal mode.
func (m *NormalMode) Enter(Editor) {}

// Exit drops any half-typed count.
func (m *NormalMode) Exit(ed Editor) {
	ed.Count().Reset()
}

var normalKeyMotions = map[key.Key]motion.Motion{
	key.KeyLeft:     motion.Left,
	key.KeyRight:    motion.Right,
	key.KeyUp:       motion.Up,
	key.KeyDown:     motion.Down,
	key.KeyPageUp:   motion.PageUp,
	key.KeyPageDown: motion.PageDown,
	key.KeyHome:     motion.LineStart,
	key.KeyEnd:      motion.LineEnd,
}

var normalByteMotions = map[byte]motion.Motion{
	'h': motion.Left,
	'l': motion.Right,
	'k': motion.Up,
	'j': motion.Down,
	'w': motion.WordForward,
	'b': motion.WordBackward,
	'g': motion.FileStart,
	'G': motion.FileEnd,
	'$': motion.LineEnd,
}

var normalSwitches = map[byte]ID{
	'i': ModeInsert,
	's': ModeInsert,
	'v': ModeVisual,
	':': ModeCommandLine,
}

// HandleKey interprets one key in normal mode.
func (m *NormalMode) HandleKey(ed Editor, ev key.Event) error {
	if ev.IsDigit() {
		ed.Count().Push(int(ev.Byte - '0'))
		return nil
	}

	if mv, ok := normalKeyMotions[ev.Key]; ok {
		ed.Move(mv, ed.Count().Take())
		return nil
	}
	if !ev.IsByte() {
		return nil
	}
	if mv, ok := normalByteMotions[ev.Byte]; ok {
		ed.Move(mv, ed.Count().Take())
		return nil
	}
	if id, ok := normalSwitches[ev.Byte]; ok {
		ed.SwitchMode(id)
	}
	return nil
}
