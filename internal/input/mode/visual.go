package mode

import "github.com/dshills/kite/internal/input/key"

// VisualMode is a placeholder selection mode. It swallows every key.
type VisualMode struct{}

// NewVisualMode creates a new visual mode instance.
func NewVisualMode() *VisualMode {
	return &VisualMode{}
}

// ID returns the mode identifier.
func (m *VisualMode) ID() ID { return ModeVisual }

// Status returns the status bar text.
func (m *VisualMode) Status() string { return "VISUAL" }

// Enter is called when entering visual mode.
func (m *VisualMode) Enter(Editor) {}

// Exit is called when leaving visual mode.
func (m *VisualMode) Exit(Editor) {}

// HandleKey ignores the key.
func (m *VisualMode) HandleKey(Editor, key.Event) error { return nil }
