package mode

import (
	"fmt"

	"github.com/dshills/kite/internal/input/key"
)

// Manager manages editor modes and coordinates mode transitions.
type Manager struct {
	// modes holds all registered modes by ID.
	modes map[ID]Mode

	// current is the active mode.
	current Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// NewManager creates a new mode manager.
func NewManager() *Manager {
	return &Manager{
		modes: make(map[ID]Mode),
	}
}

// NewStandardManager creates a manager with the four standard modes
// registered and Normal active.
func NewStandardManager(ed Editor) *Manager {
	m := NewManager()
	m.Register(NewNormalMode())
	m.Register(NewInsertMode())
	m.Register(NewCommandLineMode())
	m.Register(NewVisualMode())
	_ = m.SetInitialMode(ed, ModeNormal)
	return m
}

// Register adds a mode to the manager.
// If a mode with the same ID exists, it is replaced.
func (m *Manager) Register(mode Mode) {
	m.modes[mode.ID()] = mode
}

// Get returns a mode by ID, or nil if not found.
func (m *Manager) Get(id ID) Mode {
	return m.modes[id]
}

// Current returns the current mode.
// Returns nil if no mode is set.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentID returns the ID of the current mode, or ModeNormal if no mode
// is set.
func (m *Manager) CurrentID() ID {
	if m.current == nil {
		return ModeNormal
	}
	return m.current.ID()
}

// IsMode returns true if the current mode is id.
func (m *Manager) IsMode(id ID) bool {
	return m.current != nil && m.current.ID() == id
}

// SetInitialMode makes id current without calling Exit on anything.
// Should only be called once during initialization.
func (m *Manager) SetInitialMode(ed Editor, id ID) error {
	mode, ok := m.modes[id]
	if !ok {
		return fmt.Errorf("unknown mode: %s", id)
	}
	m.current = mode
	mode.Enter(ed)
	return nil
}

// Switch changes to a different mode.
// Calls Exit() on the current mode and Enter() on the new mode, then
// notifies callbacks. Switching to the active mode re-enters it.
func (m *Manager) Switch(ed Editor, id ID) error {
	next, ok := m.modes[id]
	if !ok {
		return fmt.Errorf("unknown mode: %s", id)
	}

	old := m.current
	if old != nil {
		old.Exit(ed)
	}
	next.Enter(ed)

	m.current = next

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(old, next)
		}
	}
	return nil
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// HandleKey routes ev to the current mode.
func (m *Manager) HandleKey(ed Editor, ev key.Event) error {
	if m.current == nil {
		return nil
	}
	return m.current.HandleKey(ed, ev)
}
