//go:build windows

package backend

import "time"

// TerminalOptions configures a Terminal.
type TerminalOptions struct {
	AltScreen bool
	OnResize  func()
}

// Terminal is unavailable on Windows.
type Terminal struct{}

// NewTerminal always fails with ErrUnsupported.
func NewTerminal(TerminalOptions) (*Terminal, error) {
	return nil, ErrUnsupported
}

func (t *Terminal) Init() error                 { return ErrUnsupported }
func (t *Terminal) Shutdown() error             { return nil }
func (t *Terminal) Size() (int, int, error)     { return 0, 0, ErrUnsupported }
func (t *Terminal) Write(p []byte) (int, error) { return 0, ErrUnsupported }

func (t *Terminal) ReadByteTimeout(time.Duration) (byte, bool, error) {
	return 0, false, ErrUnsupported
}
