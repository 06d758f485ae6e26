//go:build !windows

package backend

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
)

// TerminalOptions configures a Terminal.
type TerminalOptions struct {
	// AltScreen switches to the alternate screen while running.
	AltScreen bool

	// OnResize is called from a signal goroutine when the window changes.
	OnResize func()
}

// Terminal implements Backend on the controlling tty.
type Terminal struct {
	tty  tcell.Tty
	opts TerminalOptions

	input   chan byte
	done    chan struct{}
	readErr error
	started bool

	mu sync.Mutex
}

// NewTerminal opens /dev/tty. Nothing changes on the terminal until Init.
func NewTerminal(opts TerminalOptions) (*Terminal, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, err
	}
	return &Terminal{tty: tty, opts: opts}, nil
}

// Init enables raw mode, enters the alternate screen when configured and
// starts the input reader.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.tty.Start(); err != nil {
		return err
	}
	t.started = true
	if t.opts.OnResize != nil {
		t.tty.NotifyResize(t.opts.OnResize)
	}
	if t.opts.AltScreen {
		if _, err := io.WriteString(t.tty, ansi.SetModeAltScreenSaveCursor); err != nil {
			return err
		}
	}

	t.input = make(chan byte, 256)
	t.done = make(chan struct{})
	go t.readLoop(t.input, t.done)
	return nil
}

// readLoop turns blocking tty reads into a channel of bytes. The channel
// is closed when reading fails.
func (t *Terminal) readLoop(input chan<- byte, done <-chan struct{}) {
	defer close(input)
	buf := make([]byte, 128)
	for {
		n, err := t.tty.Read(buf)
		for _, b := range buf[:n] {
			select {
			case input <- b:
			case <-done:
				return
			}
		}
		if err != nil {
			t.readErr = err
			return
		}
	}
}

// ReadByteTimeout waits up to timeout for one input byte.
func (t *Terminal) ReadByteTimeout(timeout time.Duration) (byte, bool, error) {
	if t.input == nil {
		return 0, false, ErrNotStarted
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case b, ok := <-t.input:
		if !ok {
			if t.readErr != nil {
				return 0, false, t.readErr
			}
			return 0, false, io.EOF
		}
		return b, true, nil
	case <-timer.C:
		return 0, false, nil
	}
}

// Size returns the window size in rows and columns.
func (t *Terminal) Size() (int, int, error) {
	ws, err := t.tty.WindowSize()
	if err != nil {
		return 0, 0, err
	}
	return ws.Height, ws.Width, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.tty.Write(p)
}

// Shutdown clears the screen, leaves the alternate screen and restores
// the saved terminal attributes.
func (t *Terminal) Shutdown() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return nil
	}
	t.started = false
	if t.done != nil {
		close(t.done)
	}

	reset := ansi.CursorHomePosition + ansi.EraseEntireScreen + ansi.ShowCursor
	if t.opts.AltScreen {
		reset += ansi.ResetModeAltScreenSaveCursor
	}
	_, werr := io.WriteString(t.tty, reset)

	t.tty.NotifyResize(nil)
	return errors.Join(werr, t.tty.Drain(), t.tty.Stop())
}
