// Package backend provides the terminal the editor draws to and reads
// keys from.
package backend

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"time"
)

// Errors returned by backends.
var (
	// ErrNotStarted is returned when a backend is used before Init.
	ErrNotStarted = errors.New("backend not started")

	// ErrUnsupported is returned where no terminal implementation exists.
	ErrUnsupported = errors.New("terminal backend not supported on this platform")
)

// Backend defines the terminal surface used by the application loop.
type Backend interface {
	// Init puts the terminal into raw mode and starts reading input.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal state.
	// Must be called when done with the backend.
	Shutdown() error

	// Size returns the current terminal dimensions.
	Size() (rows, cols int, err error)

	// Write sends raw bytes to the terminal.
	Write(p []byte) (int, error)

	// ReadByteTimeout waits up to timeout for one input byte. A timeout is
	// reported as ok == false with a nil error.
	ReadByteTimeout(timeout time.Duration) (b byte, ok bool, err error)
}

// NullBackend is a scripted backend for testing.
// Input is consumed from a queue and output is captured.
type NullBackend struct {
	mu      sync.Mutex
	rows    int
	cols    int
	input   []byte
	output  bytes.Buffer
	closed  bool
	started bool
	stopped bool
	idle    int
	sizeErr error
	onIdle  func()
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(rows, cols int) *NullBackend {
	return &NullBackend{rows: rows, cols: cols}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = true
	return nil
}

func (b *NullBackend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
	return nil
}

func (b *NullBackend) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return b.rows, b.cols, nil
}

func (b *NullBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.output.Write(p)
}

// ReadByteTimeout pops the next queued byte. An empty queue times out
// immediately, or returns io.EOF once CloseInput has been called.
func (b *NullBackend) ReadByteTimeout(time.Duration) (byte, bool, error) {
	b.mu.Lock()
	if len(b.input) > 0 {
		c := b.input[0]
		b.input = b.input[1:]
		b.mu.Unlock()
		return c, true, nil
	}
	if b.closed {
		b.mu.Unlock()
		return 0, false, io.EOF
	}
	b.idle++
	onIdle := b.onIdle
	b.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
	return 0, false, nil
}

// PushInput queues bytes to be read.
func (b *NullBackend) PushInput(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.input = append(b.input, s...)
}

// CloseInput makes reads fail with io.EOF once the queue is empty.
func (b *NullBackend) CloseInput() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// OnIdle registers a callback run on every read that times out.
func (b *NullBackend) OnIdle(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onIdle = fn
}

// Resize changes the reported dimensions.
func (b *NullBackend) Resize(rows, cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = rows
	b.cols = cols
}

// SetSizeError makes Size fail with err.
func (b *NullBackend) SetSizeError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sizeErr = err
}

// Output returns everything written so far.
func (b *NullBackend) Output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.output.String()
}

// Idle returns how many reads timed out.
func (b *NullBackend) Idle() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.idle
}

// Started reports whether Init was called.
func (b *NullBackend) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

// Stopped reports whether Shutdown was called.
func (b *NullBackend) Stopped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stopped
}
