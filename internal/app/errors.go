package app

import (
	"errors"
	"fmt"
)

// ErrQuit signals that the session ended normally.
var ErrQuit = errors.New("quit requested")

// FatalError ends the application. The CLI prints it as
// "kite: <Op>: <Err>" after the terminal has been restored.
type FatalError struct {
	Op  string // Operation that failed (e.g. "window size", "write out.txt")
	Err error  // Underlying error
}

func (e *FatalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func fatal(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Op: op, Err: err}
}
