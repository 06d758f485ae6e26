package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs too long.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrInvalidCommandName is returned for names that cannot be typed
	// on the command line.
	ErrInvalidCommandName = errors.New("invalid command name")
)
