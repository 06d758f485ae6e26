package document

import "errors"

// Errors returned by document operations.
var (
	// ErrLineOutOfRange indicates a line index outside [0, Len()).
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrColumnOutOfRange indicates a column outside [0, LineLen(line)].
	ErrColumnOutOfRange = errors.New("column out of range")

	// ErrMergeFirstLine indicates an attempt to merge line 0 into a
	// nonexistent previous line.
	ErrMergeFirstLine = errors.New("cannot merge first line")
)
