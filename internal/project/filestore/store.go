// Package filestore loads and writes the file being edited.
//
// Files are treated as newline separated lines. A trailing carriage return
// on a line is dropped on load; a final newline does not start an extra
// empty line. Writes join lines with '\n' and add no trailing newline.
package filestore

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// FileMode is the permission used for files the store creates.
const FileMode fs.FileMode = 0o644

// Store reads and writes documents through an afero filesystem.
type Store struct {
	fs afero.Fs
}

// New creates a store backed by fsys.
func New(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// NewOS creates a store backed by the operating system's filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Load reads path into lines. A missing file is not an error: it yields a
// single empty line and exists=false.
func (s *Store) Load(path string) (lines []string, exists bool, err error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{""}, false, nil
	}
	if err != nil {
		return nil, false, &PathError{Op: "load", Path: path, Err: err}
	}
	return SplitLines(string(data)), true, nil
}

// Write replaces path with lines and returns the number of bytes written.
func (s *Store) Write(path string, lines []string) (int, error) {
	data := JoinLines(lines)
	if err := afero.WriteFile(s.fs, path, []byte(data), FileMode); err != nil {
		return 0, &PathError{Op: "write", Path: path, Err: err}
	}
	return len(data), nil
}

// SplitLines breaks file content into lines.
func SplitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// JoinLines is the inverse of SplitLines for content without a trailing
// newline.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
