package editor

import (
	"github.com/dshills/kite/internal/command"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/document"
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/mode"
)

var (
	_ mode.Editor = (*Session)(nil)
	_ command.Env = (*Session)(nil)
)

// Document returns the document being edited.
func (s *Session) Document() *document.Document { return s.doc }

// Cursor returns the session cursor.
func (s *Session) Cursor() *cursor.Cursor { return &s.cur }

// Count returns the pending count.
func (s *Session) Count() *mode.Count { return &s.count }

// CommandLine returns the command line being typed.
func (s *Session) CommandLine() *command.Line { return &s.cmdline }

// Cols returns the terminal width.
func (s *Session) Cols() int { return s.vp.Cols() }

// SetModified marks the document as changed.
func (s *Session) SetModified() { s.modified = true }

// Move applies a motion. Motion errors leave the cursor alone and are
// only logged.
func (s *Session) Move(m motion.Motion, count int) {
	if err := s.motions.Apply(m, count); err != nil {
		s.logger.Warn("motion failed", "motion", m, "err", err)
	}
}

// SwitchMode changes the active mode.
func (s *Session) SwitchMode(id mode.ID) {
	if err := s.modes.Switch(s, id); err != nil {
		s.logger.Error("switch mode", "mode", id, "err", err)
	}
}

// ExecuteCommand runs a ':' command line.
func (s *Session) ExecuteCommand(line string) error {
	s.logger.Debug("command", "line", line)
	return s.commands.Execute(s, line)
}

// RequestQuit ends the session after the current key.
func (s *Session) RequestQuit() {
	if s.modified {
		s.logger.Warn("quitting with unsaved changes", "file", s.fileName)
	}
	s.quit = true
}

// FileName returns the associated file name.
func (s *Session) FileName() string { return s.fileName }

// SetFileName associates the session with name.
func (s *Session) SetFileName(name string) { s.fileName = name }

// SetMessage replaces the status message.
func (s *Session) SetMessage(msg string) { s.message = msg }

// WriteFile writes the document to path. Writing the associated file
// clears the modified flag.
func (s *Session) WriteFile(path string) (lines, bytes int, err error) {
	if s.writer == nil {
		return 0, 0, ErrNoWriter
	}
	content := s.doc.Lines()
	n, err := s.writer.Write(path, content)
	if err != nil {
		return 0, n, err
	}
	if path == s.fileName {
		s.modified = false
	}
	s.logger.Info("wrote file", "path", path, "lines", len(content), "bytes", n)
	if s.afterWrite != nil {
		s.afterWrite(path)
	}
	return len(content), n, nil
}
