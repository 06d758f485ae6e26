package editor

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/kite/internal/command"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/document"
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/mode"
	"github.com/dshills/kite/internal/renderer"
	"github.com/dshills/kite/internal/renderer/viewport"
)

// ErrNoWriter is returned by WriteFile when the session has no file
// writer.
var ErrNoWriter = errors.New("no file writer configured")

// FileWriter persists document lines.
type FileWriter interface {
	Write(path string, lines []string) (int, error)
}

// Option configures a Session.
type Option func(*Session)

// WithLines sets the initial document content.
func WithLines(lines []string) Option {
	return func(s *Session) {
		s.doc.ReplaceAll(lines)
	}
}

// WithFileName associates the session with a file.
func WithFileName(name string) Option {
	return func(s *Session) {
		s.fileName = name
	}
}

// WithWriter sets where :w writes.
func WithWriter(w FileWriter) Option {
	return func(s *Session) {
		s.writer = w
	}
}

// WithAfterWrite registers a hook called after each successful write.
func WithAfterWrite(fn func(path string)) Option {
	return func(s *Session) {
		s.afterWrite = fn
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMargins overrides the viewport scroll margins.
func WithMargins(m viewport.MarginConfig) Option {
	return func(s *Session) {
		s.vp.SetMargins(m)
	}
}

// Session is one editing session.
type Session struct {
	doc      *document.Document
	cur      cursor.Cursor
	vp       *viewport.Viewport
	motions  *motion.Engine
	modes    *mode.Manager
	count    mode.Count
	cmdline  command.Line
	commands *command.Interpreter

	message  string
	fileName string
	modified bool
	quit     bool

	writer     FileWriter
	afterWrite func(path string)
	logger     *log.Logger
}

// New creates a session for a terminal of rows by cols holding one empty
// line, in Normal mode.
func New(rows, cols int, opts ...Option) *Session {
	s := &Session{
		doc:      document.New(),
		vp:       viewport.New(rows, cols),
		commands: command.NewInterpreter(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "editor")
	s.motions = motion.New(s.doc, &s.cur, s.vp)
	s.modes = mode.NewStandardManager(s)
	s.modes.OnChange(func(from, to mode.Mode) {
		s.message = ""
		s.logger.Debug("mode changed", "from", modeName(from), "to", modeName(to))
	})
	return s
}

func modeName(m mode.Mode) string {
	if m == nil {
		return "none"
	}
	return m.ID().String()
}

// HandleKey processes one key event. Escape returns to Normal mode from
// anywhere and Ctrl-Q ends the session; other keys go to the active mode.
// A returned error is fatal.
//
// Afterwards the cursor is clamped to the document and its line is
// scrolled into view.
func (s *Session) HandleKey(ev key.Event) error {
	err := s.dispatch(ev)
	s.cur.Clamp(s.doc)
	s.vp.Reveal(s.doc, s.cur.Line)
	return err
}

func (s *Session) dispatch(ev key.Event) error {
	switch ev.Key {
	case key.KeyEscape:
		s.SwitchMode(mode.ModeNormal)
		s.count.Reset()
		s.message = ""
		return nil
	case key.KeyQuit:
		s.RequestQuit()
		return nil
	}
	return s.modes.HandleKey(s, ev)
}

// Feed parses spec as a key sequence and handles each key in turn,
// stopping early once the session has quit.
func (s *Session) Feed(spec string) error {
	events, err := key.ParseSequence(spec)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if s.quit {
			return nil
		}
		if err := s.HandleKey(ev); err != nil {
			return err
		}
	}
	return nil
}

// Resize updates the terminal size and keeps the cursor visible.
func (s *Session) Resize(rows, cols int) {
	if rows == s.vp.Rows() && cols == s.vp.Cols() {
		return
	}
	s.vp.Resize(rows, cols)
	s.vp.Reveal(s.doc, s.cur.Line)
	s.logger.Debug("resized", "rows", s.vp.Rows(), "cols", s.vp.Cols())
}

// Frame snapshots what the renderer needs.
func (s *Session) Frame() renderer.Frame {
	start, end := s.vp.VisibleRange(s.doc)
	lines := make([]string, 0, end-start+1)
	for i := start; i <= end && i < s.doc.Len(); i++ {
		lines = append(lines, s.doc.LineString(i))
	}

	f := renderer.Frame{
		Rows:      s.vp.Rows(),
		Cols:      s.vp.Cols(),
		Lines:     lines,
		CursorRow: s.vp.CursorScreenRow(s.doc, s.cur.Line, s.cur.Column),
		CursorCol: s.vp.CursorScreenColumn(s.cur.Column),
		Mode:      s.modes.Current().Status(),
		Message:   s.message,
		FileName:  s.fileName,
		Modified:  s.modified,
		Count:     s.count.String(),
		Line:      s.cur.Line + 1,
		Col:       s.cur.Column + 1,
		Welcome:   renderer.ShowWelcome(s.modified, s.fileName),
	}
	if s.modes.IsMode(mode.ModeCommandLine) {
		f.CommandLine = true
		f.CommandText = s.cmdline.String()
		f.CommandPos = s.cmdline.Pos()
	}
	return f
}

// Mode returns the active mode.
func (s *Session) Mode() mode.ID { return s.modes.CurrentID() }

// Message returns the status message, or "" when none is set.
func (s *Session) Message() string { return s.message }

// Modified reports whether the document changed since it was loaded or
// last written to its file.
func (s *Session) Modified() bool { return s.modified }

// QuitRequested reports whether the session has ended.
func (s *Session) QuitRequested() bool { return s.quit }

// Interpreter returns the command interpreter, for registering commands.
func (s *Session) Interpreter() *command.Interpreter { return s.commands }

// Viewport returns the session viewport.
func (s *Session) Viewport() *viewport.Viewport { return s.vp }

// Logger returns the session logger.
func (s *Session) Logger() *log.Logger { return s.logger }
