package lua

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kite/internal/command"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/document"
)

// maxFeedDepth bounds kite.feed calls that trigger commands that feed.
const maxFeedDepth = 8

// Session is what scripts may reach of the editing session.
type Session interface {
	Document() *document.Document
	Cursor() *cursor.Cursor
	SetMessage(msg string)
	SetModified()
	Feed(spec string) error
	FileName() string
}

// Host exposes the kite API to scripts and resolves script commands.
type Host struct {
	state    *State
	session  Session
	commands map[string]*lua.LFunction
	logger   *log.Logger
	feeding  int

	// fatal is a session error raised through kite.feed. It is reported
	// even when the script catches the Lua error.
	fatal error
}

var _ command.Resolver = (*Host)(nil)

// HostOption configures a Host.
type HostOption func(*Host)

// WithLogger sets the logger that receives print output and errors.
func WithLogger(logger *log.Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithState uses a preconfigured state instead of a default one.
func WithState(s *State) HostOption {
	return func(h *Host) {
		h.state = s
	}
}

// NewHost creates a host bound to session.
func NewHost(session Session, opts ...HostOption) *Host {
	h := &Host{
		session:  session,
		commands: make(map[string]*lua.LFunction),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.state == nil {
		h.state = NewState()
	}
	h.logger = h.logger.With("component", "lua")
	h.state.SetPrint(func(msg string) {
		h.logger.Info(msg, "source", "print")
	})
	h.installAPI()
	return h
}

// Load runs the script at path from fs.
func (h *Host) Load(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	if err := h.run(path, string(data)); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	h.logger.Debug("script loaded", "path", path, "commands", h.Commands())
	return nil
}

// DoString runs a chunk of Lua code.
func (h *Host) DoString(code string) error {
	return h.run("<string>", code)
}

func (h *Host) run(name, code string) error {
	err := h.state.DoString(name, code)
	if fatal := h.takeFatal(); fatal != nil {
		return fatal
	}
	return err
}

func (h *Host) takeFatal() error {
	err := h.fatal
	h.fatal = nil
	return err
}

// Commands returns the registered command names, sorted.
func (h *Host) Commands() []string {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a handler for a script command.
func (h *Host) Resolve(name string) (command.Handler, bool) {
	fn, ok := h.commands[name]
	if !ok {
		return nil, false
	}
	return func(env command.Env, args []string) error {
		tbl := h.state.L.NewTable()
		for _, a := range args {
			tbl.Append(lua.LString(a))
		}
		err := h.state.CallFunction(fn, tbl)
		if fatal := h.takeFatal(); fatal != nil {
			return fatal
		}
		if err != nil {
			h.logger.Warn("command failed", "command", name, "err", err)
			env.SetMessage("Lua error: " + firstLine(err.Error()))
		}
		return nil
	}, true
}

// Close releases the Lua state.
func (h *Host) Close() error {
	return h.state.Close()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func validCommandName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}
