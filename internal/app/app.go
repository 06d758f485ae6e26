// Package app wires the editing session to a terminal and runs the
// session loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/dshills/kite/internal/config"
	"github.com/dshills/kite/internal/editor"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/plugin/lua"
	"github.com/dshills/kite/internal/project/filestore"
	"github.com/dshills/kite/internal/project/watcher"
	"github.com/dshills/kite/internal/renderer"
	"github.com/dshills/kite/internal/renderer/backend"
)

// Status messages set by the application.
const (
	MsgNewFile     = "New File"
	MsgFileChanged = "File changed on disk"
)

// writeSuppression hides watcher events caused by the editor's own
// writes.
const writeSuppression = time.Second

// Options configures the application.
type Options struct {
	// Config holds the resolved settings.
	Config config.Config

	// FileName is the file to open, or "" for an unnamed document.
	FileName string

	// Backend is the terminal. Required.
	Backend backend.Backend

	// Fs is where documents and scripts are read and written.
	// Defaults to the OS file system.
	Fs afero.Fs

	// Logger receives diagnostics. Defaults to discarding them.
	Logger *log.Logger

	// Version is shown in the welcome banner.
	Version string
}

// Application runs one editing session on a terminal.
type Application struct {
	opts     Options
	backend  backend.Backend
	store    *filestore.Store
	session  *editor.Session
	decoder  *key.Decoder
	renderer *renderer.Renderer
	watcher  *watcher.Watcher
	host     *lua.Host
	logger   *log.Logger

	id string
}

// New loads the file and builds the session. Nothing touches the
// terminal until Run.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, errors.New("app: no backend")
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	app := &Application{
		opts:    opts,
		backend: opts.Backend,
		store:   filestore.New(opts.Fs),
		id:      uuid.NewString(),
	}
	app.logger = opts.Logger.With("session", app.id)

	lines := []string{""}
	exists := true
	if opts.FileName != "" {
		var err error
		lines, exists, err = app.store.Load(opts.FileName)
		if err != nil {
			return nil, fatal("open", err)
		}
	}

	app.session = editor.New(24, 80,
		editor.WithLines(lines),
		editor.WithFileName(opts.FileName),
		editor.WithWriter(app.store),
		editor.WithAfterWrite(app.afterWrite),
		editor.WithLogger(app.logger),
	)
	if !exists {
		app.session.SetMessage(MsgNewFile)
	}

	app.decoder = key.NewDecoder(app.backend, opts.Config.Input.ReadTimeout())
	app.renderer = renderer.New(rendererConfig(opts.Config.UI, opts.Version))

	if opts.FileName != "" {
		app.watch(opts.FileName)
	}
	app.loadPlugins()

	app.logger.Info("session started", "file", opts.FileName, "lines", len(lines), "exists", exists)
	return app, nil
}

func rendererConfig(ui config.UIConfig, version string) renderer.Config {
	cfg := renderer.DefaultConfig()
	cfg.FillChar = ui.FillChar
	cfg.Welcome = ui.Welcome
	if version != "" {
		cfg.Version = version
	}
	if ui.FillColor < 16 {
		cfg.FillColor = ansi.BasicColor(ui.FillColor)
	} else {
		cfg.FillColor = ansi.IndexedColor(ui.FillColor)
	}
	return cfg
}

// loadPlugins runs the init script. Script errors are reported on the
// status bar and never stop the editor.
func (app *Application) loadPlugins() {
	script := app.opts.Config.Plugin.InitScript
	if script == "" {
		return
	}
	app.host = lua.NewHost(app.session, lua.WithLogger(app.logger))
	app.session.Interpreter().AddResolver(app.host)
	if err := app.host.Load(app.opts.Fs, script); err != nil {
		app.logger.Warn("init script failed", "script", script, "err", err)
		app.session.SetMessage("Lua error: " + err.Error())
	}
}

// watch starts watching path for outside changes when enabled.
func (app *Application) watch(path string) {
	if !app.opts.Config.Editor.WatchFile || app.watcher != nil {
		return
	}
	w, err := watcher.New(path)
	if err != nil {
		app.logger.Warn("cannot watch file", "path", path, "err", err)
		return
	}
	app.watcher = w
	app.logger.Debug("watching file", "path", w.Path())
}

// afterWrite runs after each successful :w.
func (app *Application) afterWrite(path string) {
	if app.watcher == nil {
		if path == app.session.FileName() {
			app.watch(path)
		}
		return
	}
	if abs, err := filepath.Abs(path); err == nil && abs == app.watcher.Path() {
		app.watcher.Suppress(writeSuppression)
	}
}

// Session returns the editing session.
func (app *Application) Session() *editor.Session {
	return app.session
}

// ID returns the session id used in logs.
func (app *Application) ID() string {
	return app.id
}

// Run takes over the terminal and runs the session loop until the user
// quits, ctx is cancelled or a fatal error occurs. The terminal is
// restored before Run returns.
func (app *Application) Run(ctx context.Context) (err error) {
	if err := app.backend.Init(); err != nil {
		return fatal("terminal setup", err)
	}
	defer func() {
		if serr := app.backend.Shutdown(); serr != nil && err == nil {
			err = fatal("terminal restore", serr)
		}
		app.close()
	}()

	err = app.loop(ctx)
	if errors.Is(err, ErrQuit) {
		app.logger.Info("session ended")
		return nil
	}
	if err != nil {
		app.logger.Error("session failed", "err", err)
	}
	return err
}

func (app *Application) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			app.logger.Info("cancelled", "err", err)
			return ErrQuit
		}
		if err := app.step(); err != nil {
			return err
		}
	}
}

// step runs one loop iteration: size, render, read, handle, poll.
func (app *Application) step() error {
	rows, cols, err := app.backend.Size()
	if err != nil {
		return fatal("window size", err)
	}
	app.session.Resize(rows, cols)

	if _, err := app.backend.Write(app.renderer.Render(app.session.Frame())); err != nil {
		return fatal("write terminal", err)
	}

	ev, ok, err := app.decoder.Next()
	if err != nil {
		return fatal("read", err)
	}
	if ok {
		if err := app.session.HandleKey(ev); err != nil {
			return commandError(err)
		}
		if app.session.QuitRequested() {
			return ErrQuit
		}
	}

	if app.watcher != nil && app.watcher.Changed() {
		app.logger.Info("file changed on disk", "path", app.watcher.Path())
		app.session.SetMessage(MsgFileChanged)
	}
	return nil
}

// commandError reports a failed command by the file operation that
// failed, when there is one.
func commandError(err error) error {
	var pe *filestore.PathError
	if errors.As(err, &pe) {
		return fatal(fmt.Sprintf("%s %s", pe.Op, pe.Path), pe.Err)
	}
	return fatal("command", err)
}

func (app *Application) close() {
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("close watcher", "err", err)
		}
	}
	if app.host != nil {
		_ = app.host.Close()
	}
}
