// Package watcher reports when the file being edited changes on disk.
//
// The directory holding the file is watched rather than the file itself so
// that editors and tools that replace files by rename are still seen.
// Events for other names in the directory are ignored.
package watcher

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// relevantOps are the fsnotify operations that count as a change.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher polls for changes to a single file.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	name string

	suppressUntil time.Time
	lastErr       error
	closed        bool

	// now is replaceable in tests.
	now func() time.Time
}

// New starts watching path. The file itself need not exist yet, but its
// directory must.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:  fsw,
		path: abs,
		name: filepath.Base(abs),
		now:  time.Now,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changed drains pending events without blocking and reports whether any
// of them touched the watched file outside a suppression window.
func (w *Watcher) Changed() bool {
	if w.closed {
		return false
	}
	changed := false
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return changed
			}
			if w.relevant(ev) {
				changed = true
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return changed
			}
			w.lastErr = err
		default:
			return changed
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != w.name || ev.Op&relevantOps == 0 {
		return false
	}
	return !w.now().Before(w.suppressUntil)
}

// Suppress ignores changes for the next d, typically right after the
// editor wrote the file itself.
func (w *Watcher) Suppress(d time.Duration) {
	w.suppressUntil = w.now().Add(d)
}

// Err returns the most recent error reported by the underlying watcher.
func (w *Watcher) Err() error {
	return w.lastErr
}

// Close stops watching.
func (w *Watcher) Close() error {
	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	return w.fsw.Close()
}
