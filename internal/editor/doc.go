// Package editor holds the editing session: one value that owns the
// document, cursor, viewport, mode manager and status state, and that
// turns key events into edits, motions and commands.
//
// A Session has no terminal of its own. The application loop feeds it
// decoded key events and renders its Frame; tests drive it the same way
// with key specifications:
//
//	s := editor.New(24, 80, editor.WithLines([]string{"hello"}))
//	_ = s.Feed("A world<Esc>")
package editor
