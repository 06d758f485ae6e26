// Package renderer turns a snapshot of editor state into the bytes for
// one terminal frame.
//
// Each refresh redraws the whole screen:
//
//   - fill rows ("~") on every row above the status row
//   - the status bar or command line on the last row
//   - either the welcome banner or the visible document rows, wrapped at
//     the terminal width
//   - the cursor, shown again at its screen position
//
// There is no diffing against the previous frame; frame cost is
// proportional to the visible rows only.
//
// Usage:
//
//	r := renderer.New(renderer.DefaultConfig())
//	out := r.Render(frame)
//	_, err := term.Write(out)
package renderer
