package renderer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blueTilde() string {
	return "\x1b[34m~\x1b[m"
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "~", cfg.FillChar)
	assert.Equal(t, ansi.Blue, cfg.FillColor)
	assert.True(t, cfg.Welcome)
}

func TestShowWelcome(t *testing.T) {
	assert.True(t, ShowWelcome(false, ""))
	assert.False(t, ShowWelcome(true, ""))
	assert.False(t, ShowWelcome(false, "a.txt"))
}

func TestRenderFrameOrder(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{
		Rows: 4, Cols: 20,
		Lines:     []string{"hello"},
		CursorRow: 1, CursorCol: 3,
		Mode: "NORMAL", Line: 1, Col: 3,
	}))

	require.True(t, strings.HasPrefix(out, ansi.HideCursor+ansi.CursorHomePosition))
	require.True(t, strings.HasSuffix(out, ansi.CursorPosition(3, 1)+ansi.ShowCursor))

	for row := 1; row <= 3; row++ {
		assert.Contains(t, out, ansi.CursorPosition(1, row)+blueTilde()+ansi.EraseLineRight)
	}
	assert.NotContains(t, out, ansi.CursorPosition(1, 4)+blueTilde())

	status := strings.Index(out, ansi.CursorPosition(1, 4))
	text := strings.Index(out, ansi.EraseEntireLine+"hello")
	require.Positive(t, status)
	require.Positive(t, text)
	assert.Less(t, status, text)
	assert.Contains(t, out, " NORMAL  [No Name]")
	assert.Contains(t, out, "1,3 ")
}

func TestRenderWrapsLongLines(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{
		Rows: 5, Cols: 4,
		Lines:     []string{"abcdefghij", "xy"},
		CursorRow: 1, CursorCol: 1,
	}))

	assert.Contains(t, out, ansi.CursorPosition(1, 1)+ansi.EraseEntireLine+"abcd")
	assert.Contains(t, out, ansi.CursorPosition(1, 2)+ansi.EraseEntireLine+"efgh")
	assert.Contains(t, out, ansi.CursorPosition(1, 3)+ansi.EraseEntireLine+"ij")
	assert.Contains(t, out, ansi.CursorPosition(1, 4)+ansi.EraseEntireLine+"xy")
}

func TestRenderStopsAtStatusRow(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{
		Rows: 3, Cols: 2,
		Lines: []string{"aabbcc", "dd"},
	}))

	assert.Contains(t, out, ansi.EraseEntireLine+"aa")
	assert.Contains(t, out, ansi.EraseEntireLine+"bb")
	assert.NotContains(t, out, "cc")
	assert.NotContains(t, out, "dd")
}

func TestRenderEmptyLineErasesFill(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{Rows: 3, Cols: 10, Lines: []string{""}, CursorRow: 2, CursorCol: 1}))
	assert.Contains(t, out, ansi.CursorPosition(1, 1)+ansi.EraseEntireLine+ansi.CursorPosition(1, 2))
}

func TestRenderWelcome(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{
		Rows: 10, Cols: 80,
		Lines:   []string{"hidden"},
		Welcome: true,
	}))

	banner := r.Banner()
	require.Len(t, banner, 3)
	assert.Contains(t, banner[0], "kite editor")
	col := (80-len(banner[0]))/2 + 1
	assert.Contains(t, out, ansi.CursorPosition(col, 4)+banner[0])
	assert.Contains(t, out, banner[2])
	assert.NotContains(t, out, "hidden")
}

func TestRenderWelcomeDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Welcome = false
	r := New(cfg)
	out := string(r.Render(Frame{Rows: 10, Cols: 80, Lines: []string{"shown"}, Welcome: true}))
	assert.Contains(t, out, "shown")
	assert.NotContains(t, out, "kite editor")
}

func TestRenderCommandLine(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{
		Rows: 5, Cols: 20,
		Lines:       []string{"text"},
		CursorRow:   1,
		CursorCol:   1,
		CommandLine: true,
		CommandText: "wq",
		CommandPos:  2,
	}))

	assert.Contains(t, out, ansi.CursorPosition(1, 5)+":wq")
	assert.True(t, strings.HasSuffix(out, ansi.CursorPosition(4, 5)+ansi.ShowCursor))
}

func TestRenderMessageReplacesMode(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{Rows: 3, Cols: 40, Mode: "NORMAL", Message: "New File"}))
	assert.Contains(t, out, " New File  ")
	assert.NotContains(t, out, "NORMAL")
}

func TestRenderCustomFill(t *testing.T) {
	r := New(Config{FillChar: "·", FillColor: ansi.Red})
	out := string(r.Render(Frame{Rows: 2, Cols: 5}))
	assert.Contains(t, out, "\x1b[31m·\x1b[m")
}

func TestRenderControlBytes(t *testing.T) {
	r := New(DefaultConfig())
	out := string(r.Render(Frame{Rows: 2, Cols: 10, Lines: []string{"a\tb\x1bc"}}))
	assert.Contains(t, out, "a?b?c")
}

func TestRenderDegenerateSize(t *testing.T) {
	r := New(DefaultConfig())
	assert.Empty(t, r.Render(Frame{Rows: 0, Cols: 10}))
}
