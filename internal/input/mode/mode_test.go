package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/kite/internal/command"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/document"
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/renderer/viewport"
)

// fakeEditor is a minimal session wired to the real engine packages.
type fakeEditor struct {
	doc      *document.Document
	cur      cursor.Cursor
	vp       *viewport.Viewport
	motions  *motion.Engine
	count    Count
	line     command.Line
	modes    *Manager
	modified bool
	executed []string
	moves    []motion.Motion
}

func newFakeEditor(lines ...string) *fakeEditor {
	ed := &fakeEditor{
		doc: document.FromLines(lines),
		vp:  viewport.New(24, 80),
	}
	ed.motions = motion.New(ed.doc, &ed.cur, ed.vp)
	ed.modes = NewStandardManager(ed)
	return ed
}

func (e *fakeEditor) Document() *document.Document { return e.doc }
func (e *fakeEditor) Cursor() *cursor.Cursor       { return &e.cur }
func (e *fakeEditor) Count() *Count                { return &e.count }
func (e *fakeEditor) CommandLine() *command.Line   { return &e.line }
func (e *fakeEditor) SetModified()                 { e.modified = true }
func (e *fakeEditor) Cols() int                    { return e.vp.Cols() }

func (e *fakeEditor) Move(m motion.Motion, count int) {
	e.moves = append(e.moves, m)
	_ = e.motions.Apply(m, count)
}

func (e *fakeEditor) SwitchMode(id ID) {
	_ = e.modes.Switch(e, id)
}

func (e *fakeEditor) ExecuteCommand(line string) error {
	e.executed = append(e.executed, line)
	return nil
}

// feed sends keys through the active mode, handling Escape the way the
// session does.
func (e *fakeEditor) feed(t *testing.T, spec string) {
	t.Helper()
	for _, ev := range key.MustParseSequence(spec) {
		if ev.Key == key.KeyEscape {
			e.SwitchMode(ModeNormal)
			continue
		}
		require.NoError(t, e.modes.HandleKey(e, ev))
	}
}

func (e *fakeEditor) pos() [2]int {
	return [2]int{e.cur.Line, e.cur.Column}
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "command-line", ModeCommandLine.String())
	assert.Equal(t, "mode(9)", ID(9).String())
}

func TestNormalTransitions(t *testing.T) {
	tests := []struct {
		keys string
		want ID
	}{
		{"i", ModeInsert},
		{"s", ModeInsert},
		{"v", ModeVisual},
		{":", ModeCommandLine},
		{"x", ModeNormal},
		{"i<Esc>", ModeNormal},
		{"v<Esc>", ModeNormal},
		{":<Esc>", ModeNormal},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			ed := newFakeEditor("abc")
			ed.feed(t, tt.keys)
			assert.Equal(t, tt.want, ed.modes.CurrentID())
		})
	}
}

func TestNormalCount(t *testing.T) {
	ed := newFakeEditor("0123456789")
	ed.feed(t, "3")
	assert.Equal(t, "3", ed.count.String())
	ed.feed(t, "l")
	assert.Equal(t, [2]int{0, 3}, ed.pos())
	assert.False(t, ed.count.IsSet(), "motion consumes the count")

	ed.feed(t, "12h")
	assert.Equal(t, [2]int{0, 0}, ed.pos())

	ed.feed(t, "<Right>")
	assert.Equal(t, [2]int{0, 1}, ed.pos(), "no count means once")
}

func TestNormalMotionKeys(t *testing.T) {
	ed := newFakeEditor("one two", "three", "four")
	ed.feed(t, "wjkbGg$<End><Home><Down><Up><Left><PageDown><PageUp>")
	assert.Equal(t, []motion.Motion{
		motion.WordForward, motion.Down, motion.Up, motion.WordBackward,
		motion.FileEnd, motion.FileStart, motion.LineEnd, motion.LineEnd,
		motion.LineStart, motion.Down, motion.Up, motion.Left,
		motion.PageDown, motion.PageUp,
	}, ed.moves)
}

func TestCountCappedAndClearedByModeChange(t *testing.T) {
	ed := newFakeEditor("x")
	ed.feed(t, "123456")
	assert.Equal(t, MaxCount, ed.count.Value())

	ed.feed(t, "i")
	assert.False(t, ed.count.IsSet())
}

func TestInsertTyping(t *testing.T) {
	ed := newFakeEditor("")
	ed.feed(t, "ihello<Left><Left>XY")
	assert.Equal(t, []string{"helXYlo"}, ed.doc.Lines())
	assert.Equal(t, [2]int{0, 5}, ed.pos())
	assert.True(t, ed.modified)
}

func TestInsertIgnoresNonPrintable(t *testing.T) {
	ed := newFakeEditor("ab")
	ed.feed(t, "i<C-a><Tab><Char-200>")
	assert.Equal(t, []string{"ab"}, ed.doc.Lines())
	assert.False(t, ed.modified)
}

// Enter at column 0 of "abc" then X gives ["", "Xabc", "de"].
func TestInsertEnterAtLineStart(t *testing.T) {
	ed := newFakeEditor("abc", "de")
	ed.feed(t, "i<CR>X")
	assert.Equal(t, []string{"", "Xabc", "de"}, ed.doc.Lines())
	assert.Equal(t, [2]int{1, 1}, ed.pos())
}

func TestInsertEnterSplits(t *testing.T) {
	ed := newFakeEditor("hello world")
	ed.feed(t, "5li<CR>")
	assert.Equal(t, []string{"hello", " world"}, ed.doc.Lines())
	assert.Equal(t, [2]int{1, 0}, ed.pos())
}

func TestInsertBackspace(t *testing.T) {
	ed := newFakeEditor("abc", "def")
	ed.feed(t, "jli<BS>")
	assert.Equal(t, []string{"abc", "ef"}, ed.doc.Lines())
	assert.Equal(t, [2]int{1, 0}, ed.pos())

	ed.feed(t, "<BS>")
	assert.Equal(t, []string{"abcef"}, ed.doc.Lines())
	assert.Equal(t, [2]int{0, 3}, ed.pos(), "cursor at the former boundary")

	ed.feed(t, "<Home><BS>")
	assert.Equal(t, []string{"abcef"}, ed.doc.Lines(), "nothing before the first line")
}

func TestInsertBackspaceMergeScrolls(t *testing.T) {
	lines := make([]string, 100)
	ed := newFakeEditor(lines...)
	ed.vp.SetStart(50)
	ed.cur.Line = 52
	ed.feed(t, "i<BS>")
	assert.Equal(t, 99, ed.doc.Len())
	assert.Equal(t, 51, ed.cur.Line)
	assert.Equal(t, 49, ed.vp.Start(), "merging from the top margin scrolls up")
}

func TestInsertDelete(t *testing.T) {
	ed := newFakeEditor("ab", "cd")
	ed.feed(t, "i<Del>")
	assert.Equal(t, []string{"b", "cd"}, ed.doc.Lines())

	ed.feed(t, "<End><Del>")
	assert.Equal(t, []string{"bcd"}, ed.doc.Lines())
	assert.Equal(t, [2]int{0, 1}, ed.pos())

	ed.feed(t, "<End><Del>")
	assert.Equal(t, []string{"bcd"}, ed.doc.Lines(), "nothing after the last line")
}

func TestCommandLineEditing(t *testing.T) {
	ed := newFakeEditor("x")
	ed.feed(t, ":wq<Left><Left>x<Right><Del>")
	assert.Equal(t, "xw", ed.line.String())
	assert.Equal(t, 2, ed.line.Pos())

	ed.feed(t, "<CR>")
	assert.Equal(t, []string{"xw"}, ed.executed)
	assert.Equal(t, ModeNormal, ed.modes.CurrentID())
}

func TestCommandLineResetOnEntry(t *testing.T) {
	ed := newFakeEditor("x")
	ed.feed(t, ":abc<Esc>:")
	assert.Equal(t, "", ed.line.String())
}

func TestCommandLineBackspaceAborts(t *testing.T) {
	ed := newFakeEditor("x")
	ed.feed(t, ":a<BS>")
	assert.Equal(t, ModeCommandLine, ed.modes.CurrentID())
	ed.feed(t, "<BS>")
	assert.Equal(t, ModeNormal, ed.modes.CurrentID())
	assert.Empty(t, ed.executed)
}

func TestCommandLineWidthLimit(t *testing.T) {
	ed := newFakeEditor("x")
	ed.vp.Resize(24, 6)
	ed.feed(t, ":abcdefgh")
	assert.Equal(t, "abcd", ed.line.String())
}

func TestVisualIgnoresKeys(t *testing.T) {
	ed := newFakeEditor("abc")
	ed.feed(t, "vjlx")
	assert.Equal(t, [2]int{0, 0}, ed.pos())
	assert.Equal(t, []string{"abc"}, ed.doc.Lines())
	assert.Equal(t, ModeVisual, ed.modes.CurrentID())
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "NORMAL", NewNormalMode().Status())
	assert.Equal(t, "INSERT", NewInsertMode().Status())
	assert.Equal(t, "COMMAND", NewCommandLineMode().Status())
	assert.Equal(t, "VISUAL", NewVisualMode().Status())
}
