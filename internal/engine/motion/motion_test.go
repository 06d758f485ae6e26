package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/document"
	"github.com/dshills/kite/internal/renderer/viewport"
)

type fixture struct {
	doc *document.Document
	cur *cursor.Cursor
	vp  *viewport.Viewport
	eng *Engine
}

func newFixture(lines []string, rows, cols int) *fixture {
	f := &fixture{
		doc: document.FromLines(lines),
		cur: &cursor.Cursor{},
		vp:  viewport.New(rows, cols),
	}
	f.eng = New(f.doc, f.cur, f.vp)
	return f
}

func (f *fixture) at(line, col int) {
	f.cur.Line = line
	f.cur.SetColumn(col)
}

func (f *fixture) pos() [2]int {
	return [2]int{f.cur.Line, f.cur.Column}
}

func TestLeftRightStayOnLine(t *testing.T) {
	f := newFixture([]string{"hello", "world"}, 24, 80)
	require.NoError(t, f.eng.Apply(Left, 1))
	assert.Equal(t, [2]int{0, 0}, f.pos())

	require.NoError(t, f.eng.Apply(Right, 10))
	assert.Equal(t, [2]int{0, 5}, f.pos(), "right stops at the line end")

	require.NoError(t, f.eng.Apply(Left, 2))
	assert.Equal(t, [2]int{0, 3}, f.pos())
	assert.Equal(t, 3, f.cur.Desired)
}

func TestZeroCountMeansOnce(t *testing.T) {
	f := newFixture([]string{"hello"}, 24, 80)
	require.NoError(t, f.eng.Apply(Right, 0))
	assert.Equal(t, 1, f.cur.Column)
	require.NoError(t, f.eng.Apply(Right, -3))
	assert.Equal(t, 2, f.cur.Column)
}

func TestVerticalKeepsDesiredColumn(t *testing.T) {
	f := newFixture([]string{"abcdef", "ab", "abcdefgh"}, 24, 80)
	f.at(0, 5)
	require.NoError(t, f.eng.Apply(Down, 1))
	assert.Equal(t, [2]int{1, 2}, f.pos())
	require.NoError(t, f.eng.Apply(Down, 1))
	assert.Equal(t, [2]int{2, 5}, f.pos())
	require.NoError(t, f.eng.Apply(Down, 1))
	assert.Equal(t, [2]int{2, 5}, f.pos(), "last line")
	require.NoError(t, f.eng.Apply(Up, 5))
	assert.Equal(t, [2]int{0, 5}, f.pos())
}

func TestLineStartEnd(t *testing.T) {
	f := newFixture([]string{"abc", "abcdef", "a"}, 24, 80)
	f.at(0, 1)
	require.NoError(t, f.eng.Apply(LineEnd, 1))
	assert.Equal(t, [2]int{0, 3}, f.pos())
	require.NoError(t, f.eng.Apply(Down, 1))
	assert.Equal(t, [2]int{1, 6}, f.pos(), "end of line is sticky")
	require.NoError(t, f.eng.Apply(Down, 1))
	assert.Equal(t, [2]int{2, 1}, f.pos())

	require.NoError(t, f.eng.Apply(LineStart, 1))
	assert.Equal(t, [2]int{2, 0}, f.pos())
	require.NoError(t, f.eng.Apply(Up, 1))
	assert.Equal(t, [2]int{1, 0}, f.pos())
}

func TestWordForward(t *testing.T) {
	doc := []string{"hello world", "foo_bar baz", "", "  x"}
	tests := []struct {
		name  string
		from  [2]int
		count int
		want  [2]int
	}{
		{"next word", [2]int{0, 0}, 1, [2]int{0, 6}},
		{"across line end", [2]int{0, 6}, 1, [2]int{1, 0}},
		{"underscore is a word byte", [2]int{1, 0}, 1, [2]int{1, 8}},
		{"skips empty line and blanks", [2]int{1, 8}, 1, [2]int{3, 2}},
		{"document end", [2]int{3, 2}, 1, [2]int{3, 3}},
		{"from separator", [2]int{0, 5}, 1, [2]int{0, 6}},
		{"count", [2]int{0, 0}, 2, [2]int{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(doc, 24, 80)
			f.at(tt.from[0], tt.from[1])
			require.NoError(t, f.eng.Apply(WordForward, tt.count))
			assert.Equal(t, tt.want, f.pos())
			assert.Equal(t, f.cur.Column, f.cur.Desired)
		})
	}
}

func TestWordBackward(t *testing.T) {
	doc := []string{"hello world", "foo_bar baz", "", "  x"}
	tests := []struct {
		name string
		from [2]int
		want [2]int
	}{
		{"from document end", [2]int{3, 3}, [2]int{3, 2}},
		{"across empty line", [2]int{3, 2}, [2]int{1, 8}},
		{"within line", [2]int{1, 8}, [2]int{1, 0}},
		{"to previous line", [2]int{1, 0}, [2]int{0, 6}},
		{"middle of word", [2]int{0, 3}, [2]int{0, 0}},
		{"document start", [2]int{0, 0}, [2]int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(doc, 24, 80)
			f.at(tt.from[0], tt.from[1])
			require.NoError(t, f.eng.Apply(WordBackward, 1))
			assert.Equal(t, tt.want, f.pos())
		})
	}
}

func TestWrapSteps(t *testing.T) {
	f := newFixture([]string{"ab", "c"}, 24, 80)
	f.at(0, 2)
	require.NoError(t, f.eng.Apply(WrapRight, 1))
	assert.Equal(t, [2]int{1, 0}, f.pos())
	require.NoError(t, f.eng.Apply(WrapLeft, 1))
	assert.Equal(t, [2]int{0, 2}, f.pos())
	require.NoError(t, f.eng.Apply(WrapLeft, 5))
	assert.Equal(t, [2]int{0, 0}, f.pos())
}

func TestFileStartEnd(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	f := newFixture(lines, 11, 80)
	f.at(3, 2)

	require.NoError(t, f.eng.Apply(FileEnd, 1))
	assert.Equal(t, [2]int{49, 2}, f.pos())
	assert.Equal(t, 40, f.vp.Start())

	require.NoError(t, f.eng.Apply(FileStart, 1))
	assert.Equal(t, [2]int{0, 2}, f.pos())
	assert.Equal(t, 0, f.vp.Start())
}

func TestPageDownUp(t *testing.T) {
	lines := make([]string, 100)
	f := newFixture(lines, 10, 80)

	require.NoError(t, f.eng.Apply(PageDown, 1))
	assert.Equal(t, 10, f.cur.Line)
	assert.Equal(t, 7, f.vp.Start())

	require.NoError(t, f.eng.Apply(PageDown, 20))
	assert.Equal(t, 99, f.cur.Line)

	require.NoError(t, f.eng.Apply(PageUp, 2))
	assert.Equal(t, 79, f.cur.Line)
	_, end := f.vp.VisibleRange(f.doc)
	assert.LessOrEqual(t, f.vp.Start(), 79)
	assert.GreaterOrEqual(t, end, 79)
}

func TestUnknownMotion(t *testing.T) {
	f := newFixture([]string{"abc"}, 24, 80)
	f.at(0, 1)
	err := f.eng.Apply(Motion(200), 1)
	assert.ErrorIs(t, err, ErrUnknownMotion)
	assert.ErrorIs(t, f.eng.Apply(None, 1), ErrUnknownMotion)
	assert.Equal(t, [2]int{0, 1}, f.pos())
}

func TestMotionString(t *testing.T) {
	assert.Equal(t, "wordForward", WordForward.String())
	assert.Equal(t, "Motion(200)", Motion(200).String())
}

var allMotions = []Motion{
	Left, Right, Up, Down, WordForward, WordBackward, PageUp, PageDown,
	LineStart, LineEnd, FileStart, FileEnd, WrapLeft, WrapRight,
}

func TestCursorStaysValid(t *testing.T) {
	lineGen := rapid.StringMatching(`[a-z_ .]{0,30}`)
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(lineGen, 1, 40).Draw(t, "lines")
		rows := rapid.IntRange(2, 30).Draw(t, "rows")
		cols := rapid.IntRange(1, 40).Draw(t, "cols")
		f := newFixture(lines, rows, cols)

		steps := rapid.SliceOfN(rapid.SampledFrom(allMotions), 1, 50).Draw(t, "motions")
		for i, m := range steps {
			count := rapid.IntRange(0, 5).Draw(t, "count")
			if err := f.eng.Apply(m, count); err != nil {
				t.Fatalf("step %d %s: %v", i, m, err)
			}
			if !f.cur.Valid(f.doc) {
				t.Fatalf("step %d %s: cursor %s outside document", i, m, f.cur)
			}
			start, end := f.vp.VisibleRange(f.doc)
			if f.cur.Line < start || f.cur.Line > end {
				t.Fatalf("step %d %s: line %d outside visible range [%d,%d]", i, m, f.cur.Line, start, end)
			}
		}
	})
}

func TestWordForwardBackwardReturnsToWordStart(t *testing.T) {
	lineGen := rapid.StringMatching(`[a-z_ .]{0,20}`)
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(lineGen, 1, 6).Draw(t, "lines")
		lines[0] = "a" + lines[0]

		type pos struct{ line, col int }
		var inWord []pos
		for l, s := range lines {
			for c := range len(s) {
				if isKeyword(s[c]) {
					inWord = append(inWord, pos{l, c})
				}
			}
		}
		p := rapid.SampledFrom(inWord).Draw(t, "start")

		wordStart := p.col
		for wordStart > 0 && isKeyword(lines[p.line][wordStart-1]) {
			wordStart--
		}

		f := newFixture(lines, 24, 80)
		f.at(p.line, p.col)
		if err := f.eng.Apply(WordForward, 1); err != nil {
			t.Fatal(err)
		}
		if err := f.eng.Apply(WordBackward, 1); err != nil {
			t.Fatal(err)
		}

		if f.cur.Line != p.line || f.cur.Column < wordStart || f.cur.Column > p.col {
			t.Fatalf("from %v landed at %s, want line %d col in [%d,%d]",
				p, f.cur, p.line, wordStart, p.col)
		}
	})
}
