package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewHasOneEmptyLine(t *testing.T) {
	d := New()
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "", d.LineString(0))
	assert.Equal(t, 0, d.Size())
}

func TestFromLines(t *testing.T) {
	d := FromLines([]string{"one", "two", "three"})
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "two", d.LineString(1))
	assert.Equal(t, 5, d.LineLen(2))
	assert.Equal(t, "one\ntwo\nthree", d.Text())
	assert.Equal(t, len("one\ntwo\nthree"), d.Size())
}

func TestFromLinesEmpty(t *testing.T) {
	d := FromLines(nil)
	assert.Equal(t, []string{""}, d.Lines())
}

func TestOutOfRangeAccessors(t *testing.T) {
	d := FromLines([]string{"a"})
	assert.Nil(t, d.Line(1))
	assert.Nil(t, d.Line(-1))
	assert.Equal(t, 0, d.LineLen(5))
	assert.Equal(t, "", d.LineString(5))
}

func TestAppendLine(t *testing.T) {
	d := New()
	d.AppendLine("x")
	d.AppendLine("y")
	assert.Equal(t, []string{"", "x", "y"}, d.Lines())
}

func TestInsertLine(t *testing.T) {
	d := FromLines([]string{"a", "c"})
	require.NoError(t, d.InsertLine(1, "b"))
	require.NoError(t, d.InsertLine(3, "d"))
	require.NoError(t, d.InsertLine(0, "_"))
	assert.Equal(t, []string{"_", "a", "b", "c", "d"}, d.Lines())

	err := d.InsertLine(9, "z")
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		col  int
		want []string
	}{
		{"start", 0, []string{"", "hello"}},
		{"middle", 2, []string{"he", "llo"}},
		{"end", 5, []string{"hello", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromLines([]string{"hello"})
			require.NoError(t, d.SplitLine(0, tt.col))
			assert.Equal(t, tt.want, d.Lines())
		})
	}
}

func TestSplitLineErrors(t *testing.T) {
	d := FromLines([]string{"abc"})
	assert.ErrorIs(t, d.SplitLine(1, 0), ErrLineOutOfRange)
	assert.ErrorIs(t, d.SplitLine(0, 4), ErrColumnOutOfRange)
	assert.ErrorIs(t, d.SplitLine(0, -1), ErrColumnOutOfRange)
	assert.Equal(t, []string{"abc"}, d.Lines())
}

func TestSplitMiddleOfDocument(t *testing.T) {
	d := FromLines([]string{"abc", "de"})
	require.NoError(t, d.SplitLine(0, 0))
	assert.Equal(t, []string{"", "abc", "de"}, d.Lines())
}

func TestMergeLines(t *testing.T) {
	d := FromLines([]string{"foo", "bar", "baz"})
	require.NoError(t, d.MergeLines(1))
	assert.Equal(t, []string{"foobar", "baz"}, d.Lines())
	require.NoError(t, d.MergeLines(1))
	assert.Equal(t, []string{"foobarbaz"}, d.Lines())
}

func TestMergeLinesErrors(t *testing.T) {
	d := FromLines([]string{"a", "b"})
	assert.ErrorIs(t, d.MergeLines(0), ErrMergeFirstLine)
	assert.ErrorIs(t, d.MergeLines(2), ErrLineOutOfRange)
	assert.ErrorIs(t, d.MergeLines(-1), ErrLineOutOfRange)
}

func TestRemoveLine(t *testing.T) {
	d := FromLines([]string{"a", "b"})
	require.NoError(t, d.RemoveLine(0))
	assert.Equal(t, []string{"b"}, d.Lines())
	require.NoError(t, d.RemoveLine(0))
	assert.Equal(t, []string{""}, d.Lines())
	assert.ErrorIs(t, d.RemoveLine(1), ErrLineOutOfRange)
}

func TestReplaceAll(t *testing.T) {
	d := FromLines([]string{"old"})
	d.ReplaceAll([]string{"new", "content"})
	assert.Equal(t, []string{"new", "content"}, d.Lines())
	d.ReplaceAll([]string{})
	assert.Equal(t, 1, d.Len())
}

func TestLinePointerMutation(t *testing.T) {
	d := FromLines([]string{"ac"})
	d.Line(0).InsertAt(1, 'b')
	assert.Equal(t, "abc", d.LineString(0))
}

func TestSplitThenMergeRestores(t *testing.T) {
	lineGen := rapid.StringMatching(`[a-z ]{0,20}`)
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(lineGen, 1, 8).Draw(t, "lines")
		d := FromLines(lines)
		l := rapid.IntRange(0, len(lines)-1).Draw(t, "line")
		c := rapid.IntRange(0, len(lines[l])).Draw(t, "col")

		if err := d.SplitLine(l, c); err != nil {
			t.Fatalf("split: %v", err)
		}
		if d.Len() != len(lines)+1 {
			t.Fatalf("len after split = %d", d.Len())
		}
		if err := d.MergeLines(l + 1); err != nil {
			t.Fatalf("merge: %v", err)
		}
		got := d.Lines()
		if len(got) != len(lines) {
			t.Fatalf("got %d lines, want %d", len(got), len(lines))
		}
		for i := range lines {
			if got[i] != lines[i] {
				t.Fatalf("line %d = %q, want %q", i, got[i], lines[i])
			}
		}
	})
}
