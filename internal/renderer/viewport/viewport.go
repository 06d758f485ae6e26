// Package viewport maps document lines onto a fixed grid of terminal rows.
//
// Lines longer than the grid width wrap onto additional rows. The last
// terminal row is reserved for the status bar, so at most Rows()-1 rows are
// available to document text. The viewport does not hold the cursor; callers
// pass cursor positions in and consult the scroll policy before vertical
// moves.
package viewport

// Lines is the read-only view of a document the viewport measures.
type Lines interface {
	Len() int
	LineLen(i int) int
}

// Minimum grid dimensions.
const (
	MinRows = 2
	MinCols = 1
)

// Viewport is the visible window over a document.
type Viewport struct {
	start int
	end   int
	rows  int
	cols  int

	margins MarginConfig
}

// New creates a viewport for a rows x cols terminal.
func New(rows, cols int) *Viewport {
	v := &Viewport{margins: DefaultMargins()}
	v.Resize(rows, cols)
	return v
}

// Resize updates the grid size, clamped to MinRows x MinCols.
func (v *Viewport) Resize(rows, cols int) {
	v.rows = max(rows, MinRows)
	v.cols = max(cols, MinCols)
}

// Rows returns the terminal height including the status row.
func (v *Viewport) Rows() int { return v.rows }

// Cols returns the terminal width.
func (v *Viewport) Cols() int { return v.cols }

// TextRows returns the number of rows available to document text.
func (v *Viewport) TextRows() int { return v.rows - 1 }

// Start returns the first visible line.
func (v *Viewport) Start() int { return v.start }

// End returns the last visible line as of the latest VisibleRange call.
func (v *Viewport) End() int { return v.end }

// SetStart sets the first visible line. Negative values become 0.
func (v *Viewport) SetStart(line int) {
	v.start = max(line, 0)
}

// RowCost returns how many screen rows a line of length n occupies when
// wrapped at cols. Empty lines take one row.
func RowCost(n, cols int) int {
	if cols < 1 {
		cols = 1
	}
	n = max(n, 1)
	return (n + cols - 1) / cols
}

// VisibleRange computes the lines that fit entirely on screen starting at
// Start. The end is always at least Start, even when that line alone
// overflows the screen.
func (v *Viewport) VisibleRange(lines Lines) (start, end int) {
	if last := lines.Len() - 1; v.start > last {
		v.start = max(last, 0)
	}
	avail := v.TextRows()
	v.end = v.start
	total := 0
	for i := v.start; i < lines.Len(); i++ {
		total += RowCost(lines.LineLen(i), v.cols)
		if total > avail {
			break
		}
		v.end = i
	}
	return v.start, v.end
}

// CursorScreenRow returns the 1-based screen row of (line, col).
func (v *Viewport) CursorScreenRow(lines Lines, line, col int) int {
	row := 0
	for i := v.start; i < line && i < lines.Len(); i++ {
		row += RowCost(lines.LineLen(i), v.cols)
	}
	return row + col/v.cols + 1
}

// CursorScreenColumn returns the 1-based screen column of col.
func (v *Viewport) CursorScreenColumn(col int) int {
	return col%v.cols + 1
}

// JumpStart scrolls to the top of the document.
func (v *Viewport) JumpStart() {
	v.start = 0
}

// JumpEnd scrolls so that the last line sits at the bottom of the screen.
func (v *Viewport) JumpEnd(lines Lines) {
	last := lines.Len() - 1
	v.start = max(last, 0)
	total := 0
	for i := last; i >= 0; i-- {
		total += RowCost(lines.LineLen(i), v.cols)
		if total > v.TextRows() {
			break
		}
		v.start = i
	}
}

// Reveal scrolls the minimum amount needed for line to be visible.
func (v *Viewport) Reveal(lines Lines, line int) {
	if line < v.start {
		v.start = line
		return
	}
	for {
		_, end := v.VisibleRange(lines)
		if line <= end || v.start >= line {
			return
		}
		v.start++
	}
}
