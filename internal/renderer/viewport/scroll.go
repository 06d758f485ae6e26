package viewport

// ScrollUpIfNeeded scrolls one line up when the cursor is about to move up
// from screen row row and that row lies within the top margin.
// It reports whether the viewport scrolled.
func (v *Viewport) ScrollUpIfNeeded(row int) bool {
	if v.margins.Top == 0 || row > v.margins.Top || v.start == 0 {
		return false
	}
	v.start--
	return true
}

// ScrollDownIfNeeded scrolls one line down when the cursor is about to move
// down from screen row row, that row lies within the bottom margin, and
// there is still text below the visible range.
// It reports whether the viewport scrolled.
func (v *Viewport) ScrollDownIfNeeded(lines Lines, row int) bool {
	if v.margins.Bottom == 0 || row < v.rows-v.margins.Bottom {
		return false
	}
	_, end := v.VisibleRange(lines)
	if end+1 >= lines.Len() {
		return false
	}
	v.start++
	return true
}
