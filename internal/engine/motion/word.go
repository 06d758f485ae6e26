package motion

// lineEnd stands in for the byte at column == line length. It is never a
// keyword byte, so line ends separate words.
const lineEnd = '\n'

// isKeyword reports whether b belongs to a word.
func isKeyword(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// current returns the byte under the cursor, or lineEnd past the last byte.
func (e *Engine) current() byte {
	line := e.doc.Line(e.cur.Line)
	if e.cur.Column >= line.Len() {
		return lineEnd
	}
	return line.At(e.cur.Column)
}

// wrapRight steps one position right, continuing at the start of the next
// line after the line end. It reports false at the end of the document.
func (e *Engine) wrapRight() bool {
	if e.cur.Column < e.doc.LineLen(e.cur.Line) {
		e.cur.SetColumn(e.cur.Column + 1)
		return true
	}
	if !e.down() {
		return false
	}
	e.cur.SetColumn(0)
	return true
}

// wrapLeft steps one position left, continuing at the end of the previous
// line. It reports false at the start of the document.
func (e *Engine) wrapLeft() bool {
	if e.cur.Column > 0 {
		e.cur.SetColumn(e.cur.Column - 1)
		return true
	}
	if !e.up() {
		return false
	}
	e.cur.SetColumn(e.doc.LineLen(e.cur.Line))
	return true
}

// wordForward moves to the start of the next word, or to the end of the
// document when there is none.
func (e *Engine) wordForward() {
	crossed := !isKeyword(e.current())
	for e.wrapRight() {
		if !isKeyword(e.current()) {
			crossed = true
			continue
		}
		if crossed {
			return
		}
	}
}

// wordBackward moves to the start of the word before the cursor, or to
// the start of the document when there is none.
func (e *Engine) wordBackward() {
	if !e.wrapLeft() {
		return
	}
	for !isKeyword(e.current()) {
		if !e.wrapLeft() {
			return
		}
	}
	line := e.doc.Line(e.cur.Line)
	col := e.cur.Column
	for col > 0 && isKeyword(line.At(col-1)) {
		col--
	}
	e.cur.SetColumn(col)
}
