// Package text provides the growable byte cell used for document lines and
// for transient strings such as the command line.
//
// A Text keeps an explicit length/capacity split. When an operation needs
// more room than the current capacity, storage is reallocated to twice the
// required length. One zero byte is always kept past the logical length so
// that the raw storage can be printed while debugging; it is never part of
// the content returned by Bytes or String.
package text

// Text is a resizable byte sequence.
// The zero value is an empty Text ready to use.
type Text struct {
	data []byte
}

// New creates a Text holding a copy of s.
func New(s string) Text {
	var t Text
	t.AppendString(s)
	return t
}

// FromBytes creates a Text holding a copy of b.
func FromBytes(b []byte) Text {
	var t Text
	t.Append(b)
	return t
}

// Len returns the logical length in bytes.
func (t *Text) Len() int {
	return len(t.data)
}

// Cap returns the usable capacity, excluding the terminator byte.
func (t *Text) Cap() int {
	if cap(t.data) == 0 {
		return 0
	}
	return cap(t.data) - 1
}

// Bytes returns the content. The slice aliases internal storage and is only
// valid until the next mutation.
func (t *Text) Bytes() []byte {
	return t.data
}

// String returns a copy of the content as a string.
func (t *Text) String() string {
	return string(t.data)
}

// At returns the byte at index i. It panics if i is out of range, like a
// slice index.
func (t *Text) At(i int) byte {
	return t.data[i]
}

// Slice returns a copy of the bytes in [from, to), clamped to the content.
func (t *Text) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(t.data) {
		to = len(t.data)
	}
	if from >= to {
		return ""
	}
	return string(t.data[from:to])
}

// Append adds b to the end of the content.
func (t *Text) Append(b []byte) {
	if len(b) == 0 {
		return
	}
	t.reserve(len(b))
	t.data = append(t.data, b...)
	t.terminate()
}

// AppendString adds s to the end of the content.
func (t *Text) AppendString(s string) {
	if s == "" {
		return
	}
	t.reserve(len(s))
	t.data = append(t.data, s...)
	t.terminate()
}

// InsertAt inserts b before position pos. Valid positions are [0, Len()];
// anything else is ignored.
func (t *Text) InsertAt(pos int, b byte) {
	if pos < 0 || pos > len(t.data) {
		return
	}
	t.reserve(1)
	t.data = t.data[:len(t.data)+1]
	copy(t.data[pos+1:], t.data[pos:])
	t.data[pos] = b
	t.terminate()
}

// DeleteAt removes the byte at pos. Valid positions are [0, Len());
// anything else is ignored.
func (t *Text) DeleteAt(pos int) {
	if pos < 0 || pos >= len(t.data) {
		return
	}
	copy(t.data[pos:], t.data[pos+1:])
	t.data = t.data[:len(t.data)-1]
	t.terminate()
}

// Assign replaces the content with a copy of b.
func (t *Text) Assign(b []byte) {
	t.data = t.data[:0]
	t.Append(b)
	t.terminate()
}

// AssignString replaces the content with s.
func (t *Text) AssignString(s string) {
	t.data = t.data[:0]
	t.AppendString(s)
	t.terminate()
}

// Resize truncates or extends the content to n bytes. Extension fills
// with zero bytes. Negative sizes are treated as zero.
func (t *Text) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(t.data) {
		t.data = t.data[:n]
		t.terminate()
		return
	}
	old := len(t.data)
	t.reserve(n - old)
	t.data = t.data[:n]
	clear(t.data[old:])
	t.terminate()
}

// Clear empties the content and releases the storage.
func (t *Text) Clear() {
	t.data = nil
}

// Clone returns an independent copy.
func (t *Text) Clone() Text {
	return FromBytes(t.data)
}

// reserve guarantees room for added more bytes plus the terminator,
// reallocating to 2*(len+added) when the current storage is too small.
func (t *Text) reserve(added int) {
	need := len(t.data) + added + 1
	if need <= cap(t.data) {
		return
	}
	grown := make([]byte, len(t.data), 2*(len(t.data)+added)+1)
	copy(grown, t.data)
	t.data = grown
}

func (t *Text) terminate() {
	if len(t.data) < cap(t.data) {
		t.data[:len(t.data)+1][len(t.data)] = 0
	}
}
