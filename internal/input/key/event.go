package key

import "fmt"

// Control bytes with a key of their own.
const (
	byteCtrlQ     = 0x11
	byteEscape    = 0x1b
	byteBackspace = 0x08
	byteDel       = 0x7f
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Byte is the raw input byte for KeyByte events.
	Byte byte
}

// NewByteEvent creates an event for an ordinary input byte.
func NewByteEvent(b byte) Event {
	return Event{Key: KeyByte, Byte: b}
}

// NewSpecialEvent creates an event for a named key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// FromByte classifies a single byte read outside an escape sequence.
func FromByte(b byte) Event {
	switch b {
	case byteCtrlQ:
		return NewSpecialEvent(KeyQuit)
	case byteEscape:
		return NewSpecialEvent(KeyEscape)
	case '\r':
		return NewSpecialEvent(KeyEnter)
	case '\t':
		return NewSpecialEvent(KeyTab)
	case byteDel, byteBackspace:
		return NewSpecialEvent(KeyBackspace)
	}
	return NewByteEvent(b)
}

// IsByte returns true if this is an ordinary byte event.
func (e Event) IsByte() bool {
	return e.Key == KeyByte
}

// IsPrintable returns true for byte events in the printable ASCII range.
func (e Event) IsPrintable() bool {
	return e.Key == KeyByte && e.Byte >= ' ' && e.Byte <= '~'
}

// IsDigit returns true for byte events carrying an ASCII digit.
func (e Event) IsDigit() bool {
	return e.Key == KeyByte && e.Byte >= '0' && e.Byte <= '9'
}

// Is reports whether e is the byte event for b.
func (e Event) Is(b byte) bool {
	return e.Key == KeyByte && e.Byte == b
}

// String returns the event in key specification notation.
// Parsing the result yields the same event.
func (e Event) String() string {
	switch e.Key {
	case KeyByte:
		return byteSpec(e.Byte)
	case KeyEscape:
		return "<Esc>"
	case KeyEnter:
		return "<CR>"
	case KeyTab:
		return "<Tab>"
	case KeyBackspace:
		return "<BS>"
	case KeyDelete:
		return "<Del>"
	case KeyQuit:
		return "<C-q>"
	case KeyNone:
		return ""
	default:
		return "<" + e.Key.String() + ">"
	}
}

func byteSpec(b byte) string {
	switch {
	case b == '<':
		return "<lt>"
	case b == ' ':
		return "<Space>"
	case b > ' ' && b <= '~':
		return string(rune(b))
	case b < ' ':
		c := b + 0x40
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		return fmt.Sprintf("<C-%c>", c)
	default:
		return fmt.Sprintf("<Char-%d>", b)
	}
}
