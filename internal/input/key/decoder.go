package key

import "time"

// ByteSource is a byte stream with bounded-wait reads.
//
// ReadByteTimeout waits at most timeout for one byte. It returns ok=false
// with a nil error when nothing arrived in time.
type ByteSource interface {
	ReadByteTimeout(timeout time.Duration) (b byte, ok bool, err error)
}

// DefaultReadTimeout is the wait applied to each byte read.
const DefaultReadTimeout = 100 * time.Millisecond

// Decoder turns raw terminal input into key events.
type Decoder struct {
	src     ByteSource
	timeout time.Duration
}

// NewDecoder creates a decoder reading from src. A non-positive timeout
// selects DefaultReadTimeout.
func NewDecoder(src ByteSource, timeout time.Duration) *Decoder {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	return &Decoder{src: src, timeout: timeout}
}

// Next decodes one key. It returns ok=false when no input arrived within
// the read timeout. Errors from the source are returned unchanged.
//
// An escape byte is followed by up to three more reads under the same
// timeout. Sequences that are cut short or not recognized decode to a bare
// Escape; the bytes consumed while trying are dropped.
func (d *Decoder) Next() (Event, bool, error) {
	b, ok, err := d.src.ReadByteTimeout(d.timeout)
	if err != nil || !ok {
		return Event{}, false, err
	}
	if b != byteEscape {
		return FromByte(b), true, nil
	}
	ev, err := d.escape()
	if err != nil {
		return Event{}, false, err
	}
	return ev, true, nil
}

var (
	csiFinal = map[byte]Key{
		'A': KeyUp,
		'B': KeyDown,
		'C': KeyRight,
		'D': KeyLeft,
		'H': KeyHome,
		'F': KeyEnd,
	}
	csiTilde = map[byte]Key{
		'1': KeyHome,
		'7': KeyHome,
		'4': KeyEnd,
		'8': KeyEnd,
		'3': KeyDelete,
		'5': KeyPageUp,
		'6': KeyPageDown,
	}
	ss3Final = map[byte]Key{
		'H': KeyHome,
		'F': KeyEnd,
	}
)

func (d *Decoder) escape() (Event, error) {
	bare := NewSpecialEvent(KeyEscape)

	intro, ok, err := d.src.ReadByteTimeout(d.timeout)
	if err != nil || !ok {
		return bare, err
	}
	next, ok, err := d.src.ReadByteTimeout(d.timeout)
	if err != nil || !ok {
		return bare, err
	}

	switch intro {
	case '[':
		if k, found := csiFinal[next]; found {
			return NewSpecialEvent(k), nil
		}
		if next < '1' || next > '9' {
			return bare, nil
		}
		final, ok, err := d.src.ReadByteTimeout(d.timeout)
		if err != nil || !ok || final != '~' {
			return bare, err
		}
		if k, found := csiTilde[next]; found {
			return NewSpecialEvent(k), nil
		}
	case 'O':
		if k, found := ss3Final[next]; found {
			return NewSpecialEvent(k), nil
		}
	}
	return bare, nil
}
