package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a specification describing exactly one key.
//
// Supported formats:
//   - Single byte: "a", ":", "1"
//   - Named keys: "<Esc>", "<CR>", "<Enter>", "<BS>", "<Del>", "<Up>"
//   - Control bytes: "<C-q>", "<C-h>"
//   - Escapes: "<lt>", "<Space>", "<Char-200>"
func Parse(spec string) (Event, error) {
	events, err := ParseSequence(spec)
	if err != nil {
		return Event{}, err
	}
	if len(events) != 1 {
		return Event{}, fmt.Errorf("%w: %q is %d keys", ErrInvalidSpec, spec, len(events))
	}
	return events[0], nil
}

// ParseSequence parses a run of keys such as "ihello<Esc>" or ":wq<CR>".
func ParseSequence(spec string) ([]Event, error) {
	if spec == "" {
		return nil, ErrEmptySpec
	}

	var events []Event
	for i := 0; i < len(spec); i++ {
		if spec[i] != '<' {
			events = append(events, FromByte(spec[i]))
			continue
		}
		end := strings.IndexByte(spec[i+1:], '>')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec[i:])
		}
		ev, err := parseBracketed(spec[i+1 : i+1+end])
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
		i += end + 1
	}
	return events, nil
}

// MustParseSequence parses a key sequence and panics on error.
// Use only for known-valid specs in tests and initialization code.
func MustParseSequence(spec string) []Event {
	events, err := ParseSequence(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return events
}

// parseBracketed parses the inside of a <...> group.
func parseBracketed(inner string) (Event, error) {
	name := strings.ToLower(strings.TrimSpace(inner))
	if name == "" {
		return Event{}, fmt.Errorf("%w: empty <>", ErrInvalidSpec)
	}

	switch name {
	case "lt":
		return NewByteEvent('<'), nil
	case "gt":
		return NewByteEvent('>'), nil
	case "space":
		return NewByteEvent(' '), nil
	case "bar":
		return NewByteEvent('|'), nil
	case "bslash":
		return NewByteEvent('\\'), nil
	}

	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k), nil
	}

	if rest, ok := strings.CutPrefix(name, "char-"); ok {
		n, err := strconv.ParseUint(rest, 0, 8)
		if err != nil {
			return Event{}, fmt.Errorf("%w: %q: %v", ErrInvalidSpec, inner, err)
		}
		return FromByte(byte(n)), nil
	}

	if rest, ok := strings.CutPrefix(name, "c-"); ok && len(rest) == 1 {
		c := rest[0]
		if c < '?' || c > '~' {
			return Event{}, fmt.Errorf("%w: no control byte for %q", ErrInvalidSpec, inner)
		}
		if c == '?' {
			return FromByte(byteDel), nil
		}
		return FromByte(c & 0x1f), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, inner)
}

// FormatSequence renders events in key specification notation.
func FormatSequence(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(e.String())
	}
	return b.String()
}
