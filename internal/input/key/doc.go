// Package key provides key event types, the terminal input decoder and
// key specification parsing.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a logical key (navigation keys, editing keys, or a raw byte)
//   - Event: A single decoded key press
//   - Decoder: Turns raw terminal bytes, including escape sequences, into events
//
// # Key Specifications
//
// Key sequences can be written in Vim notation:
//
//   - Plain bytes: "ihello", ":wq"
//   - Named keys: "<Esc>", "<CR>", "<BS>", "<Del>", "<Up>", "<PageDown>"
//   - Control bytes: "<C-q>", "<C-h>"
//   - Escapes for awkward bytes: "<lt>", "<Space>", "<Char-200>"
//
// ParseSequence("ihello<Esc>") yields the same events a terminal would
// produce when those keys are typed.
package key
