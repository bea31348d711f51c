package binconv

import "errors"

// Sentinel errors reported by the conversion primitives. They are always
// returned wrapped with context (offending input, width, domain) and should
// be matched with errors.Is.
var (
	// ErrInvalidHex is returned when a hex string has odd length or contains
	// a character outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("invalid hex string")

	// ErrOverflow is returned when a value does not fit the requested
	// fixed-width representation: an integer outside its width/signedness
	// domain, or text longer than its field width.
	ErrOverflow = errors.New("value overflows field width")
)
