package codec

import (
	"errors"

	"github.com/aalemi-dev/binwire/binconv"
	"github.com/aalemi-dev/binwire/struct_registry"
)

// Sentinel errors reported by decode and encode. They are returned wrapped
// with the struct and field involved and should be matched with errors.Is.
var (
	// ErrLengthMismatch is returned by decode when the payload length does
	// not equal the spec's total length. Short payloads are never
	// zero-padded and long payloads are never truncated.
	ErrLengthMismatch = errors.New("payload length does not match struct length")

	// ErrTypeMismatch is returned by encode when a supplied value's kind
	// does not match the field's type tag (e.g. text supplied for an
	// integer field).
	ErrTypeMismatch = errors.New("value kind does not match field type")

	// ErrMissingField is returned by encode when the value mapping has no
	// entry for a declared field.
	ErrMissingField = errors.New("value missing for field")
)

// IsCodecError reports whether err belongs to the codec failure taxonomy:
// the three encode/decode kinds above, the binconv conversion kinds, or the
// schema registry kinds. Instrument wrapper code uses it to separate
// deterministic payload/layout failures from transient session I/O faults,
// which are the only ones worth retrying.
func IsCodecError(err error) bool {
	return errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, binconv.ErrInvalidHex) ||
		errors.Is(err, binconv.ErrOverflow) ||
		struct_registry.IsSchemaError(err)
}
