package binconv

import "fmt"

// Endianness selects the byte order used to interpret or produce a multi-byte
// value. Big-endian stores the most significant byte first, little-endian the
// least significant byte first.
//
// Schema declarations carry an Endianness per struct (as the default) and
// optionally per field; the zero value is LittleEndian, which matches the
// wire format of most bench instruments.
type Endianness uint8

const (
	// LittleEndian stores the least significant byte first.
	LittleEndian Endianness = iota

	// BigEndian stores the most significant byte first.
	BigEndian
)

// String returns the lowercase name used in schema declarations.
func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("endianness(%d)", uint8(e))
	}
}

// ParseEndianness converts a schema declaration string into an Endianness.
// Accepted values are "little", "le", "big" and "be" (case-sensitive,
// lowercase, matching the YAML schema format).
func ParseEndianness(s string) (Endianness, error) {
	switch s {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("unknown endianness %q", s)
	}
}

// SwapEndianness returns a new slice with the byte order reversed. Applying
// it twice returns the original sequence. The input slice is not modified.
func SwapEndianness(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
