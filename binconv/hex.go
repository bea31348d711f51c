package binconv

import (
	"encoding/hex"
	"fmt"
)

// HexToBytes decodes a hex-encoded payload string into bytes. Input is
// case-insensitive and must contain an even number of hex digits with no
// separators or prefix. Odd length or a non-hex character fails with
// ErrInvalidHex.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return b, nil
}

// BytesToHex encodes bytes as the canonical hex-string representation:
// always lowercase, always exactly 2*len(b) characters. It is the total
// inverse of HexToBytes.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ByteAt returns the byte at the given position (starting at 0) of a
// hex-encoded payload without decoding the whole string.
func ByteAt(s string, pos int) (byte, error) {
	if pos < 0 || 2*pos+2 > len(s) {
		return 0, fmt.Errorf("%w: byte position %d outside %d-character string", ErrInvalidHex, pos, len(s))
	}
	b, err := HexToBytes(s[2*pos : 2*pos+2])
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
