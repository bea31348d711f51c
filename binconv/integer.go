package binconv

import (
	"fmt"
	"math"
)

// BytesToUint interprets b as an unsigned integer in the given byte order.
// b must be between 1 and 8 bytes long; schema validation guarantees that for
// codec traffic.
func BytesToUint(b []byte, e Endianness) uint64 {
	var v uint64
	if e == BigEndian {
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
		return v
	}
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// BytesToInt interprets b as a two's-complement signed integer in the given
// byte order, sign-extending from the width of b.
func BytesToInt(b []byte, e Endianness) int64 {
	v := BytesToUint(b, e)
	bits := uint(len(b)) * 8
	if bits < 64 && v&(1<<(bits-1)) != 0 {
		v |= ^uint64(0) << bits
	}
	return int64(v)
}

// UintToBytes packs v into width bytes in the given byte order. It fails with
// ErrOverflow if v does not fit: the unsigned domain for width w is
// [0, 2^(8w)-1].
func UintToBytes(v uint64, width int, e Endianness) ([]byte, error) {
	if width < 1 || width > 8 {
		return nil, fmt.Errorf("%w: unsupported integer width %d", ErrOverflow, width)
	}
	if width < 8 && v > (uint64(1)<<(8*width))-1 {
		return nil, fmt.Errorf("%w: %d does not fit unsigned width %d", ErrOverflow, v, width)
	}
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		c := byte(v >> (8 * i))
		if e == BigEndian {
			out[width-1-i] = c
		} else {
			out[i] = c
		}
	}
	return out, nil
}

// IntToBytes packs v into width bytes of two's complement in the given byte
// order. It fails with ErrOverflow if v is outside the signed domain
// [-2^(8w-1), 2^(8w-1)-1] for width w.
func IntToBytes(v int64, width int, e Endianness) ([]byte, error) {
	if width < 1 || width > 8 {
		return nil, fmt.Errorf("%w: unsupported integer width %d", ErrOverflow, width)
	}
	if width < 8 {
		lo := int64(-1) << (8*width - 1)
		hi := -lo - 1
		if v < lo || v > hi {
			return nil, fmt.Errorf("%w: %d does not fit signed width %d (domain [%d, %d])", ErrOverflow, v, width, lo, hi)
		}
	}
	return UintToBytes(uint64(v)&widthMask(width), width, e)
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return math.MaxUint64
	}
	return (uint64(1) << (8 * width)) - 1
}

// ExtractBits reads lengthBits bits starting at startBit from a big-endian
// byte sequence, with bit 0 being the least significant bit of the last byte.
// Wrapper code uses it for ad-hoc status words where sub-byte flags share a
// register; schema fields are always byte-granular.
func ExtractBits(b []byte, startBit, lengthBits uint) (uint64, error) {
	if lengthBits == 0 || lengthBits > 64 {
		return 0, fmt.Errorf("%w: bit length %d outside [1, 64]", ErrOverflow, lengthBits)
	}
	if startBit+lengthBits > uint(len(b))*8 {
		return 0, fmt.Errorf("%w: bits [%d, %d) outside %d-byte value", ErrOverflow, startBit, startBit+lengthBits, len(b))
	}
	var v uint64
	for i := uint(0); i < lengthBits; i++ {
		bit := startBit + i
		c := b[uint(len(b))-1-bit/8]
		if c&(1<<(bit%8)) != 0 {
			v |= 1 << i
		}
	}
	return v, nil
}

// Uint16LEHex renders a 16-bit value as a 4-character little-endian hex word,
// the format used by command registers on several supported instruments.
func Uint16LEHex(v uint16) string {
	return BytesToHex([]byte{byte(v), byte(v >> 8)})
}

// UintLEHex renders v as a little-endian hex string of 2*width characters.
// It fails with ErrOverflow if v does not fit in width bytes.
func UintLEHex(v uint64, width int) (string, error) {
	b, err := UintToBytes(v, width, LittleEndian)
	if err != nil {
		return "", err
	}
	return BytesToHex(b), nil
}
