// Package binconv provides the conversion primitives used by the binwire
// codec: hex-string handling, fixed-width integer packing, byte-order
// reversal, and fixed-width text encoding.
//
// # Overview
//
// Instrument payloads travel as hex-encoded ASCII strings (two hex characters
// per byte, no separators, no prefix). binconv converts between that boundary
// representation and the typed values the rest of the library works with:
//
//	raw, err := binconv.HexToBytes("0a0aff2c010000")
//	id := binconv.BytesToUint(raw[0:2], binconv.BigEndian)      // 2570
//	value := binconv.BytesToInt(raw[3:7], binconv.LittleEndian) // 300
//
// All functions are pure: they never mutate their inputs, never retain state
// across calls, and are safe for unlimited concurrent use.
//
// # Error Handling
//
// Failures are deterministic functions of the input and are reported through
// two sentinel errors, ErrInvalidHex and ErrOverflow, always wrapped with
// context and matchable with errors.Is. Values are never silently coerced: a
// too-large integer fails instead of being truncated, and a short hex string
// fails instead of being zero-padded.
//
// # Widths and Domains
//
// Integer packing is exact two's complement. An unsigned field of width w
// accepts [0, 2^(8w)-1]; a signed field accepts [-2^(8w-1), 2^(8w-1)-1].
// Anything outside the domain fails with ErrOverflow.
package binconv
