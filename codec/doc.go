// Package codec decodes packed instrument payloads into named, typed fields
// and encodes structured values back into the exact byte layout a C-style
// struct would produce, including per-field endianness.
//
// # Overview
//
// Instrument wire formats are packed, mixed-endianness, fixed-width binary
// records with no framing or checksum: an incorrect width, sign, or byte
// order silently produces a plausible but wrong measurement. The codec walks
// a registered StructSpec field by field, slicing the payload at each field's
// offset and converting each slice through binconv, so a layout is declared
// exactly once and every decode and encode goes through it. Struct-typed
// fields recurse: the embedded slice is decoded with the referenced layout
// into a nested record.
//
// Two entry styles are provided:
//
//   - Pure functions Decode/DecodeHex/Encode/EncodeHex operating on an
//     explicit *struct_registry.StructSpec. These are side-effect-free,
//     retain no state across calls, and are safe for unlimited concurrent
//     use.
//   - Client, which resolves specs by struct name through a Registry and
//     adds optional observability and logging around each operation; this is
//     what instrument wrapper code injects.
//
// # Round Trip
//
// For any spec and any record whose values satisfy every field's domain,
// Decode(Encode(record)) reproduces the record field by field. Float fields
// round-trip by exact bit pattern; no lossy transform occurs anywhere in the
// pipeline.
//
// # Error Handling
//
// Failures are deterministic functions of the input. The codec never
// recovers internally, never coerces a value, and never produces a partial
// record: a failed decode or encode returns nil plus exactly one error kind
// from the taxonomy (ErrLengthMismatch, ErrTypeMismatch, ErrMissingField
// here; binconv.ErrInvalidHex and binconv.ErrOverflow propagated from the
// conversion layer; registry errors propagated from lookup). Retrying a
// failed call is meaningless; whether to re-read the device belongs to the
// instrument-I/O layer.
package codec
