package codec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/aalemi-dev/binwire/binconv"
)

// Kind is the tag of the Value variant. Every decode and encode path matches
// exhaustively on it, so no field kind can be silently mishandled.
type Kind uint8

const (
	// KindInvalid is the zero Value; it never matches any field type.
	KindInvalid Kind = iota

	// KindInteger covers both signed and unsigned integer fields. Sign and
	// range are properties of the field's type tag, checked at encode time.
	KindInteger

	// KindFloat covers 32- and 64-bit float fields.
	KindFloat

	// KindText covers fixed-width zero-padded text fields.
	KindText

	// KindBytes covers fixed-length opaque blob fields.
	KindBytes

	// KindRecord covers struct-typed fields: the value is a nested record
	// laid out by the field's referenced struct.
	KindRecord
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Value is the tagged variant carried in a Record: one of integer, float,
// text, bytes or nested record. Integers are stored as a sign flag plus
// magnitude so the full uint64 and int64 domains are representable under a
// single kind. Values are immutable; BytesValue and RecordValue copy their
// input and the accessors return copies, so no buffer is ever shared between
// a Record and its caller.
type Value struct {
	kind Kind
	neg  bool    // integer sign: the value is -mag
	mag  uint64  // integer magnitude, or IEEE 754 bits for KindFloat
	str  string  // KindText payload
	raw  []byte  // KindBytes payload
	rec  *Record // KindRecord payload
}

// IntValue builds an integer Value from a signed integer.
func IntValue(v int64) Value {
	if v < 0 {
		return Value{kind: KindInteger, neg: true, mag: uint64(-v)}
	}
	return Value{kind: KindInteger, mag: uint64(v)}
}

// UintValue builds an integer Value from an unsigned integer.
func UintValue(v uint64) Value {
	return Value{kind: KindInteger, mag: v}
}

// FloatValue builds a float Value.
func FloatValue(v float64) Value {
	return Value{kind: KindFloat, mag: math.Float64bits(v)}
}

// TextValue builds a text Value.
func TextValue(s string) Value {
	return Value{kind: KindText, str: s}
}

// BytesValue builds a bytes Value from a copy of b.
func BytesValue(b []byte) Value {
	return Value{kind: KindBytes, raw: append([]byte(nil), b...)}
}

// RecordValue builds a record Value for a struct-typed field from a copy of
// r; the value does not observe later Set calls on r.
func RecordValue(r *Record) Value {
	c := NewRecord()
	for i, name := range r.names {
		c.Set(name, r.values[i])
	}
	return Value{kind: KindRecord, rec: c}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Int returns the value as int64. ok is false if the kind is not integer or
// the magnitude exceeds the int64 domain.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	if v.neg {
		if v.mag > 1<<63 {
			return 0, false
		}
		return -int64(v.mag), true
	}
	if v.mag > math.MaxInt64 {
		return 0, false
	}
	return int64(v.mag), true
}

// Uint returns the value as uint64. ok is false if the kind is not integer
// or the value is negative.
func (v Value) Uint() (uint64, bool) {
	if v.kind != KindInteger || v.neg {
		return 0, false
	}
	return v.mag, true
}

// Float returns the value as float64. ok is false if the kind is not float.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return math.Float64frombits(v.mag), true
}

// Text returns the text payload. ok is false if the kind is not text.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.str, true
}

// Bytes returns a copy of the blob payload. ok is false if the kind is not
// bytes.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return append([]byte(nil), v.raw...), true
}

// Record returns a copy of the nested record. ok is false if the kind is not
// record.
func (v Value) Record() (*Record, bool) {
	if v.kind != KindRecord {
		return nil, false
	}
	c := NewRecord()
	for i, name := range v.rec.names {
		c.Set(name, v.rec.values[i])
	}
	return c, true
}

// Equal reports field-by-field equality as defined for the round-trip
// guarantee: integers compare numerically, floats compare by exact bit
// pattern, text and bytes compare exactly.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		a, b := v.normalized(), o.normalized()
		return a.neg == b.neg && a.mag == b.mag
	case KindFloat:
		return v.mag == o.mag
	case KindText:
		return v.str == o.str
	case KindBytes:
		return bytes.Equal(v.raw, o.raw)
	case KindRecord:
		return v.rec.Equal(o.rec)
	default:
		return true
	}
}

// normalized collapses the two representations of zero (+0 and -0 magnitude)
// so that equality is purely numeric.
func (v Value) normalized() Value {
	if v.neg && v.mag == 0 {
		return Value{kind: KindInteger}
	}
	return Value{kind: KindInteger, neg: v.neg, mag: v.mag}
}

// String renders the value for error messages and logs.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		if v.neg {
			return fmt.Sprintf("-%d", v.mag)
		}
		return fmt.Sprintf("%d", v.mag)
	case KindFloat:
		return fmt.Sprintf("%g", math.Float64frombits(v.mag))
	case KindText:
		return fmt.Sprintf("%q", v.str)
	case KindBytes:
		return "0x" + binconv.BytesToHex(v.raw)
	case KindRecord:
		return v.rec.String()
	default:
		return "<invalid>"
	}
}
