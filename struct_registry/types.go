package struct_registry

import (
	"fmt"

	"github.com/aalemi-dev/binwire/binconv"
)

// FieldType is the primitive type tag of a schema field. It determines how
// the codec interprets the field's bytes and, for all types except FieldBytes
// and FieldText, fixes the field's byte width.
type FieldType uint8

const (
	// FieldUint8 is an unsigned 1-byte integer.
	FieldUint8 FieldType = iota + 1
	// FieldUint16 is an unsigned 2-byte integer.
	FieldUint16
	// FieldUint32 is an unsigned 4-byte integer.
	FieldUint32
	// FieldUint64 is an unsigned 8-byte integer.
	FieldUint64
	// FieldInt8 is a signed (two's complement) 1-byte integer.
	FieldInt8
	// FieldInt16 is a signed 2-byte integer.
	FieldInt16
	// FieldInt32 is a signed 4-byte integer.
	FieldInt32
	// FieldInt64 is a signed 8-byte integer.
	FieldInt64
	// FieldFloat32 is an IEEE 754 single-precision float.
	FieldFloat32
	// FieldFloat64 is an IEEE 754 double-precision float.
	FieldFloat64
	// FieldBytes is a fixed-length opaque byte blob; width is declared
	// explicitly.
	FieldBytes
	// FieldText is fixed-length zero-padded text; width is declared
	// explicitly.
	FieldText
	// FieldStruct embeds a previously registered struct; its width is the
	// nested struct's total length.
	FieldStruct
)

var fieldTypeNames = map[FieldType]string{
	FieldUint8:   "uint8",
	FieldUint16:  "uint16",
	FieldUint32:  "uint32",
	FieldUint64:  "uint64",
	FieldInt8:    "int8",
	FieldInt16:   "int16",
	FieldInt32:   "int32",
	FieldInt64:   "int64",
	FieldFloat32: "float32",
	FieldFloat64: "float64",
	FieldBytes:   "bytes",
	FieldText:    "text",
	FieldStruct:  "struct",
}

// String returns the lowercase name used in YAML schema declarations.
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("fieldtype(%d)", uint8(t))
}

// FixedWidth returns the byte width implied by the type tag, or 0 for
// FieldBytes and FieldText whose width is declared per field.
func (t FieldType) FixedWidth() int {
	switch t {
	case FieldUint8, FieldInt8:
		return 1
	case FieldUint16, FieldInt16:
		return 2
	case FieldUint32, FieldInt32, FieldFloat32:
		return 4
	case FieldUint64, FieldInt64, FieldFloat64:
		return 8
	default:
		return 0
	}
}

// Signed reports whether the type is a two's-complement signed integer.
func (t FieldType) Signed() bool {
	switch t {
	case FieldInt8, FieldInt16, FieldInt32, FieldInt64:
		return true
	default:
		return false
	}
}

// ParseFieldType converts a YAML schema declaration string into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	for t, name := range fieldTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown field type %q", ErrInvalidSpec, s)
}

// Big returns a per-field endianness override for FieldSpec declarations.
func Big() *binconv.Endianness {
	e := binconv.BigEndian
	return &e
}

// Little returns a per-field endianness override for FieldSpec declarations.
func Little() *binconv.Endianness {
	e := binconv.LittleEndian
	return &e
}
