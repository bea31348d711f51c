package codec

import (
	"fmt"
	"math"

	"github.com/aalemi-dev/binwire/binconv"
	"github.com/aalemi-dev/binwire/struct_registry"
)

// Decode converts a raw payload into an ordered record, walking the spec's
// fields in wire order and converting each fixed-width slice through binconv
// with the field's type tag and endianness. Struct fields decode recursively
// into nested records. The input buffer is never mutated; blob fields are
// copied out of it.
//
// It fails with ErrLengthMismatch unless len(payload) equals the spec's
// total length. On any failure no record is returned.
func Decode(spec *struct_registry.StructSpec, payload []byte) (*Record, error) {
	if len(payload) != spec.TotalLength() {
		return nil, fmt.Errorf("%w: struct %q wants %d bytes, payload has %d",
			ErrLengthMismatch, spec.Name(), spec.TotalLength(), len(payload))
	}

	record := NewRecord()
	for i := 0; i < spec.NumFields(); i++ {
		field := spec.Field(i)
		slice := payload[field.Offset : field.Offset+field.Width]
		value, err := decodeField(field, slice)
		if err != nil {
			return nil, fmt.Errorf("struct %q field %q: %w", spec.Name(), field.Name, err)
		}
		record.Set(field.Name, value)
	}
	return record, nil
}

// DecodeHex decodes a hex-encoded payload (the instrument session boundary
// format), propagating binconv.ErrInvalidHex for malformed input.
func DecodeHex(spec *struct_registry.StructSpec, payload string) (*Record, error) {
	raw, err := binconv.HexToBytes(payload)
	if err != nil {
		return nil, err
	}
	return Decode(spec, raw)
}

// decodeField converts one field slice. The switch is exhaustive over the
// field type tags; schema validation guarantees no other tag reaches here.
func decodeField(field struct_registry.Field, slice []byte) (Value, error) {
	switch field.Type {
	case struct_registry.FieldUint8, struct_registry.FieldUint16,
		struct_registry.FieldUint32, struct_registry.FieldUint64:
		return UintValue(binconv.BytesToUint(slice, field.Endianness)), nil
	case struct_registry.FieldInt8, struct_registry.FieldInt16,
		struct_registry.FieldInt32, struct_registry.FieldInt64:
		return IntValue(binconv.BytesToInt(slice, field.Endianness)), nil
	case struct_registry.FieldFloat32:
		bits := uint32(binconv.BytesToUint(slice, field.Endianness))
		return FloatValue(float64(math.Float32frombits(bits))), nil
	case struct_registry.FieldFloat64:
		bits := binconv.BytesToUint(slice, field.Endianness)
		return FloatValue(math.Float64frombits(bits)), nil
	case struct_registry.FieldText:
		return TextValue(binconv.BytesToText(slice)), nil
	case struct_registry.FieldBytes:
		return BytesValue(slice), nil
	case struct_registry.FieldStruct:
		nested, err := Decode(field.Struct, slice)
		if err != nil {
			return Value{}, err
		}
		return RecordValue(nested), nil
	default:
		panic(fmt.Sprintf("unhandled field type %v in registered spec", field.Type))
	}
}

// Encode converts a record into the packed byte layout of the spec, walking
// fields in wire order and concatenating each fixed-width representation.
// The result always has exactly the spec's total length.
//
// It fails with ErrMissingField if the record lacks a declared field,
// ErrTypeMismatch if a value's kind does not match the field's type tag,
// ErrLengthMismatch if a blob value's length differs from the field width,
// and propagates binconv.ErrOverflow for values outside their field domain.
// On any failure no buffer is returned.
func Encode(spec *struct_registry.StructSpec, values *Record) ([]byte, error) {
	out := make([]byte, 0, spec.TotalLength())
	for i := 0; i < spec.NumFields(); i++ {
		field := spec.Field(i)
		value, ok := values.Get(field.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in struct %q", ErrMissingField, field.Name, spec.Name())
		}
		packed, err := encodeField(field, value)
		if err != nil {
			return nil, fmt.Errorf("struct %q field %q: %w", spec.Name(), field.Name, err)
		}
		out = append(out, packed...)
	}
	return out, nil
}

// EncodeHex encodes a record and renders the canonical lowercase hex string
// ready to transmit on an instrument session.
func EncodeHex(spec *struct_registry.StructSpec, values *Record) (string, error) {
	raw, err := Encode(spec, values)
	if err != nil {
		return "", err
	}
	return binconv.BytesToHex(raw), nil
}

// encodeField packs one value into its fixed-width representation. The
// switch is exhaustive over the field type tags.
func encodeField(field struct_registry.Field, value Value) ([]byte, error) {
	switch field.Type {
	case struct_registry.FieldUint8, struct_registry.FieldUint16,
		struct_registry.FieldUint32, struct_registry.FieldUint64:
		if value.Kind() != KindInteger {
			return nil, fmt.Errorf("%w: %s supplied for %s", ErrTypeMismatch, value.Kind(), field.Type)
		}
		u, ok := value.Uint()
		if !ok {
			return nil, fmt.Errorf("%w: %s does not fit unsigned width %d", binconv.ErrOverflow, value, field.Width)
		}
		return binconv.UintToBytes(u, field.Width, field.Endianness)

	case struct_registry.FieldInt8, struct_registry.FieldInt16,
		struct_registry.FieldInt32, struct_registry.FieldInt64:
		if value.Kind() != KindInteger {
			return nil, fmt.Errorf("%w: %s supplied for %s", ErrTypeMismatch, value.Kind(), field.Type)
		}
		i, ok := value.Int()
		if !ok {
			return nil, fmt.Errorf("%w: %s does not fit signed width %d", binconv.ErrOverflow, value, field.Width)
		}
		return binconv.IntToBytes(i, field.Width, field.Endianness)

	case struct_registry.FieldFloat32:
		f, ok := value.Float()
		if !ok {
			return nil, fmt.Errorf("%w: %s supplied for %s", ErrTypeMismatch, value.Kind(), field.Type)
		}
		// Narrowing must be exact: a value the single-precision format
		// cannot hold would decode back as a different number.
		f32 := float32(f)
		if float64(f32) != f && !math.IsNaN(f) {
			return nil, fmt.Errorf("%w: %s is not representable as float32", binconv.ErrOverflow, value)
		}
		return binconv.UintToBytes(uint64(math.Float32bits(f32)), 4, field.Endianness)

	case struct_registry.FieldFloat64:
		f, ok := value.Float()
		if !ok {
			return nil, fmt.Errorf("%w: %s supplied for %s", ErrTypeMismatch, value.Kind(), field.Type)
		}
		return binconv.UintToBytes(math.Float64bits(f), 8, field.Endianness)

	case struct_registry.FieldText:
		s, ok := value.Text()
		if !ok {
			return nil, fmt.Errorf("%w: %s supplied for %s", ErrTypeMismatch, value.Kind(), field.Type)
		}
		return binconv.TextToBytes(s, field.Width)

	case struct_registry.FieldBytes:
		b, ok := value.Bytes()
		if !ok {
			return nil, fmt.Errorf("%w: %s supplied for %s", ErrTypeMismatch, value.Kind(), field.Type)
		}
		// Blobs carry no padding convention, so decode could not tell a
		// short blob from one with trailing zero bytes. The length must
		// match the declared width exactly.
		if len(b) != field.Width {
			return nil, fmt.Errorf("%w: %d-byte blob for width %d", ErrLengthMismatch, len(b), field.Width)
		}
		return b, nil

	case struct_registry.FieldStruct:
		rec, ok := value.Record()
		if !ok {
			return nil, fmt.Errorf("%w: %s supplied for %s", ErrTypeMismatch, value.Kind(), field.Type)
		}
		return Encode(field.Struct, rec)

	default:
		panic(fmt.Sprintf("unhandled field type %v in registered spec", field.Type))
	}
}
