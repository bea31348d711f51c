package struct_registry

import (
	"fmt"

	"github.com/aalemi-dev/binwire/binconv"
)

// FieldSpec declares one field of a packed struct. Declarations are inputs to
// Register; the frozen, validated form handed back to callers is Field inside
// a StructSpec.
type FieldSpec struct {
	// Name identifies the field within its struct. Must be non-empty and
	// unique within the struct.
	Name string

	// Type is the primitive type tag.
	Type FieldType

	// Width is the byte width for FieldBytes and FieldText. For fixed-width
	// types it may be left zero or must equal the type's width.
	Width int

	// Struct names the nested struct for FieldStruct fields. It must refer
	// to an already registered struct; registration order therefore rules
	// out reference cycles.
	Struct string

	// Endianness optionally overrides the struct's default byte order for
	// this field. Nil means inherit the default.
	Endianness *binconv.Endianness
}

// Field is the frozen form of a field after validation: width and byte order
// resolved, offset computed from the declared order.
type Field struct {
	// Name identifies the field within its struct.
	Name string

	// Type is the primitive type tag.
	Type FieldType

	// Width is the resolved byte width.
	Width int

	// Endianness is the resolved byte order (field override or struct
	// default).
	Endianness binconv.Endianness

	// Struct is the resolved nested layout for FieldStruct fields, nil for
	// every other type.
	Struct *StructSpec

	// Offset is the field's byte offset from the start of the record,
	// determined by the declared field order.
	Offset int
}

// StructSpec is the immutable, validated layout of one packed binary record.
// Field order is the canonical wire order. A StructSpec is only obtained from
// Register or Lookup and is never mutated afterwards.
type StructSpec struct {
	name     string
	fields   []Field
	byName   map[string]int
	totalLen int
}

// Name returns the registered struct name.
func (s *StructSpec) Name() string { return s.name }

// NumFields returns the number of fields.
func (s *StructSpec) NumFields() int { return len(s.fields) }

// Field returns the i-th field in wire order.
func (s *StructSpec) Field(i int) Field { return s.fields[i] }

// FieldByName returns the named field, if declared.
func (s *StructSpec) FieldByName(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Fields returns a copy of the field list in wire order.
func (s *StructSpec) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// TotalLength is the record length in bytes: the sum of all field widths,
// derived and frozen at registration time.
func (s *StructSpec) TotalLength() int { return s.totalLen }

// newStructSpec validates a declaration and freezes it into a StructSpec.
// resolve looks up nested struct references against the already registered
// specs.
func newStructSpec(name string, fields []FieldSpec, defaultEndianness binconv.Endianness, resolve func(string) (*StructSpec, error)) (*StructSpec, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty struct name", ErrInvalidSpec)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: struct %q declares no fields", ErrInvalidSpec, name)
	}

	spec := &StructSpec{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}

	offset := 0
	for _, decl := range fields {
		if decl.Name == "" {
			return nil, fmt.Errorf("%w: struct %q declares an unnamed field", ErrInvalidSpec, name)
		}
		if _, dup := spec.byName[decl.Name]; dup {
			return nil, fmt.Errorf("%w: field %q declared twice in struct %q", ErrDuplicateName, decl.Name, name)
		}

		var width int
		var nested *StructSpec
		if decl.Type == FieldStruct {
			if decl.Struct == "" {
				return nil, fmt.Errorf("%w: struct %q field %q names no nested struct", ErrInvalidSpec, name, decl.Name)
			}
			sub, err := resolve(decl.Struct)
			if err != nil {
				return nil, fmt.Errorf("%w: struct %q field %q references unregistered struct %q", ErrInvalidSpec, name, decl.Name, decl.Struct)
			}
			nested = sub
			width = sub.TotalLength()
		} else {
			if decl.Struct != "" {
				return nil, fmt.Errorf("%w: struct %q field %q is %s but names a nested struct", ErrInvalidSpec, name, decl.Name, decl.Type)
			}
			w, err := resolveWidth(decl)
			if err != nil {
				return nil, fmt.Errorf("struct %q field %q: %w", name, decl.Name, err)
			}
			width = w
		}

		endianness := defaultEndianness
		if decl.Endianness != nil {
			endianness = *decl.Endianness
		}

		spec.byName[decl.Name] = len(spec.fields)
		spec.fields = append(spec.fields, Field{
			Name:       decl.Name,
			Type:       decl.Type,
			Width:      width,
			Endianness: endianness,
			Struct:     nested,
			Offset:     offset,
		})
		offset += width
	}

	spec.totalLen = offset
	return spec, nil
}

// resolveWidth computes the byte width of one declaration, enforcing that
// fixed-width types are not contradicted and that blob/text fields declare a
// positive width.
func resolveWidth(decl FieldSpec) (int, error) {
	if fixed := decl.Type.FixedWidth(); fixed > 0 {
		if decl.Width != 0 && decl.Width != fixed {
			return 0, fmt.Errorf("%w: declared width %d contradicts %s", ErrInvalidSpec, decl.Width, decl.Type)
		}
		return fixed, nil
	}

	switch decl.Type {
	case FieldBytes, FieldText:
		if decl.Width < 1 {
			return 0, fmt.Errorf("%w: %s field requires a positive width, got %d", ErrInvalidSpec, decl.Type, decl.Width)
		}
		return decl.Width, nil
	default:
		return 0, fmt.Errorf("%w: unknown field type %d", ErrInvalidSpec, decl.Type)
	}
}
