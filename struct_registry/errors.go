package struct_registry

import "errors"

// Sentinel errors reported by schema registration and lookup. They are
// returned wrapped with the offending struct or field name and should be
// matched with errors.Is.
var (
	// ErrDuplicateName is returned when a struct declares two fields with the
	// same name, or when a struct name is registered twice. Schemas are
	// write-once; re-registration is never an update.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidSpec is returned when a struct declaration is malformed: an
	// empty field list, a missing or zero width, an unknown field type, or a
	// width that contradicts the field's fixed-width type.
	ErrInvalidSpec = errors.New("invalid struct spec")

	// ErrNotFound is returned by Lookup for a struct name that was never
	// registered.
	ErrNotFound = errors.New("struct not registered")
)

// IsSchemaError reports whether err belongs to the schema declaration
// taxonomy. Wrapper code uses it to separate layout bugs, which are fatal at
// startup, from payload errors seen during traffic.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrInvalidSpec) ||
		errors.Is(err, ErrNotFound)
}
