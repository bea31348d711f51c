// Package struct_registry holds the declarative descriptions of the packed
// binary records exchanged with instruments: ordered, fixed-width, named
// fields mirroring a C structure's memory layout.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Registry interface: the contract consumed by the codec and wrapper code
//   - Store struct: concrete in-memory implementation of the Registry interface
//   - NewStore constructor: returns *Store (concrete type)
//   - FX module: provides both *Store and Registry for dependency injection
//
// # Declaring Schemas
//
// A StructSpec is built from an ordered list of FieldSpec declarations plus a
// struct-wide default endianness that individual fields may override:
//
//	store := struct_registry.NewStore(struct_registry.Config{})
//	spec, err := store.Register("trigger_status", []struct_registry.FieldSpec{
//	    {Name: "id", Type: struct_registry.FieldUint16, Endianness: struct_registry.Big()},
//	    {Name: "flag", Type: struct_registry.FieldUint8},
//	    {Name: "value", Type: struct_registry.FieldInt32},
//	}, binconv.LittleEndian)
//
// Schema sets can equally be declared as data and loaded from a YAML document
// during initialization (see LoadYAML), which keeps instrument wrapper code
// free of layout literals.
//
// Structs compose: a FieldStruct field embeds an already registered struct,
// occupying that struct's total length at its offset. Because references only
// resolve against earlier registrations, layouts are acyclic and every width
// stays fixed at registration time.
//
// # Lifecycle and Concurrency
//
// Registration is a one-time initialization phase: all Register and LoadYAML
// calls must complete before concurrent Lookup/decode/encode traffic begins.
// The Store performs no internal locking; after the initialization phase the
// registry is read-only and safe for unlimited concurrent readers. There is
// no update or removal operation; a schema is write-once and a registered
// StructSpec is immutable.
//
// # Validation
//
// Register validates eagerly and rejects, with distinct sentinel errors:
//   - an empty field list or a zero-width field (ErrInvalidSpec)
//   - a struct-typed field referencing an unregistered struct (ErrInvalidSpec)
//   - duplicate field names, or re-use of a registered struct name (ErrDuplicateName)
//
// Total byte length is derived from the field widths at registration time,
// never set independently.
package struct_registry
