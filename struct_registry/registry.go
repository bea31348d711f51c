package struct_registry

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aalemi-dev/binwire/binconv"
	"github.com/aalemi-dev/binwire/observability"
)

// Registry is the read interface plus the one-time write operation exposed to
// codec and instrument wrapper code.
type Registry interface {
	// Register validates and freezes a struct declaration under the given
	// name. It fails with ErrDuplicateName on a repeated struct or field
	// name and ErrInvalidSpec on a malformed declaration. Struct-typed
	// fields must reference a struct registered earlier. All Register calls
	// belong to the initialization phase.
	Register(name string, fields []FieldSpec, defaultEndianness binconv.Endianness) (*StructSpec, error)

	// Lookup returns the registered spec, or ErrNotFound.
	Lookup(name string) (*StructSpec, error)

	// Names returns the registered struct names in sorted order.
	Names() []string
}

// Store is the in-memory implementation of Registry.
//
// Store deliberately carries no mutex: the registration phase is
// single-writer by contract (see the package documentation), and once it is
// over the map is only ever read. This keeps Lookup allocation- and
// synchronization-free on the decode/encode hot path.
type Store struct {
	specs map[string]*StructSpec

	// observer provides optional observability hooks for registration events
	observer observability.Observer

	// logger provides optional context-aware logging capabilities
	logger Logger
}

// NewStore creates an empty schema Store.
// Returns the concrete *Store type.
func NewStore(cfg Config) *Store {
	return &Store{
		specs:    make(map[string]*StructSpec),
		observer: cfg.Observer,
		logger:   cfg.Logger,
	}
}

// Register validates the declaration, freezes it into an immutable StructSpec
// and records it under name. The spec's total length is the sum of the field
// widths; it is computed here and never changes afterwards.
func (s *Store) Register(name string, fields []FieldSpec, defaultEndianness binconv.Endianness) (*StructSpec, error) {
	start := time.Now()

	spec, err := func() (*StructSpec, error) {
		if _, exists := s.specs[name]; exists {
			return nil, fmt.Errorf("%w: struct %q already registered", ErrDuplicateName, name)
		}
		spec, err := newStructSpec(name, fields, defaultEndianness, s.Lookup)
		if err != nil {
			return nil, err
		}
		s.specs[name] = spec
		return spec, nil
	}()

	s.observeOperation("register", name, time.Since(start), err, int64(totalLen(spec)))
	if err != nil {
		s.logError(context.Background(), "struct registration rejected", err, map[string]interface{}{
			"struct": name,
		})
		return nil, err
	}
	s.logInfo(context.Background(), "struct registered", map[string]interface{}{
		"struct":       name,
		"fields":       spec.NumFields(),
		"total_length": spec.TotalLength(),
	})
	return spec, nil
}

// Lookup returns the spec registered under name, or ErrNotFound.
func (s *Store) Lookup(name string) (*StructSpec, error) {
	spec, ok := s.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return spec, nil
}

// Names returns the registered struct names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.specs))
	for name := range s.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// observeOperation safely calls the observer if it's not nil.
func (s *Store) observeOperation(operation, resource string, duration time.Duration, err error, size int64) {
	if s.observer != nil {
		s.observer.ObserveOperation(observability.OperationContext{
			Component: "struct_registry",
			Operation: operation,
			Resource:  resource,
			Duration:  duration,
			Error:     err,
			Size:      size,
		})
	}
}

// logInfo logs through the optional logger.
func (s *Store) logInfo(ctx context.Context, msg string, fields ...map[string]interface{}) {
	if s.logger != nil {
		s.logger.InfoWithContext(ctx, msg, nil, fields...)
	}
}

// logError logs through the optional logger.
func (s *Store) logError(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	if s.logger != nil {
		s.logger.ErrorWithContext(ctx, msg, err, fields...)
	}
}

func totalLen(spec *StructSpec) int {
	if spec == nil {
		return 0
	}
	return spec.TotalLength()
}

// Compile-time interface satisfaction check.
var _ Registry = (*Store)(nil)
