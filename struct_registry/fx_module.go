package struct_registry

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/binwire/observability"
)

// FXModule is an fx.Module that provides the schema Store.
//
// The module provides:
// 1. *Store (concrete type) for direct use
// 2. Registry interface for dependency injection
//
// Schema registration itself stays in the application's hands: declare the
// structs (or call LoadYAMLFile) in an fx.Invoke that runs before any codec
// traffic starts, preserving the single-writer initialization phase.
//
// Usage:
//
//	app := fx.New(
//	    struct_registry.FXModule,
//	    fx.Invoke(func(store *struct_registry.Store) error {
//	        return store.LoadYAMLFile("schemas.yaml")
//	    }),
//	)
var FXModule = fx.Module("struct_registry",
	fx.Provide(
		NewStoreWithDI, // Provides *Store
		// Also provide the Registry interface
		fx.Annotate(
			func(s *Store) Registry { return s },
			fx.As(new(Registry)),
		),
	),
)

// StoreParams groups the dependencies needed to create a schema Store.
type StoreParams struct {
	fx.In

	Observer observability.Observer `optional:"true"` // Optional observer for metrics/tracing
	Logger   Logger                 `optional:"true"` // Optional logger from binwire/logger
}

// NewStoreWithDI creates a schema Store using dependency injection. The
// observer and logger are both optional; absent dependencies leave the Store
// silent.
func NewStoreWithDI(params StoreParams) *Store {
	return NewStore(Config{
		Observer: params.Observer,
		Logger:   params.Logger,
	})
}
