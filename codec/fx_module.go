package codec

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/binwire/observability"
	"github.com/aalemi-dev/binwire/struct_registry"
)

// FXModule is an fx.Module that provides the codec Client.
//
// The module provides:
// 1. *Client (concrete type) for direct use
// 2. Codec interface for dependency injection
//
// It depends on struct_registry.Registry, so struct_registry.FXModule (or an
// equivalent provider) must be part of the same application.
//
// Usage:
//
//	app := fx.New(
//	    struct_registry.FXModule,
//	    codec.FXModule,
//	    fx.Invoke(func(c codec.Codec) {
//	        // decode/encode instrument payloads
//	    }),
//	)
var FXModule = fx.Module("codec",
	fx.Provide(
		NewClientWithDI, // Provides *Client
		// Also provide the Codec interface
		fx.Annotate(
			func(c *Client) Codec { return c },
			fx.As(new(Codec)),
		),
	),
)

// ClientParams groups the dependencies needed to create a codec Client.
type ClientParams struct {
	fx.In

	Registry struct_registry.Registry
	Observer observability.Observer `optional:"true"` // Optional observer for metrics/tracing
	Logger   Logger                 `optional:"true"` // Optional logger from binwire/logger
}

// NewClientWithDI creates a codec Client using dependency injection.
func NewClientWithDI(params ClientParams) (*Client, error) {
	return NewClient(Config{
		Registry: params.Registry,
		Observer: params.Observer,
		Logger:   params.Logger,
	})
}
