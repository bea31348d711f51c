package struct_registry

import (
	"context"

	"github.com/aalemi-dev/binwire/observability"
)

// Config defines the configuration for a schema Store.
//
// Both members are optional: a zero Config yields a Store that registers and
// looks up schemas without emitting any telemetry.
type Config struct {
	// Observer receives one OperationContext per Register call (component
	// "struct_registry"). Optional.
	Observer observability.Observer

	// Logger receives registration events and validation failures. Optional.
	Logger Logger
}

// Logger is the subset of the binwire logger.Logger interface this package
// needs. It provides context-aware structured logging with optional error and
// field parameters.
type Logger interface {
	// InfoWithContext logs an informational message with trace context.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
