package codec

import (
	"context"
	"fmt"
	"time"

	"github.com/aalemi-dev/binwire/binconv"
	"github.com/aalemi-dev/binwire/observability"
	"github.com/aalemi-dev/binwire/struct_registry"
)

// Client resolves schemas by name through a Registry and wraps the pure
// Decode/Encode functions with optional observability and logging. It holds
// no mutable state and is safe for concurrent use once the registry's
// initialization phase is over.
type Client struct {
	registry struct_registry.Registry

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// logger provides optional context-aware logging capabilities
	logger Logger
}

// Config holds configuration for a codec Client.
type Config struct {
	// Registry resolves struct names to registered specs. Required.
	Registry struct_registry.Registry

	// Observer receives one OperationContext per decode/encode (component
	// "codec"). Optional.
	Observer observability.Observer

	// Logger receives decode/encode failures. Optional.
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

// NewClient creates a codec Client.
// Returns the concrete *Client type.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("codec client requires a registry")
	}
	return &Client{
		registry: cfg.Registry,
		observer: cfg.Observer,
		logger:   cfg.Logger,
	}, nil
}

// Decode converts a raw payload into an ordered record using the named
// struct's layout, propagating struct_registry.ErrNotFound for unregistered
// names.
func (c *Client) Decode(ctx context.Context, structName string, payload []byte) (*Record, error) {
	start := time.Now()

	record, err := func() (*Record, error) {
		spec, err := c.registry.Lookup(structName)
		if err != nil {
			return nil, err
		}
		return Decode(spec, payload)
	}()

	c.observeOperation("decode", structName, time.Since(start), err, int64(len(payload)))
	if err != nil {
		c.logError(ctx, "payload decode failed", err, map[string]interface{}{
			"struct":        structName,
			"payload_bytes": len(payload),
		})
		return nil, err
	}
	return record, nil
}

// DecodeHex converts a hex-encoded payload into an ordered record,
// propagating binconv.ErrInvalidHex for malformed input.
func (c *Client) DecodeHex(ctx context.Context, structName string, payload string) (*Record, error) {
	start := time.Now()

	record, err := func() (*Record, error) {
		spec, err := c.registry.Lookup(structName)
		if err != nil {
			return nil, err
		}
		return DecodeHex(spec, payload)
	}()

	c.observeOperation("decode", structName, time.Since(start), err, int64(len(payload)/2))
	if err != nil {
		c.logError(ctx, "payload decode failed", err, map[string]interface{}{
			"struct":      structName,
			"payload_hex": payload,
		})
		return nil, err
	}
	return record, nil
}

// Encode converts a record into the named struct's packed byte layout.
func (c *Client) Encode(ctx context.Context, structName string, values *Record) ([]byte, error) {
	start := time.Now()

	payload, err := func() ([]byte, error) {
		spec, err := c.registry.Lookup(structName)
		if err != nil {
			return nil, err
		}
		return Encode(spec, values)
	}()

	c.observeOperation("encode", structName, time.Since(start), err, int64(len(payload)))
	if err != nil {
		c.logError(ctx, "record encode failed", err, map[string]interface{}{
			"struct": structName,
		})
		return nil, err
	}
	return payload, nil
}

// EncodeHex encodes a record and renders the canonical lowercase hex string.
func (c *Client) EncodeHex(ctx context.Context, structName string, values *Record) (string, error) {
	payload, err := c.Encode(ctx, structName, values)
	if err != nil {
		return "", err
	}
	return binconv.BytesToHex(payload), nil
}

// observeOperation safely calls the observer if it's not nil.
func (c *Client) observeOperation(operation, resource string, duration time.Duration, err error, size int64) {
	if c.observer != nil {
		c.observer.ObserveOperation(observability.OperationContext{
			Component: "codec",
			Operation: operation,
			Resource:  resource,
			Duration:  duration,
			Error:     err,
			Size:      size,
		})
	}
}

// logError logs through the optional logger.
func (c *Client) logError(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	if c.logger != nil {
		c.logger.ErrorWithContext(ctx, msg, err, fields...)
	}
}

// Compile-time interface satisfaction check.
var _ Codec = (*Client)(nil)
