// Package observability provides a unified interface for observing operations
// across the binwire packages.
//
// # Overview
//
// The observability package defines a single Observer interface that the codec
// and schema packages use to emit operation events. This allows applications to
// implement metrics, tracing, and logging in a consistent way without coupling
// the codec path to a specific backend.
//
// # Design Philosophy
//
// 1. **Optional**: binwire packages work perfectly without an observer
// 2. **Unified**: Same interface for schema registration and payload codec traffic
// 3. **Flexible**: Observer can implement metrics, tracing, logging, or all three
// 4. **Non-intrusive**: One nil check and one call per operation
//
// # Usage in binwire Packages
//
// Packages accept an optional Observer in their config:
//
//	import "github.com/aalemi-dev/binwire/observability"
//
//	type Config struct {
//	    Registry struct_registry.Registry
//
//	    // Optional observer for operation tracking
//	    Observer observability.Observer
//	}
//
// Then call the observer when operations complete:
//
//	func (c *Client) Decode(ctx context.Context, structName string, payload []byte) (*Record, error) {
//	    start := time.Now()
//	    record, err := c.decode(structName, payload)
//
//	    // Notify observer if present
//	    if c.observer != nil {
//	        c.observer.ObserveOperation(observability.OperationContext{
//	            Component: "codec",
//	            Operation: "decode",
//	            Resource:  structName,
//	            Duration:  time.Since(start),
//	            Error:     err,
//	            Size:      int64(len(payload)),
//	        })
//	    }
//
//	    return record, err
//	}
//
// # Usage in Applications
//
// Applications implement the Observer interface to handle operations. The
// metrics package ships a ready-made CodecObserver that turns these events
// into Prometheus series:
//
//	type loggingObserver struct {
//	    logger *zap.Logger
//	}
//
//	func (o *loggingObserver) ObserveOperation(ctx observability.OperationContext) {
//	    if ctx.Error != nil {
//	        o.logger.Warn("operation failed",
//	            zap.String("component", ctx.Component),
//	            zap.String("operation", ctx.Operation),
//	            zap.String("struct", ctx.Resource),
//	            zap.Error(ctx.Error),
//	        )
//	    }
//	}
//
// # FX Integration
//
// Wire the observer through dependency injection:
//
//	fx.Provide(
//	    fx.Annotate(
//	        metrics.NewCodecObserver,
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// The codec and struct_registry fx modules pick the Observer up automatically
// through their optional parameters.
//
// # OperationContext Fields
//
// The OperationContext struct describes one completed operation:
//
//   - Component: which binwire package ("codec", "struct_registry")
//   - Operation: what was done ("decode", "encode", "register", "load")
//   - Resource:  the struct name involved
//   - SubResource: field name, when an operation concerns a single field
//   - Duration:  how long it took
//   - Error:     any error that occurred
//   - Size:      payload size in bytes (or packed struct length for register)
//   - Metadata:  additional context
//
// # Examples
//
// Payload decode:
//
//	OperationContext{
//	    Component: "codec",
//	    Operation: "decode",
//	    Resource:  "trigger_status",
//	    Duration:  4 * time.Microsecond,
//	    Size:      7, // payload bytes
//	}
//
// Schema registration:
//
//	OperationContext{
//	    Component: "struct_registry",
//	    Operation: "register",
//	    Resource:  "waveform_header",
//	    Duration:  2 * time.Microsecond,
//	    Size:      24, // packed struct length
//	}
//
// # Thread Safety
//
// Observer implementations must be thread-safe. They will be called
// concurrently from multiple goroutines once decode/encode traffic starts.
package observability
