package metrics

import (
	"errors"

	"github.com/aalemi-dev/binwire/binconv"
	"github.com/aalemi-dev/binwire/codec"
	"github.com/aalemi-dev/binwire/observability"
	"github.com/aalemi-dev/binwire/struct_registry"
)

// CodecObserver turns binwire operation events into Prometheus series. It
// implements observability.Observer and is meant to be wired into the codec
// and struct_registry fx modules:
//
//	fx.Provide(
//	    fx.Annotate(
//	        metrics.NewCodecObserver,
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// Exposed series (on the application metrics endpoint):
//
//	binwire_operations_total{component,operation,struct,status}
//	binwire_operation_errors_total{component,operation,kind}
//	binwire_operation_duration_seconds{component,operation}
//	binwire_payload_bytes{component,operation}
//	binwire_registered_structs
//
// Struct names come from the schema registry, so the struct label cardinality
// is bounded by the number of registered schemas.
type CodecObserver struct {
	operations Counter
	errs       Counter
	duration   Histogram
	payload    Histogram
	registered Gauge
}

// NewCodecObserver creates a CodecObserver with its series registered on the
// collector's application registry.
func NewCodecObserver(m MetricsCollector) *CodecObserver {
	return &CodecObserver{
		operations: m.CreateCounter(
			"binwire_operations_total",
			"Total schema registry and codec operations",
			[]string{"component", "operation", "struct", "status"},
		),
		errs: m.CreateCounter(
			"binwire_operation_errors_total",
			"Total failed operations by failure kind",
			[]string{"component", "operation", "kind"},
		),
		duration: m.CreateHistogram(
			"binwire_operation_duration_seconds",
			"Operation duration in seconds",
			[]string{"component", "operation"},
			[]float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2},
		),
		payload: m.CreateHistogram(
			"binwire_payload_bytes",
			"Payload size in bytes per codec operation",
			[]string{"component", "operation"},
			[]float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 4096},
		),
		registered: m.CreateGauge(
			"binwire_registered_structs",
			"Number of registered struct layouts",
			nil,
		),
	}
}

// ObserveOperation records one completed operation.
func (o *CodecObserver) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
		o.errs.WithLabelValues(ctx.Component, ctx.Operation, failureKind(ctx.Error)).Inc()
	}

	o.operations.WithLabelValues(ctx.Component, ctx.Operation, ctx.Resource, status).Inc()
	o.duration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Size > 0 {
		o.payload.WithLabelValues(ctx.Component, ctx.Operation).Observe(float64(ctx.Size))
	}

	if ctx.Operation == "register" && ctx.Error == nil {
		o.registered.WithLabelValues().Inc()
	}
}

// failureKind maps an error to its taxonomy label. Errors outside the binwire
// taxonomy are grouped under "other".
func failureKind(err error) string {
	switch {
	case errors.Is(err, binconv.ErrInvalidHex):
		return "invalid_hex"
	case errors.Is(err, binconv.ErrOverflow):
		return "overflow"
	case errors.Is(err, codec.ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, codec.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, codec.ErrMissingField):
		return "missing_field"
	case errors.Is(err, struct_registry.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, struct_registry.ErrInvalidSpec):
		return "invalid_spec"
	case errors.Is(err, struct_registry.ErrNotFound):
		return "not_found"
	default:
		return "other"
	}
}

// Compile-time interface satisfaction check.
var _ observability.Observer = (*CodecObserver)(nil)
