package observability

import "time"

// Observer is a unified interface for observability across the binwire
// packages. It allows external code to observe schema registration and
// payload codec operations without coupling them to specific observability
// implementations (metrics, tracing, logging).
//
// This interface is optional - binwire packages work perfectly fine without
// an observer.
type Observer interface {
	// ObserveOperation is called when an operation completes.
	// It provides all context about the operation in a structured format.
	ObserveOperation(ctx OperationContext)
}

// OperationContext contains all information about a completed operation.
// It is generic enough to cover both the schema registry and the codec path
// while providing enough detail for comprehensive observability.
type OperationContext struct {
	// Component identifies which binwire package performed the operation.
	// Examples: "codec", "struct_registry"
	Component string

	// Operation describes what operation was performed.
	// Examples:
	//   Codec:    "decode", "encode"
	//   Registry: "register", "load"
	Operation string

	// Resource identifies the struct name being operated on.
	// Examples: "trigger_status", "waveform_header"
	Resource string

	// SubResource provides additional context (optional).
	// Example: the field name when an operation concerns a single field.
	SubResource string

	// Duration is how long the operation took from start to completion.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	// nil indicates successful operation.
	Error error

	// Size represents the size of data involved in the operation (optional).
	// Examples:
	//   Codec:    payload size in bytes
	//   Registry: the registered struct's packed length in bytes
	Size int64

	// Metadata provides additional operation-specific information (optional).
	// This map can contain any extra context that doesn't fit in the standard
	// fields. Example: {"fields": 12, "source": "schemas.yaml"}
	Metadata map[string]interface{}
}
