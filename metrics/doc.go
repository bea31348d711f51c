// Package metrics provides Prometheus-based monitoring and metrics collection
// for applications built on the binwire packages.
//
// The metrics package is designed to provide a standardized observability
// approach with dual HTTP endpoints for system-level and application-level
// metrics, full control over metric definitions, and integration with the Fx
// dependency injection framework.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides both *Metrics and MetricsCollector interface for dependency injection
//
// It also ships CodecObserver, an observability.Observer implementation that
// turns schema registry and codec operation events into Prometheus series.
//
// # Dual Endpoint Design
//
// The package provides two separate Prometheus endpoints:
//
// 1. System Metrics Endpoint (default: :9090)
//   - Go runtime metrics (goroutines, memory, GC stats)
//   - Process metrics (CPU, file descriptors, memory)
//   - Build info metrics
//   - Automatically registered, no user action required
//
// 2. Application Metrics Endpoint (default: :9091)
//   - User-defined custom metrics only
//   - Full control over metric names, types, and labels
//   - No default metrics - clean slate for application observability
//
// This separation allows:
//   - Different scrape configurations (e.g., system metrics every 15s, app metrics every 5s)
//   - Different access controls (e.g., system metrics internal-only)
//   - Cleaner organization and cardinality management
//
// # Core Features
//
//   - Two configurable /metrics endpoints for Prometheus scraping
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Counter, Gauge, and Histogram metric types with custom labels
//   - User-defined metrics with custom labels
//   - Automatic service label wrapping for multi-service observability
//   - Ready-made CodecObserver for binwire operation events
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	import "github.com/aalemi-dev/binwire/metrics"
//
//	// Create metrics servers (returns concrete *Metrics)
//	cfg := metrics.Config{
//		ServiceName: "instrument-gateway",
//	}
//
//	m := metrics.NewMetrics(cfg)
//
//	// Start both servers
//	go m.SystemServer.ListenAndServe()
//	go m.ApplicationServer.ListenAndServe()
//
//	// Create custom application metrics
//	frameCounter := m.CreateCounter(
//		"frames_total",
//		"Total instrument frames received",
//		[]string{"struct", "status"},
//	)
//	frameCounter.WithLabelValues("trigger_status", "ok").Inc()
//
//	// Access metrics:
//	// - System: http://localhost:9090/metrics
//	// - Application: http://localhost:9091/metrics
//
// # Observing the Codec
//
// To get decode/encode metrics without writing any instrumentation, provide
// CodecObserver as the observability.Observer; the codec and struct_registry
// fx modules pick it up automatically:
//
//	import (
//		"go.uber.org/fx"
//
//		"github.com/aalemi-dev/binwire/codec"
//		"github.com/aalemi-dev/binwire/metrics"
//		"github.com/aalemi-dev/binwire/observability"
//		"github.com/aalemi-dev/binwire/struct_registry"
//	)
//
//	app := fx.New(
//		metrics.FXModule,
//		fx.Provide(
//			func() metrics.Config {
//				return metrics.Config{ServiceName: "instrument-gateway"}
//			},
//			fx.Annotate(
//				metrics.NewCodecObserver,
//				fx.As(new(observability.Observer)),
//			),
//		),
//		struct_registry.FXModule,
//		codec.FXModule,
//	)
//
// Every decode, encode, and register then produces:
//
//	binwire_operations_total{component,operation,struct,status}
//	binwire_operation_errors_total{component,operation,kind}
//	binwire_operation_duration_seconds{component,operation}
//	binwire_payload_bytes{component,operation}
//
// The error kind label follows the binwire failure taxonomy (invalid_hex,
// overflow, length_mismatch, type_mismatch, missing_field, duplicate_name,
// invalid_spec, not_found).
//
// # Configuration
//
// The metrics servers can be configured via environment variables:
//
//	METRICS_SYSTEM_ADDRESS=:9090             # System metrics endpoint address
//	METRICS_APPLICATION_ADDRESS=:9091        # Application metrics endpoint address
//	METRICS_SERVICE_NAME=instrument-gateway  # Adds service label to all metrics
//
// Set an address to an empty string pointer to disable that endpoint:
//
//	cfg := metrics.Config{
//		SystemMetricsAddress:      metrics.Ptr(""), // Disable system metrics
//		ApplicationMetricsAddress: nil,             // Use default :9091
//		ServiceName:               "instrument-gateway",
//	}
//
// # Metric Types
//
// Counter - cumulative metrics that only increase. Use for totals:
//
//	decodeErrors := m.CreateCounter(
//		"decode_errors_total",
//		"Total payload decode failures",
//		[]string{"struct", "kind"},
//	)
//	decodeErrors.WithLabelValues("trigger_status", "length_mismatch").Inc()
//
// Gauge - values that can go up or down. Use for current state:
//
//	openSessions := m.CreateGauge(
//		"instrument_sessions_open",
//		"Number of open instrument sessions",
//		[]string{"transport"},
//	)
//	openSessions.WithLabelValues("tcp").Inc()
//	openSessions.WithLabelValues("tcp").Dec()
//
// Histogram - distribution tracking with server-side quantiles. Use for
// latency and sizes:
//
//	decodeDuration := m.CreateHistogram(
//		"decode_duration_seconds",
//		"Payload decode duration in seconds",
//		[]string{"struct"},
//		[]float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2},
//	)
//	decodeDuration.WithLabelValues("waveform_header").Observe(seconds)
//
// # Performance Considerations
//
// 1. Label Cardinality:
//   - Keep label values bounded (struct names are fine, payload contents are not)
//   - High cardinality can cause memory issues
//
// 2. Metric Updates:
//   - All Prometheus metric operations are thread-safe
//   - Use histograms for latency tracking; they aggregate across instances
//
// # Thread Safety
//
// All methods on the Metrics struct and all Prometheus collectors are safe for
// concurrent use by multiple goroutines. No additional synchronization is needed.
//
// # Testing
//
// For unit tests, you can create a metrics instance without starting the servers:
//
//	func TestDecodePath(t *testing.T) {
//		empty := ""
//		port := ":0"
//		m := metrics.NewMetrics(metrics.Config{
//			SystemMetricsAddress:      &empty, // Disable
//			ApplicationMetricsAddress: &port,  // Random port
//			ServiceName:               "test",
//		})
//
//		observer := metrics.NewCodecObserver(m)
//		// drive codec traffic through the observer and assert with
//		// prometheus/testutil against m.ApplicationRegistry
//	}
package metrics
