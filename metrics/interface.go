package metrics

// MetricsCollector provides an interface for collecting and exposing application metrics.
// It abstracts metric operations with support for counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type and does not expose any
// Prometheus-specific types, allowing for potential alternative implementations or testing mocks.
//
// All metrics created through this interface are registered to the application metrics
// registry and exposed via the application metrics endpoint (default: :9091).
type MetricsCollector interface {
	// CreateCounter creates a new counter metric and registers it to the
	// application metrics registry.
	//
	// Counters are cumulative metrics that only increase over time (e.g., total
	// decode operations). Use WithLabelValues to set specific label values
	// before incrementing.
	//
	// Example:
	//   counter := m.CreateCounter("payloads_decoded_total", "Total decoded payloads", []string{"struct", "status"})
	//   counter.WithLabelValues("trigger_status", "success").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates a new histogram metric and registers it to the
	// application metrics registry.
	//
	// Histograms track distributions of values (e.g., decode durations, payload
	// sizes) and automatically calculate quantiles and counts across
	// configurable buckets.
	//
	// Example:
	//   hist := m.CreateHistogram("decode_duration_seconds", "Decode duration", []string{"struct"}, []float64{.0001, .001, .01, .1, 1})
	//   hist.WithLabelValues("waveform_header").Observe(0.0004)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge creates a new gauge metric and registers it to the
	// application metrics registry.
	//
	// Gauges represent values that can go up or down (e.g., open instrument
	// sessions) or settle at a level (e.g., registered schemas). Use Set, Inc,
	// Dec, Add, or Sub to modify gauge values.
	//
	// Example:
	//   gauge := m.CreateGauge("registered_structs", "Number of registered struct layouts", nil)
	//   gauge.WithLabelValues().Set(12)
	CreateGauge(name, help string, labels []string) Gauge
}
