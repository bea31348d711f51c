package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a new counter metric and registers it to the
// application metrics registry.
//
// Counters are cumulative metrics that only increase (e.g., total decode
// operations, rejected payloads).
//
// Example:
//
//	counter := m.CreateCounter("payloads_decoded_total", "Total decoded instrument payloads", []string{"struct", "status"})
//	counter.WithLabelValues("trigger_status", "success").Inc()
//	counter.WithLabelValues("waveform_header", "error").Inc()
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	promCounter := createCounterVec(name, help, labels)
	m.wrappedApplicationRegisterer.MustRegister(promCounter)
	return &counterVec{vec: promCounter}
}

// CreateHistogram creates a new histogram metric and registers it to the
// application metrics registry.
//
// Histograms track distributions of values (e.g., payload sizes, decode
// latencies) and automatically calculate quantiles and counts.
//
// Example:
//
//	hist := m.CreateHistogram(
//	    "payload_bytes",
//	    "Instrument payload size in bytes",
//	    []string{"struct"},
//	    []float64{8, 16, 64, 256, 1024, 4096},
//	)
//	hist.WithLabelValues("waveform_header").Observe(2048)
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	promHistogram := createHistogramVec(name, help, labels, buckets)
	m.wrappedApplicationRegisterer.MustRegister(promHistogram)
	return &histogramVec{vec: promHistogram}
}

// CreateGauge creates a new gauge metric and registers it to the
// application metrics registry.
//
// Gauges represent values that can go up or down (e.g., registered schemas,
// open instrument sessions).
//
// Example:
//
//	gauge := m.CreateGauge("instrument_sessions", "Number of open instrument sessions", []string{"bus"})
//	gauge.WithLabelValues("gpib").Set(4)
//	gauge.WithLabelValues("gpib").Inc()
//	gauge.WithLabelValues("gpib").Dec()
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	promGauge := createGaugeVec(name, help, labels)
	m.wrappedApplicationRegisterer.MustRegister(promGauge)
	return &gaugeVec{vec: promGauge}
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec for resource monitoring.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
