package metrics_test

import (
	"testing"

	"github.com/aalemi-dev/binwire/metrics"
)

// newAppMetrics returns a Metrics with only the application endpoint active.
func newAppMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	empty := ""
	port := ":0"
	return metrics.NewMetrics(metrics.Config{
		ServiceName:               t.Name(),
		SystemMetricsAddress:      &empty,
		ApplicationMetricsAddress: &port,
	})
}

// --- Counter ---

func TestCounter_IncAndAdd_NoLabels(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	c := m.CreateCounter("counter_no_labels", "help", []string{})
	c.Inc()
	c.Add(3)
}

func TestCounter_WithLabelValues_ThenInc(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	c := m.CreateCounter("counter_labels", "help", []string{"struct"})
	labeled := c.WithLabelValues("trigger_status")
	labeled.Inc()
	labeled.Add(2)
}

func TestCounter_WithLabelValues_ChainedWithLabelValues(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	c := m.CreateCounter("counter_chained", "help", []string{"struct"})
	// Calling WithLabelValues on an already-labeled counter returns self
	labeled := c.WithLabelValues("trigger_status")
	_ = labeled.WithLabelValues("ignored")
}

// --- Gauge ---

func TestGauge_AllMethods_NoLabels(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	g := m.CreateGauge("gauge_no_labels", "help", []string{})
	g.Set(10)
	g.Inc()
	g.Dec()
	g.Add(5)
	g.Sub(2)
	g.SetToCurrentTime()
}

func TestGauge_AllMethods_WithLabels(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	g := m.CreateGauge("gauge_labels", "help", []string{"bus"})
	labeled := g.WithLabelValues("gpib")
	labeled.Set(100)
	labeled.Inc()
	labeled.Dec()
	labeled.Add(10)
	labeled.Sub(3)
	labeled.SetToCurrentTime()
}

func TestGauge_WithLabelValues_ChainedWithLabelValues(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	g := m.CreateGauge("gauge_chained", "help", []string{"bus"})
	labeled := g.WithLabelValues("gpib")
	// Calling WithLabelValues on an already-labeled gauge returns self
	_ = labeled.WithLabelValues("ignored")
}

// --- Histogram ---

func TestHistogram_Observe_NoLabels(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	h := m.CreateHistogram("hist_no_labels", "help", []string{}, []float64{0.1, 0.5, 1.0})
	h.Observe(0.3)
}

func TestHistogram_Observe_WithLabels(t *testing.T) {
	t.Parallel()
	m := newAppMetrics(t)
	h := m.CreateHistogram("hist_labels", "help", []string{"struct"}, []float64{8, 64, 1024})
	h.WithLabelValues("waveform_header").Observe(16)
	h.WithLabelValues("waveform_header").Observe(512)
}

// --- Default addresses ---

func TestNewMetrics_DefaultAddresses(t *testing.T) {
	t.Parallel()
	m := metrics.NewMetrics(metrics.Config{ServiceName: "defaults"})
	if m.SystemServer == nil {
		t.Error("expected SystemServer with default address")
	}
	if m.ApplicationServer == nil {
		t.Error("expected ApplicationServer with default address")
	}
	// Close immediately to free ports
	_ = m.SystemServer.Close()
	_ = m.ApplicationServer.Close()
}
