package observability_test

import (
	"testing"
	"time"

	"github.com/aalemi-dev/binwire/observability"
)

func TestOperationContext(t *testing.T) {
	ctx := observability.OperationContext{
		Component:   "codec",
		Operation:   "decode",
		Resource:    "trigger_status",
		SubResource: "",
		Duration:    4 * time.Microsecond,
		Error:       nil,
		Size:        7,
		Metadata: map[string]interface{}{
			"fields": 3,
		},
	}

	if ctx.Component != "codec" {
		t.Errorf("expected component 'codec', got '%s'", ctx.Component)
	}

	if ctx.Operation != "decode" {
		t.Errorf("expected operation 'decode', got '%s'", ctx.Operation)
	}

	if ctx.Size != 7 {
		t.Errorf("expected size 7, got %d", ctx.Size)
	}
}

func TestNoOpObserver(t *testing.T) {
	observer := observability.NewNoOpObserver()

	// Should not panic
	observer.ObserveOperation(observability.OperationContext{
		Component: "test",
		Operation: "test",
	})
}

// Mock observer for testing
type mockObserver struct {
	called bool
	ctx    observability.OperationContext
}

func (m *mockObserver) ObserveOperation(ctx observability.OperationContext) {
	m.called = true
	m.ctx = ctx
}

func TestMockObserver(t *testing.T) {
	mock := &mockObserver{}

	ctx := observability.OperationContext{
		Component: "struct_registry",
		Operation: "register",
		Resource:  "waveform_header",
		Duration:  2 * time.Microsecond,
	}

	mock.ObserveOperation(ctx)

	if !mock.called {
		t.Error("expected observer to be called")
	}

	if mock.ctx.Resource != "waveform_header" {
		t.Errorf("expected resource 'waveform_header', got '%s'", mock.ctx.Resource)
	}
}
