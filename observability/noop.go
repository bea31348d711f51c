package observability

// NoOpObserver is a no-op implementation of Observer.
// It discards every operation event, which is useful in tests and as an
// explicit default when no metrics backend is wired.
type NoOpObserver struct{}

// ObserveOperation does nothing (no-op).
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {
	// No-op
}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}
