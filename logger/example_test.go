package logger_test

import (
	"context"
	"errors"

	"github.com/aalemi-dev/binwire/logger"
)

func ExampleNewLoggerClient() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "instrument-gateway",
	})

	log.Info("service started", nil)
}

func ExampleLoggerClient_Info() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "instrument-gateway",
	})

	log.Info("schema registered", nil, map[string]interface{}{
		"struct":       "trigger_status",
		"total_length": 7,
	})
}

func ExampleLoggerClient_Error() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "instrument-gateway",
	})

	err := errors.New("payload length does not match struct length")
	log.Error("payload decode failed", err, map[string]interface{}{
		"struct":        "trigger_status",
		"payload_bytes": 6,
	})
}

func ExampleLoggerClient_Debug() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Debug,
		ServiceName: "instrument-gateway",
	})

	log.Debug("decoding payload", nil, map[string]interface{}{
		"struct":        "waveform_header",
		"payload_bytes": 24,
	})
}

func ExampleLoggerClient_InfoWithContext() {
	log := logger.NewLoggerClient(logger.Config{
		Level:         logger.Info,
		ServiceName:   "instrument-gateway",
		EnableTracing: true,
	})

	ctx := context.Background()

	// When an active OpenTelemetry span is present in ctx,
	// trace_id and span_id are automatically attached to the log entry.
	log.InfoWithContext(ctx, "handling instrument frame", nil, map[string]interface{}{
		"struct": "trigger_status",
	})
}

func ExampleLoggerClient_ErrorWithContext() {
	log := logger.NewLoggerClient(logger.Config{
		Level:         logger.Info,
		ServiceName:   "instrument-gateway",
		EnableTracing: true,
	})

	ctx := context.Background()
	err := errors.New("hex payload is not valid")

	log.ErrorWithContext(ctx, "frame rejected", err, map[string]interface{}{
		"struct": "trigger_status",
	})
}

func Example_callerSkip() {
	// When wrapping the logger in your own type, increase CallerSkip
	// so the reported caller points to your acquisition logic, not the wrapper.
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "instrument-gateway",
		CallerSkip:  2,
	})

	log.Info("called from wrapper", nil)
}
