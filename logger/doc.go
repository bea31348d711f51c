// Package logger provides structured logging for the binwire packages and
// the applications built on them.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing
// integration, and flexible output formatting. It integrates with the fx
// dependency injection framework for easy incorporation into applications.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FXModule: Provides both *LoggerClient and Logger interface for dependency injection
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warning, Error, Fatal)
//   - Context-aware logging for request tracing
//   - Distributed tracing integration with OpenTelemetry
//   - Automatic trace and span ID extraction from context
//   - JSON output format with ISO8601 timestamps
//   - Output directed to stderr
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/aalemi-dev/binwire/logger"
//
//	// Create a new logger (returns concrete *LoggerClient)
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "instrument-gateway",
//	})
//
//	// Log with structured fields (without context)
//	log.Info("schema registered", nil, map[string]interface{}{
//		"struct":       "trigger_status",
//		"total_length": 7,
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id)
//	log.ErrorWithContext(ctx, "payload decode failed", err, map[string]interface{}{
//		"struct":      "trigger_status",
//		"payload_hex": payload,
//	})
//
// # FX Module Integration
//
// For applications using Uber's fx, use the FXModule which provides both the
// concrete type and interface. You must supply a logger.Config to the
// dependency injection container:
//
//	import (
//		"github.com/aalemi-dev/binwire/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				Level:       logger.Info,
//				ServiceName: "instrument-gateway",
//			}
//		}),
//		logger.FXModule,
//		struct_registry.FXModule,
//		codec.FXModule,
//	)
//
// The codec and struct_registry packages consume the Logger interface through
// their optional fx parameters, so adding this module is all it takes to make
// their failures visible.
package logger
