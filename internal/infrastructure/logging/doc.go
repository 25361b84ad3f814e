// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// All output goes to stderr so stdout remains available to protocol layers.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("server starting", zap.String("addr", addr))
//	logger.Error("validation failed", zap.Error(err))
package logging
