// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the CLI: console encoding with
// colored levels for people, json encoding for pipelines.
//
// # Run IDs
//
// Every export run gets a run id. WithRunID attaches it to a logger so all
// lines written during one reconciliation can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Loaded membership export", zap.Int("rows", n))
package logger
