// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the CLI. Console encoding with colored levels
// is the default; json is available for log shipping.
//
// # Run Awareness
//
// Every provisioning run gets a run id. WithRunID attaches it to the logger so that all
// lines of one run, and its archived report, can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Created order", zap.String("name", name))
package logger
