// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Components take a *zap.Logger obtained from Logger.Component so every
// line carries the component name.
//
// Example Usage:
//
//	logger := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
//	logger.Info("Server starting", zap.String("port", "8000"))
//	store := workspace.New(synth, logger.Component("workspace"), metrics)
package logging
