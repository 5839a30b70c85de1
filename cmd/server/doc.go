// Package main is the entry point for the math core server.
//
// The server exposes unit conversion, formula evaluation, problem
// classification with step-by-step solutions, and a per-process workspace
// of history, favorites and saved formulas over a JSON REST API.
//
// Configuration:
//   - Environment variables (12-factor), see internal/infrastructure/config
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -catalog ./formulas.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
