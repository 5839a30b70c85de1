// Package http provides HTTP handlers and routing for the math REST API.
//
// This package implements all HTTP endpoints using the Gin framework.
// Endpoints that compute (conversion, formula evaluation) run through the
// service registry so they share tool metrics and tracing; endpoints that
// change the workspace go through workspace.Store.
//
// Endpoints:
//   - Health: /, /health, /metrics/json
//   - Services: /services, /services/discover, /services/execute
//   - Problems: /problems/solve, /problems/classify, /solutions/:id/reveal, /history
//   - Units: /convert, /units, /units/:category
//   - Formulas: /formulas, /formulas/evaluate, /formulas/variables, /formulas/subjects/:subject, /formulas/saved
//   - Favorites: /favorites, /favorites/:id
//   - Topics: /topics/recent
//
// Every failure has the body {"success": false, "error": "..."}. Problem
// text, names and topics pass through bluemonday's strict policy first.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, catalog, store, metrics, logger)
//	handlers.Register(router)
package http
