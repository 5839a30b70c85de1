/*
Package monitoring provides Prometheus metrics for the math service.

# Overview

Metrics track HTTP traffic, provider tool executions, math outcomes and
workspace sizes. A small JSON snapshot mirrors the headline counters for
the /metrics/json endpoint.

# Features

- HTTP request metrics (latency, throughput, size), labelled by route template
- Tool execution metrics (duration, status)
- Conversions by category and outcome
- Evaluations by source (formula, problem) and outcome
- Solutions by category and hint mode
- History, favorite and saved formula gauges
- Uptime

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time operations
	timer := monitoring.NewTimer(metrics, "math", "math.convert")
	// ... perform operation ...
	timer.Stop("success")

Tests should use NewMetricsWithRegistry with a fresh prometheus.Registry,
since registering twice on the default registry panics.

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
