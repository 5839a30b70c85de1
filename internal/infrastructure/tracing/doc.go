/*
Package tracing provides lightweight request tracing.

# Overview

Each HTTP request gets a span. Spans carry a trace id that callers can
supply through the X-Trace-ID header so a UI session can be followed
across requests. Finished spans are written to the zap logger by a
background collector.

# Usage

	tracer := tracing.New("math", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	// Child span inside a handler
	span, ctx := tracer.StartSpan(ctx, "math.solve")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Trace Format

- X-Trace-ID: UUID shared by every span of one request flow
- X-Span-ID: prefixed ULID of the current operation
*/
package tracing
