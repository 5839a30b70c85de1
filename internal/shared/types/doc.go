// Package types provides shared data structures for the backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result (success and failure share one shape)
//
// Example Usage:
//
//	result, err := provider.Execute(ctx, "math.convert", map[string]interface{}{
//	    "category": "length",
//	    "value":    "1",
//	    "from":     "mile",
//	    "to":       "kilometer",
//	}, nil)
package types
