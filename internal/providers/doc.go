// Package providers holds the service providers registered with
// internal/service.
//
// Service providers expose capabilities through a standardized tool-based
// interface.
//
// Available Providers:
//   - Math: Unit conversion, formula evaluation, problem classification and step synthesis
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	provider := math.NewProvider(engine, evaluator.New(), catalog)
//	result, err := provider.Execute(ctx, "math.convert", params, nil)
package providers
