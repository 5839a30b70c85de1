// Package service provides the registry of tool providers.
//
// The registry maps service IDs to providers and routes tool executions by
// the tool ID prefix ("math.convert" runs on the "math" service).
//
// Discovery scores each service against free text:
//   - Service name or ID mentioned
//   - Description words mentioned
//   - Capabilities and tool names mentioned
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(mathProvider)
//	services := registry.Discover("convert units", 5)
//	result, err := registry.Execute(ctx, "math.convert", params, nil)
package service
