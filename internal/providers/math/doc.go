// Package math exposes the formula and unit computation core as provider
// tools.
//
// Tools are grouped by module:
//   - units: math.convert, math.units
//   - formulas: math.formula.variables, math.formula.substitute, math.formula.evaluate
//   - problems: math.classify, math.solve
//   - catalog: math.formulas.search
//
// The computation itself lives in subpackages: conversion (unit tables and
// conversion), formula (variable extraction, substitution, evaluation),
// evaluator (expression evaluation on expr-lang/expr) and solver
// (classification and step synthesis). Results always come back in the
// types.Result shape; invalid input yields Success=false, never a Go error.
//
// Example Usage:
//
//	provider := math.NewProvider(conversion.MustNewEngine(), evaluator.New(), registry,
//		math.WithMetrics(metrics), math.WithLogger(logger))
//	result, err := provider.Execute(ctx, "math.convert", map[string]interface{}{
//		"category": "length", "value": 1.0, "from": "kilometer", "to": "meter",
//	}, nil)
package math
