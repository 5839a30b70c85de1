// Package common holds the result and parameter helpers shared by the
// math provider's tool groups.
//
// Tool handlers never return Go errors for bad input. Instead they return
// a failed result, which the HTTP layer serializes as-is:
//
//	if !ok {
//		return common.Failure("value parameter required")
//	}
//	return common.Success(map[string]interface{}{"result": v})
//
// Parameter getters accept the number encodings produced by encoding/json
// (float64) as well as the integer types used by in-process callers.
package common
