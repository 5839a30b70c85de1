package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Failuref creates a failed result from a format string
func Failuref(format string, args ...interface{}) (*types.Result, error) {
	return Failure(fmt.Sprintf(format, args...))
}

// GetNumber extracts float64 from params. Numeric strings are accepted.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// GetStringMap extracts a map of strings from params
func GetStringMap(params map[string]interface{}, key string) (map[string]string, bool) {
	return StringMap(params[key])
}

// StringMap converts a decoded JSON object to strings. Numbers are
// formatted so that {"a": 2} and {"a": "2"} bind the same way.
func StringMap(value interface{}) (map[string]string, bool) {
	switch m := value.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	case map[string]interface{}:
		out := make(map[string]string, len(m))
		for k, v := range m {
			switch val := v.(type) {
			case string:
				out[k] = val
			case float64:
				out[k] = strconv.FormatFloat(val, 'f', -1, 64)
			case int:
				out[k] = strconv.Itoa(val)
			case int64:
				out[k] = strconv.FormatInt(val, 10)
			default:
				return nil, false
			}
		}
		return out, true
	default:
		return nil, false
	}
}
