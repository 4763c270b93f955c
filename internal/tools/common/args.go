package common

import (
	"fmt"
	"strconv"
)

// StringArg extracts a string argument, returning fallback when the argument
// is absent or not a string.
func StringArg(args map[string]interface{}, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// BoolArg extracts a boolean argument, returning fallback when the argument
// is absent or not a boolean.
func BoolArg(args map[string]interface{}, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}

// Int64Arg extracts an integer argument. JSON numbers arrive as float64;
// string digits are accepted too since some clients stringify IDs.
func Int64Arg(args map[string]interface{}, key string) (int64, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}

	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer: %w", key, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}

// StringSliceArg extracts a string-array argument. A bare string is treated
// as a single-element slice. Absent arguments yield nil.
func StringSliceArg(args map[string]interface{}, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}

	switch s := v.(type) {
	case string:
		if s == "" {
			return nil, nil
		}
		return []string{s}, nil
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must contain only strings", key)
			}
			out = append(out, str)
		}
		return out, nil
	case []string:
		return s, nil
	default:
		return nil, fmt.Errorf("%s must be a string or array of strings", key)
	}
}
