// Package params reads loosely typed host data (decoded JSON, form values)
// with per-key defaults.
package params

// Float returns m[key] as float64. JSON numbers arrive as float64, Go
// callers often pass int; anything else yields def.
func Float(m map[string]any, key string, def float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// Int returns m[key] as int, truncating floats
func Int(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	}
	return def
}

// Bool returns m[key] as bool. Numbers are treated as truthy when non-zero,
// matching hosts that send won=1.
func Bool(m map[string]any, key string, def bool) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return def
}

// String returns m[key] as string
func String(m map[string]any, key string, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}
