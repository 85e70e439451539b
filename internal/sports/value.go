package sports

import (
	"fmt"
	"strconv"
)

// The upstream provider is inconsistent about scalar types: counts
// arrive as JSON numbers on some endpoints and as strings on others.
// These helpers normalize either form.

// AsString renders a raw upstream value as a string. Floats that are
// whole numbers print without a decimal part.
func AsString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// AsInt coerces a raw upstream value to an int, defaulting to 0.
func AsInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case int64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// AsFloat coerces a raw upstream value to a float64. ok is false when
// the value is absent or not numeric.
func AsFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// StatInt reads an int field from a stat line, defaulting to 0.
func StatInt(stats map[string]interface{}, key string) int {
	return AsInt(stats[key])
}

// StatString reads a string field from a stat line, defaulting to "".
func StatString(stats map[string]interface{}, key string) string {
	v, ok := stats[key]
	if !ok || v == nil {
		return ""
	}
	return AsString(v)
}
