package models

import (
	"encoding/json"
	"strconv"
)

// NormalizeConfig converts a raw config document into a flat string map.
// Numbers and booleans are stringified, null and absent values become "".
// The function is idempotent: normalizing an already-normalized map changes
// nothing.
func NormalizeConfig(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = stringify(value)
	}
	return out
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		// JSON numbers decode as float64; keep integral values short.
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		// Composite values (arrays, objects) keep their JSON form.
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
