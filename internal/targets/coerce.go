// targets/coerce.go - Coercion helpers for untyped (JSON-decoded) input
package targets

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// decodeObject turns raw input into a JSON object. Anything that is not
// (or does not decode to) a non-array object reports false.
func decodeObject(raw any) (map[string]any, bool) {
	var v any
	switch t := raw.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	case string:
		if err := json.Unmarshal([]byte(t), &v); err != nil {
			return nil, false
		}
	case []byte:
		if err := json.Unmarshal(t, &v); err != nil {
			return nil, false
		}
	case json.RawMessage:
		if err := json.Unmarshal(t, &v); err != nil {
			return nil, false
		}
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, false
		}
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, false
		}
	}
	return asObject(v)
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// toNumber accepts finite numbers and numeric strings
func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	return f, IsFinite(f)
}

// truthy mirrors JSON truthiness: false, null, 0, NaN and "" are false
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	}
	return true
}

// boolOr: a present key decides by truthiness, an absent key keeps def
func boolOr(m map[string]any, key string, def bool) bool {
	v, ok := m[key]
	if !ok {
		return def
	}
	return truthy(v)
}

func numberOr(m map[string]any, key string, def float64) float64 {
	if n, ok := toNumber(m[key]); ok {
		return n
	}
	return def
}

func stringOr(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

// objectOf returns the nested object at key, or an empty one
func objectOf(m map[string]any, key string) map[string]any {
	if o, ok := asObject(m[key]); ok {
		return o
	}
	return map[string]any{}
}
