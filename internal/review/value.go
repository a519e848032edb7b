package review

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// cloneValue returns a structurally independent copy of a JSON-shaped value.
// Numbers are normalized to float64 so that values decoded from JSON and
// values built in Go compare equal.
func cloneValue(v any) any {
	switch t := v.(type) {
	case nil, string, bool, float64:
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	case *Record:
		return t.toMap()
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		// Anything else is reduced to its JSON form.
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		var out any
		if err := json.Unmarshal(b, &out); err != nil {
			return string(b)
		}
		return out
	}
}

// valuesEqual reports deep equality of two JSON-shaped values. Object keys
// are compared without regard to order.
func valuesEqual(a, b any) bool {
	a, b = cloneScalar(a), cloneScalar(b)
	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, inner := range av {
			other, ok := bv[k]
			if !ok || !valuesEqual(inner, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// cloneScalar normalizes top-level values without copying containers that
// are already in canonical form.
func cloneScalar(v any) any {
	switch v.(type) {
	case nil, string, bool, float64, map[string]any, []any:
		return v
	default:
		return cloneValue(v)
	}
}

func isNumber(v any) bool {
	_, ok := cloneScalar(v).(float64)
	return ok
}

// coerce converts raw reviewer input to the type of the original value.
// Empty input always maps to nil.
func coerce(original any, raw string) (any, error) {
	switch cloneScalar(original).(type) {
	case float64:
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, raw)
		}
		return f, nil
	case bool:
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, raw)
		}
		return b, nil
	case map[string]any, []any:
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("%w: %q is not valid JSON", ErrInvalidValue, raw)
		}
		return v, nil
	default:
		if raw == "" {
			return nil, nil
		}
		return raw, nil
	}
}
