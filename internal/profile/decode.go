package profile

import "strconv"

func asString(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// asStringList keeps string elements and discards the rest. A missing or
// non-sequence value becomes an empty sequence.
func asStringList(v any) []string {
	out := []string{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// asYears coerces experience years from a number or numeric string,
// clamping negatives to zero.
func asYears(v any) float64 {
	var years float64
	switch val := v.(type) {
	case float64:
		years = val
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		years = parsed
	default:
		return 0
	}
	if years < 0 {
		return 0
	}
	return years
}
