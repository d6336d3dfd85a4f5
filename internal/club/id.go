package club

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizeID converts any identity value the outer layers hand us into the
// single canonical string form used for comparisons. Numeric ids from JSON
// payloads (float64, json.Number) and string ids must compare equal when they
// name the same entity.
func NormalizeID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case json.Number:
		return id.String()
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case float64:
		// JSON decodes numbers to float64. Integral values keep their
		// integer rendering so "7" and 7 are the same id.
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", id))
	}
}

// NormalizeScore converts a score value from an untyped payload into a
// non-negative int. Numeric strings are parsed; anything non-numeric
// coerces to 0, as does a negative value.
func NormalizeScore(v any) int {
	var n int
	switch s := v.(type) {
	case nil:
		return 0
	case int:
		n = s
	case int64:
		n = int(s)
	case float64:
		n = int(s)
	case json.Number:
		f, err := s.Float64()
		if err != nil {
			return 0
		}
		n = int(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		n = int(f)
	default:
		return 0
	}
	return max(0, n)
}
