package coverage

import "strings"

// hasTextValue reports whether a decoded JSON/YAML value carries any
// non-whitespace text: a trimmed non-empty string, or a list/map with at
// least one such value anywhere inside it. Numbers, booleans and nulls
// never count as text.
func hasTextValue(value any) bool {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		for _, item := range v {
			if hasTextValue(item) {
				return true
			}
		}
		return false
	case map[string]any:
		for _, item := range v {
			if hasTextValue(item) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// isTruthy mirrors how doclet flags such as "ignore" and "undocumented"
// are evaluated: true, a non-empty string, or a non-zero number all count
// as set.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return false
	}
}
