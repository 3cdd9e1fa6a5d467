package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" or an empty pattern match
// everything, a trailing "*" matches by prefix, otherwise names must be equal.
// Comparison ignores case.
func Match(pattern, name string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	pattern = strings.ToLower(pattern)
	name = strings.ToLower(name)
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return pattern == name
}

// Filter returns the names matching pattern, preserving order.
func Filter(pattern string, names []string) []string {
	var result []string
	for _, name := range names {
		if Match(pattern, name) {
			result = append(result, name)
		}
	}
	return result
}
