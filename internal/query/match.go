package query

import "strings"

// matchAny is the shared search predicate: case-insensitive substring over a
// fixed field set. An empty term matches everything.
func matchAny(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
