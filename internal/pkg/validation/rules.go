package validation

import (
	"strconv"
	"strings"
)

// AnyBlank reports whether any value is empty after trimming whitespace
func AnyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// ParseCount parses a form value holding a non-negative integer that fits a
// Postgres INTEGER column
func ParseCount(raw string) (int, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}
