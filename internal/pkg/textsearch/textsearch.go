// Package textsearch implements the case-insensitive matching shared by the
// rule tables and the catalog selectors
package textsearch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s in a form suitable for caseless comparison. A new Caser is
// built per call because Casers are not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Contains reports whether needle occurs in haystack ignoring case. An empty
// needle matches everything.
func Contains(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	return strings.Contains(Fold(haystack), n)
}

// AnyContains reports whether needle occurs in any of fields
func AnyContains(needle string, fields ...string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), n) {
			return true
		}
	}
	return false
}

// Equal compares a and b ignoring case and surrounding space
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
