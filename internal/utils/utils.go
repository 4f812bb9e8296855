package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase trims s and upper-cases the first letter of every word,
// lower-casing the rest ("lower back" -> "Lower Back").
func TitleCase(s string) string {
	// Casers keep state, so each call gets its own.
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SplitTokens splits a comma separated list into trimmed, lowercase,
// non-empty tokens.
func SplitTokens(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
