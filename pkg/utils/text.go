// Package utils provides shared helpers for logging and text output.
package utils

import "unicode/utf8"

// Truncate shortens s to at most maxLen bytes, cutting on a rune boundary, and appends "..."
// when anything was removed. A maxLen of 0 or less returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
