package junit

import (
	"fmt"
	"regexp"
	"strings"
)

var classnameUnsafe = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Truncate keeps the first n characters of s and notes how many were dropped
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + fmt.Sprintf("... [truncated %d chars]", len(runes)-n)
}

// Escape makes s safe for XML attribute values and character data.
// Ampersands go first so entities produced by later steps are not re-escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// SanitizeClassname replaces every character outside [A-Za-z0-9_.-] with '-'
func SanitizeClassname(s string) string {
	return classnameUnsafe.ReplaceAllString(s, "-")
}

// excerpt collapses whitespace runs to single spaces and keeps the first n characters
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > n {
		return strings.TrimSpace(string(runes[:n]))
	}
	return s
}
