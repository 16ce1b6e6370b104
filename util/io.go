package util

import "strings"

// ChompLine strips a single trailing "\n" or "\r\n" from a raw line,
// leaving any other whitespace in place.
func ChompLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// FirstRune returns the first character of s, or def when s is empty.
func FirstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}
