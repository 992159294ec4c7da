// Package textx holds text normalization helpers shared by the extraction
// and upload adapters.
package textx

import "strings"

// keepRune maps control runes other than tab, newline and carriage return
// to -1 so strings.Map drops them.
func keepRune(r rune) rune {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return r
	case r < 32 || r == 127:
		return -1
	}
	return r
}

// SanitizeText drops the control characters that extracted document text
// tends to carry (NUL bytes chief among them, which break JSON encoding and
// prompt assembly downstream) and trims surrounding whitespace. Clean input
// is returned without reallocation.
func SanitizeText(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return keepRune(r) < 0 }) {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Map(keepRune, s))
}
