package locales

import "strings"

// ContainsArabic reports whether s holds at least one character from the
// primary Arabic block (U+0600 through U+06FF).
func ContainsArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// ReverseRTLWords prepares Arabic text for an engine that lays glyphs out
// left to right: words are reversed so they read right to left on the page,
// joined with a double space to keep the boundaries visible. Text without
// Arabic characters passes through untouched. This is a word-order
// approximation, not bidi shaping.
func ReverseRTLWords(s string) string {
	if !ContainsArabic(s) {
		return s
	}

	words := strings.Fields(strings.TrimSpace(s))
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, "  ")
}
