package util

import "strings"

// NormalizeQuery prepares free text for the upstream: trimmed and
// upper-cased, the form the upstream stores station names in.
func NormalizeQuery(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// WordHasPrefix reports whether any word of text starts with prefix.
// Words are split on whitespace and on hyphens, so "пет" matches
// "САНКТ-ПЕТЕРБУРГ-ГЛАВН". Comparison is case-insensitive.
func WordHasPrefix(text string, prefix string) bool {
	text = NormalizeQuery(text)
	prefix = NormalizeQuery(prefix)

	if text == "" || prefix == "" {
		return false
	}

	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}

	for _, word := range strings.Split(text, "-") {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}

	return false
}

// NormalizeMessage cleans an upstream error message: trimmed,
// lower-cased, trailing full stop removed.
func NormalizeMessage(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.TrimSuffix(s, ".")
}
