package internal

import (
	"net/url"
	"strings"
)

// SanitizeInput prepares user supplied text for prompting.
// Surrounding whitespace is removed and embedded line breaks or tabs are
// replaced with single spaces so a pasted word cannot break a prompt template.
func SanitizeInput(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if isControlSpace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CambridgeURL returns the Cambridge Dictionary page of an English word
func CambridgeURL(word string) string {
	return "https://dictionary.cambridge.org/dictionary/english/" +
		url.PathEscape(strings.ToLower(strings.TrimSpace(word)))
}

// isControlSpace reports whitespace other than a plain space
func isControlSpace(r rune) bool {
	return r == '\n' || r == '\r' || r == '\t' || r == '\v' || r == '\f'
}
