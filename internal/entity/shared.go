package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWordToken is the case-insensitive comparison key used for
// blacklists and deduplication.
func NormalizeWordToken(word string) string {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(norm.NFC.String(trimmed))
}
