package assembly

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eslsoft/vocdeck/internal/entity"
)

// elisionInitials are the letters that take the elided article l'. Mute and
// aspirated h are not distinguished.
const elisionInitials = "aeiouhéèêëàâäùûüîïôœæ"

// StartsWithVowel reports whether the word takes the elided article.
func StartsWithVowel(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return false
	}
	return strings.ContainsRune(elisionInitials, unicode.ToLower(r))
}

// FormatNoun prefixes a noun with its definite article. Elided forms carry
// the gender in parentheses since the article no longer shows it.
func FormatNoun(word string, wt entity.WordType) string {
	word = strings.TrimSpace(word)
	var full string
	switch wt {
	case entity.WordTypeMasculine:
		full = "le"
	case entity.WordTypeFeminine:
		full = "la"
	case entity.WordTypeCommonGender:
		full = "le/la"
	default:
		return word
	}
	if StartsWithVowel(word) {
		return "l'" + word + " (" + string(wt) + ")"
	}
	return full + " " + word
}
