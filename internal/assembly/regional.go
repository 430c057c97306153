package assembly

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/eslsoft/vocdeck/internal/entity"
)

const definitionPreview = 80

type posRule struct {
	pattern  *regexp.Regexp
	wordType entity.WordType
}

// posRules map free-text dictionary labels ("n. m.", "v. tr.", "loc. adv.")
// to word types. Common gender is tested before the single genders so
// "n. m. ou f." is not read as masculine.
var posRules = []posRule{
	{regexp.MustCompile(`\bn\.?\s*m\.?\s*(?:/|ou)\s*f\.?`), entity.WordTypeCommonGender},
	{regexp.MustCompile(`\bn\.?\s*m\b`), entity.WordTypeMasculine},
	{regexp.MustCompile(`\bn\.?\s*f\b`), entity.WordTypeFeminine},
	{regexp.MustCompile(`^nom\b[^mf]*$`), entity.WordTypeCommonGender},
	{regexp.MustCompile(`(?:^v|\bv[ti]?\.?(?:\s|$))`), entity.WordTypeVerb},
	{regexp.MustCompile(`\badj\b`), entity.WordTypeAdjective},
	{regexp.MustCompile(`\badv\b`), entity.WordTypeAdverb},
	{regexp.MustCompile(`\bloc\b`), entity.WordTypeLocution},
	{regexp.MustCompile(`\binterj\b`), entity.WordTypeInterjection},
	{regexp.MustCompile(`\bexpr\b`), entity.WordTypeExpression},
}

// PosToWordType maps a regional dictionary label to a card word type.
// Unrecognized labels pass through lower-cased; an empty label yields "?".
func PosToWordType(pos string) entity.WordType {
	pos = strings.ToLower(strings.TrimSpace(pos))
	for _, r := range posRules {
		if r.pattern.MatchString(pos) {
			return r.wordType
		}
	}
	if pos == "" {
		return "?"
	}
	return entity.WordType(pos)
}

var (
	separatorRun   = regexp.MustCompile(`[\s\-–—]+`)
	leadingArticle = regexp.MustCompile(`^(?:le |la |l'|les |un |une |des )`)
)

const trailingPunctuation = ".,;:!?"

// NormalizeRegionalWord is the deduplication key of a regional word: NFC,
// lower-cased, quotes stripped, separators collapsed to one space.
func NormalizeRegionalWord(word string) string {
	word = strings.Trim(strings.TrimSpace(word), `"'`)
	word = strings.ToLower(norm.NFC.String(word))
	word = separatorRun.ReplaceAllString(word, " ")
	return strings.TrimRight(word, trailingPunctuation)
}

// lookupKey strips a leading article before the lexicon frequency lookup.
func lookupKey(word string) string {
	word = strings.ToLower(norm.NFC.String(strings.TrimSpace(word)))
	word = leadingArticle.ReplaceAllString(word, "")
	return strings.TrimRight(word, trailingPunctuation)
}

// regionalFrequency looks the word up, then its first word for multi-word entries.
func regionalFrequency(word string, index map[string]float64) (float64, bool) {
	key := lookupKey(word)
	if freq, ok := index[key]; ok && freq > 0 {
		return freq, true
	}
	if first, _, found := strings.Cut(key, " "); found {
		if freq, ok := index[first]; ok && freq > 0 {
			return freq, true
		}
	}
	return 0, false
}

// regionalNotes renders "translation | definition", truncating the definition.
func regionalNotes(translation, definition string) string {
	translation = strings.TrimSpace(translation)
	definition = strings.TrimSpace(definition)
	if runes := []rune(definition); len(runes) > definitionPreview {
		definition = string(runes[:definitionPreview]) + "..."
	}
	switch {
	case translation != "" && definition != "":
		return translation + " | " + definition
	case translation != "":
		return translation
	default:
		return definition
	}
}
