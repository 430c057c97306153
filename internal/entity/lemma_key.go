package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LemmaKey identifies a lemma group. Always build it with NewLemmaKey so
// producers and consumers normalize identically.
type LemmaKey struct {
	Lemma    string
	Category Category
}

// NewLemmaKey normalizes the lemma (NFC, trimmed, compound key reduced to its
// primary part) and pairs it with the category.
func NewLemmaKey(lemma string, category Category) LemmaKey {
	return LemmaKey{Lemma: NormalizeLemma(lemma), Category: category}
}

func (k LemmaKey) String() string {
	return k.Lemma + "/" + string(k.Category)
}

// NormalizeLemma applies NFC and maps multi-part keys such as "mou,mol" to "mou".
func NormalizeLemma(lemma string) string {
	lemma = norm.NFC.String(strings.TrimSpace(lemma))
	if idx := strings.Index(lemma, ","); idx > 0 {
		lemma = strings.TrimSpace(lemma[:idx])
	}
	return lemma
}

var liaisonVariants = map[string]struct{}{
	"bel":    {},
	"vieil":  {},
	"nouvel": {},
	"fol":    {},
	"mol":    {},
}

// IsLiaisonVariant reports whether the lemma is a pre-vocalic spelling of
// another adjective (bel for beau) and should not form its own group.
func IsLiaisonVariant(lemma string, category Category) bool {
	if category != CategoryAdjective {
		return false
	}
	_, ok := liaisonVariants[NormalizeLemma(lemma)]
	return ok
}
