package classifier

import "strings"

// SuffixRule predicts a feminine form by replacing a masculine suffix.
type SuffixRule struct {
	Masc string
	Fem  string
	Name string
}

func rule(masc, fem string) SuffixRule {
	return SuffixRule{Masc: masc, Fem: fem, Name: "-" + masc + " → -" + fem}
}

// Apply returns the predicted feminine, or false when the masculine suffix does not match.
func (r SuffixRule) Apply(masc string) (string, bool) {
	if !strings.HasSuffix(masc, r.Masc) {
		return "", false
	}
	return strings.TrimSuffix(masc, r.Masc) + r.Fem, true
}

// Matches reports whether the rule turns masc into fem exactly.
func (r SuffixRule) Matches(masc, fem string) bool {
	predicted, ok := r.Apply(masc)
	return ok && predicted == fem
}

// AdjectiveRules are tried in order; specific suffixes precede the broader
// ones they would otherwise be shadowed by (-teur before -eur, -if before -f).
var AdjectiveRules = []SuffixRule{
	rule("eux", "euse"),
	rule("if", "ive"),
	rule("teur", "trice"),
	rule("er", "ère"),
	rule("eur", "euse"),
	rule("et", "ète"),
	rule("f", "ve"),
	rule("eau", "elle"),
	rule("c", "che"),
	rule("c", "que"),
	rule("gu", "guë"),
	{Masc: "gu", Fem: "gue", Name: "-gu → -guë"},
	rule("ou", "olle"),
	rule("in", "igne"),
	rule("x", "se"),
	rule("ong", "ongue"),
}

// ProfessionRules extend the adjective rules with the suffixes typical of
// occupational noun pairs.
var ProfessionRules = append([]SuffixRule{
	rule("teur", "trice"),
	rule("eur", "euse"),
	rule("ier", "ière"),
	rule("ien", "ienne"),
	rule("er", "ère"),
	rule("ant", "ante"),
}, AdjectiveRules...)

// professionSuffixes mark masculine nouns that usually have a feminine counterpart.
var professionSuffixes = []string{"teur", "eur", "ier", "ien", "er", "ant", "iste"}

func firstMatch(rules []SuffixRule, masc, fem string) (SuffixRule, bool) {
	for _, r := range rules {
		if r.Matches(masc, fem) {
			return r, true
		}
	}
	return SuffixRule{}, false
}
