package classifier

import (
	"unicode/utf8"

	"github.com/eslsoft/vocdeck/internal/entity"
)

type adjectiveCheck struct {
	class entity.AdjectiveClass
	match func(masc, fem string) (string, bool)
}

var adjectiveChecks = []adjectiveCheck{
	{
		class: entity.AdjectiveInvariable,
		match: func(masc, fem string) (string, bool) { return "", masc == fem },
	},
	{
		class: entity.AdjectiveRegular,
		match: func(masc, fem string) (string, bool) { return "", fem == masc+"e" },
	},
	{
		class: entity.AdjectiveDoubled,
		match: func(masc, fem string) (string, bool) {
			last, size := utf8.DecodeLastRuneInString(masc)
			if size == 0 {
				return "", false
			}
			return "", fem == masc+string(last)+"e"
		},
	},
	{
		class: entity.AdjectivePatterned,
		match: func(masc, fem string) (string, bool) {
			r, ok := firstMatch(AdjectiveRules, masc, fem)
			return r.Name, ok
		},
	},
}

// ClassifyAdjective labels how fem is derived from masc. The checks run in
// order so the regular and doubled-consonant cases are never reported as a
// suffix pattern.
func ClassifyAdjective(masc, fem string) entity.AdjectiveClassification {
	if masc == "" || fem == "" {
		return entity.AdjectiveClassification{Class: entity.AdjectiveUnknown}
	}
	for _, check := range adjectiveChecks {
		if pattern, ok := check.match(masc, fem); ok {
			return entity.AdjectiveClassification{Class: check.class, Pattern: pattern}
		}
	}
	return entity.AdjectiveClassification{Class: entity.AdjectiveUnique, Pattern: string(entity.AdjectiveUnique)}
}
