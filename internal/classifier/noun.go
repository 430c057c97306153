package classifier

import (
	"strings"

	"github.com/eslsoft/vocdeck/internal/entity"
)

// ClassifyNounPair reports which singular genders a noun lemma has. When both
// exist the derivation pattern is named; a masculine-only lemma ending in an
// occupational suffix is flagged because its feminine may be missing.
func ClassifyNounPair(lemma, masc, fem string) entity.NounPairClassification {
	switch {
	case masc != "" && fem != "":
		return entity.NounPairClassification{Status: entity.NounHasBoth, Pattern: nounPattern(masc, fem)}
	case masc != "":
		for _, suffix := range professionSuffixes {
			if strings.HasSuffix(lemma, suffix) {
				return entity.NounPairClassification{
					Status:  entity.NounMascOnlyProfession,
					Pattern: "expected f-form (-" + suffix + ")",
				}
			}
		}
		return entity.NounPairClassification{Status: entity.NounMascOnly}
	case fem != "":
		return entity.NounPairClassification{Status: entity.NounFemOnly}
	default:
		return entity.NounPairClassification{Status: entity.NounPairUnknown}
	}
}

func nounPattern(masc, fem string) string {
	if r, ok := firstMatch(ProfessionRules, masc, fem); ok {
		return r.Name
	}
	if masc == fem {
		return string(entity.AdjectiveInvariable)
	}
	return "irregular"
}
