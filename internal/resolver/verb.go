package resolver

import (
	"github.com/eslsoft/vocdeck/internal/entity"
)

// ResolveVerb extracts the infinitive and participles of a verb group.
func (r *Resolver) ResolveVerb(group []entity.LexicalRow) (entity.VerbForms, error) {
	key, err := validateGroup(group)
	if err != nil {
		return entity.VerbForms{}, err
	}

	var infinitive, pastM, pastF, present []candidate
	for _, row := range group {
		c := candidate{ortho: row.Ortho, freq: r.scorer.Form(row)}
		switch {
		case row.HasInflection(entity.InflectionInfinitive):
			// A row tagged infinitive whose spelling is not the lemma is a data error.
			if entity.NormalizeLemma(row.Ortho) == key.Lemma {
				infinitive = append(infinitive, c)
			}
		case row.HasInflection(entity.InflectionPastParticiple):
			switch {
			case row.Gender == entity.GenderMasculine && row.Number != entity.NumberPlural:
				pastM = append(pastM, c)
			case row.Gender == entity.GenderFeminine && row.Number == entity.NumberSingular:
				pastF = append(pastF, c)
			}
		}
		if row.HasInflection(entity.InflectionPresentParticiple) {
			present = append(present, c)
		}
	}

	v := entity.VerbForms{
		Infinitive:        bestSpelling(infinitive),
		PastParticipleM:   bestSpelling(pastM),
		PastParticipleF:   bestSpelling(pastF),
		PresentParticiple: bestSpelling(present),
	}
	v.Display = VerbDisplay(key.Lemma, v)
	return v, nil
}

// VerbDisplay renders "infinitive, pp.m[/pp.f] (ppr)", omitting absent parts.
func VerbDisplay(lemma string, v entity.VerbForms) string {
	out := firstNonEmpty(v.Infinitive, lemma)
	if participle := firstNonEmpty(v.PastParticipleM, v.PastParticipleF); participle != "" {
		out += ", " + participle
		if v.PastParticipleM != "" && v.PastParticipleF != "" && v.PastParticipleF != v.PastParticipleM {
			out += "/" + v.PastParticipleF
		}
	}
	if v.PresentParticiple != "" {
		out += " (" + v.PresentParticiple + ")"
	}
	return out
}
