package resolver

import (
	"github.com/eslsoft/vocdeck/internal/entity"
)

type displayRule struct {
	name   string
	render func(f entity.ResolvedForms, distinct []string) (string, bool)
}

var displayRules = []displayRule{
	{
		name: "no forms",
		render: func(f entity.ResolvedForms, distinct []string) (string, bool) {
			return f.Lemma, len(distinct) == 0
		},
	},
	{
		name: "single form",
		render: func(_ entity.ResolvedForms, distinct []string) (string, bool) {
			if len(distinct) != 1 {
				return "", false
			}
			return distinct[0], true
		},
	},
	{
		name: "gender and number",
		render: func(f entity.ResolvedForms, _ []string) (string, bool) {
			if !genderDiffers(f) || !numberDiffers(f) {
				return "", false
			}
			sg := pairOrSingle(f.MascSingular, f.FemSingular)
			pl := pairOrSingle(f.MascPlural, f.FemPlural)
			if pl == "" {
				return sg, true
			}
			return sg + " " + pl, true
		},
	},
	{
		name: "gender only",
		render: func(f entity.ResolvedForms, _ []string) (string, bool) {
			if !genderDiffers(f) {
				return "", false
			}
			return f.MascSingular + ", " + f.FemSingular, true
		},
	},
	{
		name: "number only",
		render: func(f entity.ResolvedForms, _ []string) (string, bool) {
			if !numberDiffers(f) {
				return "", false
			}
			return firstNonEmpty(f.MascSingular, f.FemSingular) + ", " + firstNonEmpty(f.MascPlural, f.FemPlural), true
		},
	},
	{
		name: "first form",
		render: func(_ entity.ResolvedForms, distinct []string) (string, bool) {
			return distinct[0], true
		},
	},
}

// Display collapses resolved slots into the string printed on cards:
// a single form alone, "M, F" when only gender varies, "sg, pl" when only
// number varies and "M.sg/F.sg M.pl/F.pl" when both vary.
func Display(f entity.ResolvedForms) string {
	distinct := f.Distinct()
	for _, rule := range displayRules {
		if out, ok := rule.render(f, distinct); ok {
			return out
		}
	}
	return f.Lemma
}

func genderDiffers(f entity.ResolvedForms) bool {
	return f.MascSingular != "" && f.FemSingular != "" && f.MascSingular != f.FemSingular
}

func numberDiffers(f entity.ResolvedForms) bool {
	return (f.MascPlural != "" && f.MascSingular != "" && f.MascPlural != f.MascSingular) ||
		(f.FemPlural != "" && f.FemSingular != "" && f.FemPlural != f.FemSingular)
}

func pairOrSingle(a, b string) string {
	if a != "" && b != "" {
		return a + "/" + b
	}
	return firstNonEmpty(a, b)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
