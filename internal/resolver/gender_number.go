package resolver

import (
	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
)

// Resolver reconstructs canonical forms from lemma groups. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	scorer frequency.Scorer
}

func New(scorer frequency.Scorer) *Resolver {
	return &Resolver{scorer: scorer}
}

// slotRule fills one slot; rules for a slot are tried in order until one
// yields a form.
type slotRule struct {
	name string
	fill func(cells cellForms, f *entity.ResolvedForms) string
}

func cellRule(g entity.Gender, n entity.Number) slotRule {
	return slotRule{
		name: "cell " + string(g) + "," + string(n),
		fill: func(cells cellForms, _ *entity.ResolvedForms) string {
			return cells.pick(g, n)
		},
	}
}

var (
	mascSingularRules = []slotRule{
		cellRule(entity.GenderMasculine, entity.NumberSingular),
		cellRule(entity.GenderNone, entity.NumberSingular),
		cellRule(entity.GenderMasculine, entity.NumberNone),
		cellRule(entity.GenderNone, entity.NumberNone),
	}
	femSingularRules = []slotRule{
		cellRule(entity.GenderFeminine, entity.NumberSingular),
		cellRule(entity.GenderFeminine, entity.NumberNone),
	}
	mascPluralRules = []slotRule{
		cellRule(entity.GenderMasculine, entity.NumberPlural),
		cellRule(entity.GenderNone, entity.NumberPlural),
		cellRule(entity.GenderMasculine, entity.NumberNone),
	}
	femPluralRules = []slotRule{
		cellRule(entity.GenderFeminine, entity.NumberPlural),
		{
			name: "plural fallback when no feminine singular",
			fill: func(_ cellForms, f *entity.ResolvedForms) string {
				if f.FemSingular == "" {
					return f.MascPlural
				}
				return ""
			},
		},
		{
			name: "mirror masculine plural when genders coincide",
			fill: func(_ cellForms, f *entity.ResolvedForms) string {
				if f.FemSingular != "" && f.FemSingular == f.MascSingular {
					return f.MascPlural
				}
				return ""
			},
		},
		cellRule(entity.GenderFeminine, entity.NumberNone),
	}
)

func applyRules(rules []slotRule, cells cellForms, f *entity.ResolvedForms) string {
	for _, rule := range rules {
		if form := rule.fill(cells, f); form != "" {
			return form
		}
	}
	return ""
}

// Resolve fills the four gender/number slots of a noun or adjective group
// and composes its display string.
func (r *Resolver) Resolve(group []entity.LexicalRow) (entity.ResolvedForms, error) {
	key, err := validateGroup(group)
	if err != nil {
		return entity.ResolvedForms{}, err
	}
	return resolveCells(key.Lemma, observe(group, r.scorer)), nil
}

// ResolveWithAdjacent resolves an adjective group, borrowing feminine cells
// from the same lemma's noun group when the adjective rows lack them.
func (r *Resolver) ResolveWithAdjacent(group, adjacent []entity.LexicalRow) (entity.ResolvedForms, error) {
	key, err := validateGroup(group)
	if err != nil {
		return entity.ResolvedForms{}, err
	}
	cells := observe(group, r.scorer)
	if len(adjacent) > 0 {
		borrowed := observe(adjacent, r.scorer)
		for _, n := range []entity.Number{entity.NumberSingular, entity.NumberPlural} {
			cell := entity.Cell{Gender: entity.GenderFeminine, Number: n}
			if len(cells[cell]) == 0 && len(borrowed[cell]) > 0 {
				cells[cell] = borrowed[cell]
			}
		}
	}
	return resolveCells(key.Lemma, cells), nil
}

func resolveCells(lemma string, cells cellForms) entity.ResolvedForms {
	f := entity.ResolvedForms{Lemma: lemma, Observed: cells.selected()}
	f.MascSingular = applyRules(mascSingularRules, cells, &f)
	f.FemSingular = applyRules(femSingularRules, cells, &f)
	f.MascPlural = applyRules(mascPluralRules, cells, &f)
	f.FemPlural = applyRules(femPluralRules, cells, &f)
	f.Display = Display(f)
	return f
}

// AdjectivePair returns the (masculine, feminine) singular forms used for
// adjective classification. Forms recorded without gender stand in for the
// feminine of an invariable adjective.
func AdjectivePair(f entity.ResolvedForms) (masc, fem string) {
	masc = f.MascSingular
	fem = f.FemSingular
	if fem == "" {
		fem = f.ObservedForm(entity.GenderNone, entity.NumberSingular)
	}
	if fem == "" {
		fem = f.ObservedForm(entity.GenderNone, entity.NumberNone)
	}
	return masc, fem
}

// NounPair returns the exact masculine and feminine singular cells of a noun.
func NounPair(f entity.ResolvedForms) (masc, fem string) {
	return f.ObservedForm(entity.GenderMasculine, entity.NumberSingular),
		f.ObservedForm(entity.GenderFeminine, entity.NumberSingular)
}
