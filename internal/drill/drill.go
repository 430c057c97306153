package drill

import (
	"cmp"
	"slices"
	"strings"

	"github.com/eslsoft/vocdeck/internal/entity"
)

const (
	auxiliaryEtre  = "être"
	auxiliaryAvoir = "avoir"
)

type sampleVerb struct {
	verb    string
	group   entity.VerbGroup
	pattern string
}

// regularSamples stand in for the regular groups in the présent drill.
var regularSamples = []sampleVerb{
	{"parler", entity.VerbGroupFirst, "-er régulier"},
	{"manger", entity.VerbGroupFirst, "-ger (nous mangeons)"},
	{"commencer", entity.VerbGroupFirst, "-cer (nous commençons)"},
	{"finir", entity.VerbGroupSecond, "-ir/-issant régulier"},
	{"choisir", entity.VerbGroupSecond, "-ir/-issant régulier"},
}

// Builder derives the conjugation drill skeletons. Frequencies come from the
// conjugation stream; verbs missing from it score zero.
type Builder struct {
	freq      map[string]float64
	irregular map[string]entity.IrregularVerb
	conj      []entity.ConjugationEntry
}

func New(conj []entity.ConjugationEntry, ref *entity.ReferenceData) *Builder {
	freq := make(map[string]float64, len(conj))
	for _, c := range conj {
		key := entity.NormalizeWordToken(c.Verb)
		if c.Frequency > freq[key] {
			freq[key] = c.Frequency
		}
	}
	var irregular map[string]entity.IrregularVerb
	if ref != nil {
		irregular = ref.IrregularVerbs
	}
	return &Builder{freq: freq, irregular: irregular, conj: conj}
}

func (b *Builder) frequency(verb string) float64 {
	return b.freq[entity.NormalizeWordToken(verb)]
}

// Build produces every drill, each sorted by descending frequency then verb.
func (b *Builder) Build() entity.ConjugationDrills {
	return entity.ConjugationDrills{
		Present:     b.Present(),
		Subjunctive: b.Subjunctive(),
		Participles: b.Participles(),
		FutureStems: b.FutureStems(),
		EtreVerbs:   b.EtreVerbs(),
	}
}

// Present lists the curated third-group verbs with their ending pattern,
// followed by a few regular samples. Without a curated table the third-group
// verbs of the conjugation stream are used.
func (b *Builder) Present() []entity.PresentDrill {
	seen := make(map[string]struct{})
	var out []entity.PresentDrill
	add := func(verb string, group entity.VerbGroup, pattern string) {
		key := entity.NormalizeWordToken(verb)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, entity.PresentDrill{Verb: key, Group: group, Pattern: pattern, Frequency: b.frequency(key)})
	}

	if len(b.irregular) > 0 {
		for lemma, irr := range b.irregular {
			add(lemma, entity.VerbGroupThird, irregularPattern(irr.EndingType, irr.Notes))
		}
	} else {
		for _, c := range b.conj {
			if c.Group == entity.VerbGroupThird {
				add(c.Verb, entity.VerbGroupThird, c.Notes)
			}
		}
	}
	for _, s := range regularSamples {
		add(s.verb, s.group, s.pattern)
	}
	sortDrills(out, func(d entity.PresentDrill) (float64, string) { return d.Frequency, d.Verb })
	return out
}

func irregularPattern(ending, notes string) string {
	ending = strings.TrimSpace(ending)
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return ending
	}
	return ending + " (" + notes + ")"
}

// Subjunctive lists the verbs with an irregular subjonctif stem.
func (b *Builder) Subjunctive() []entity.SubjunctiveDrill {
	out := make([]entity.SubjunctiveDrill, 0, len(subjunctiveIrregulars))
	for _, verb := range subjunctiveIrregulars {
		out = append(out, entity.SubjunctiveDrill{Verb: verb, Frequency: b.frequency(verb)})
	}
	sortDrills(out, func(d entity.SubjunctiveDrill) (float64, string) { return d.Frequency, d.Verb })
	return out
}

// Participles lists irregular past participles with their auxiliary.
func (b *Builder) Participles() []entity.ParticipleDrill {
	out := make([]entity.ParticipleDrill, 0, len(irregularParticiples))
	for _, p := range irregularParticiples {
		out = append(out, entity.ParticipleDrill{
			Verb:       p.verb,
			Participle: p.participle,
			Auxiliary:  Auxiliary(p.verb),
			Pattern:    p.pattern,
			Related:    p.related,
			Frequency:  b.frequency(p.verb),
		})
	}
	sortDrills(out, func(d entity.ParticipleDrill) (float64, string) { return d.Frequency, d.Verb })
	return out
}

// FutureStems lists the irregular futur and conditionnel stems.
func (b *Builder) FutureStems() []entity.FutureStemDrill {
	out := make([]entity.FutureStemDrill, 0, len(futureStems))
	for _, s := range futureStems {
		out = append(out, entity.FutureStemDrill{Verb: s.verb, Stem: s.stem, Frequency: b.frequency(s.verb)})
	}
	sortDrills(out, func(d entity.FutureStemDrill) (float64, string) { return d.Frequency, d.Verb })
	return out
}

// EtreVerbs lists the verbs conjugated with être and their past participle.
func (b *Builder) EtreVerbs() []entity.EtreVerbDrill {
	out := make([]entity.EtreVerbDrill, 0, len(etreVerbs))
	for _, verb := range etreVerbs {
		out = append(out, entity.EtreVerbDrill{Verb: verb, Participle: PastParticiple(verb), Frequency: b.frequency(verb)})
	}
	sortDrills(out, func(d entity.EtreVerbDrill) (float64, string) { return d.Frequency, d.Verb })
	return out
}

// Auxiliary returns the compound-tense auxiliary of a verb.
func Auxiliary(verb string) string {
	if slices.Contains(etreVerbs, verb) {
		return auxiliaryEtre
	}
	return auxiliaryAvoir
}

// PastParticiple returns the irregular participle when known, otherwise the
// regular -er → -é and -ir → -i forms. Other endings yield "".
func PastParticiple(verb string) string {
	for _, p := range irregularParticiples {
		if p.verb == verb {
			return p.participle
		}
	}
	switch {
	case strings.HasSuffix(verb, "er"):
		return strings.TrimSuffix(verb, "er") + "é"
	case strings.HasSuffix(verb, "ir"):
		return strings.TrimSuffix(verb, "ir") + "i"
	default:
		return ""
	}
}

func sortDrills[T any](items []T, key func(T) (float64, string)) {
	slices.SortStableFunc(items, func(a, b T) int {
		fa, va := key(a)
		fb, vb := key(b)
		return cmp.Or(cmp.Compare(fb, fa), strings.Compare(va, vb))
	})
}
