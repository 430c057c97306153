package review

import (
	"cmp"
	"slices"
	"strings"

	"github.com/eslsoft/vocdeck/internal/classifier"
	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
	"github.com/eslsoft/vocdeck/internal/resolver"
)

// HomographType pre-classifies genderless nouns listed as gender homographs.
const HomographType = "homograph"

// Stats counts classified and needs-review items per review table.
type Stats struct {
	AdjectivesClassified int
	AdjectivesNeedReview int
	VerbsRegular         int
	VerbsIrregular       int
	ProfessionPairs      int
	ProfessionsUnpaired  int
	GenderlessClassified int
	GenderlessNeedReview int
}

// Builder derives the human-review tables from resolved lemma records.
type Builder struct {
	threshold float64
	ref       *entity.ReferenceData
}

func New(opts entity.PipelineOptions, ref *entity.ReferenceData) *Builder {
	if ref == nil {
		ref = &entity.ReferenceData{}
	}
	return &Builder{threshold: opts.ReviewThreshold, ref: ref}
}

// Build classifies every record at or above the review threshold.
func (b *Builder) Build(records []entity.LemmaRecord) (entity.ReviewSet, Stats) {
	var (
		set   entity.ReviewSet
		stats Stats
	)
	for _, rec := range records {
		if !frequency.MeetsThreshold(rec.Frequency, b.threshold) {
			continue
		}
		switch rec.Category {
		case entity.CategoryAdjective:
			b.adjective(rec, &set, &stats)
		case entity.CategoryVerb:
			b.verb(rec, &set, &stats)
		case entity.CategoryNoun:
			b.profession(rec, &set, &stats)
			b.genderless(rec, &set, &stats)
		}
	}

	byFrequency := func(a, b float64) int { return cmp.Compare(b, a) }
	slices.SortStableFunc(set.Adjectives, func(x, y entity.IrregularAdjectiveReview) int {
		return cmp.Or(byFrequency(x.Frequency, y.Frequency), strings.Compare(x.Lemma, y.Lemma))
	})
	slices.SortStableFunc(set.Verbs, func(x, y entity.IrregularVerbReview) int {
		return cmp.Or(byFrequency(x.Frequency, y.Frequency), strings.Compare(x.Lemma, y.Lemma))
	})
	slices.SortStableFunc(set.Professions, func(x, y entity.ProfessionReview) int {
		return cmp.Or(
			strings.Compare(string(x.Status), string(y.Status)),
			byFrequency(x.Frequency, y.Frequency),
			strings.Compare(x.Lemma, y.Lemma),
		)
	})
	slices.SortStableFunc(set.GenderlessNouns, func(x, y entity.GenderlessNounReview) int {
		return cmp.Or(byFrequency(x.Frequency, y.Frequency), strings.Compare(x.Lemma, y.Lemma))
	})
	return set, stats
}

func (b *Builder) adjective(rec entity.LemmaRecord, set *entity.ReviewSet, stats *Stats) {
	masc, fem := resolver.AdjectivePair(rec.Forms)
	cls := classifier.ClassifyAdjective(masc, fem)
	switch cls.Class {
	case entity.AdjectivePatterned, entity.AdjectiveUnique:
		set.Adjectives = append(set.Adjectives, entity.IrregularAdjectiveReview{
			Lemma:     rec.Lemma,
			Masculine: masc,
			Feminine:  fem,
			Frequency: rec.Frequency,
			Class:     cls.Class,
			Notes:     cls.Pattern,
		})
	}
	if cls.Class.NeedsReview() {
		stats.AdjectivesNeedReview++
	} else {
		stats.AdjectivesClassified++
	}
}

func (b *Builder) verb(rec entity.LemmaRecord, set *entity.ReviewSet, stats *Stats) {
	var ppr string
	if rec.Verb != nil {
		ppr = rec.Verb.PresentParticiple
	}
	cls := classifier.ClassifyVerbGroup(rec.Lemma, ppr)
	if cls.Group != entity.VerbGroupThird {
		stats.VerbsRegular++
		return
	}
	stats.VerbsIrregular++
	set.Verbs = append(set.Verbs, entity.IrregularVerbReview{
		Lemma:             rec.Lemma,
		Frequency:         rec.Frequency,
		PresentParticiple: ppr,
		EndingType:        cls.Reason,
		Notes:             classifier.VerbNotes(rec.Lemma),
	})
}

func (b *Builder) profession(rec entity.LemmaRecord, set *entity.ReviewSet, stats *Stats) {
	masc, fem := resolver.NounPair(rec.Forms)
	cls := classifier.ClassifyNounPair(rec.Lemma, masc, fem)
	switch cls.Status {
	case entity.NounHasBoth:
		stats.ProfessionPairs++
	case entity.NounMascOnlyProfession:
		stats.ProfessionsUnpaired++
	default:
		return
	}
	set.Professions = append(set.Professions, entity.ProfessionReview{
		Lemma:     rec.Lemma,
		Masculine: masc,
		Feminine:  fem,
		Frequency: rec.Frequency,
		Status:    cls.Status,
		Pattern:   cls.Pattern,
	})
}

func (b *Builder) genderless(rec entity.LemmaRecord, set *entity.ReviewSet, stats *Stats) {
	if rec.Gender != entity.GenderNone {
		return
	}
	var kind string
	if _, ok := b.ref.GenderHomographs[entity.NormalizeWordToken(rec.Lemma)]; ok {
		kind = HomographType
		stats.GenderlessClassified++
	} else {
		stats.GenderlessNeedReview++
	}
	set.GenderlessNouns = append(set.GenderlessNouns, entity.GenderlessNounReview{
		Lemma:      rec.Lemma,
		Frequency:  rec.Frequency,
		Homographs: rec.Homographs,
		Type:       kind,
	})
}
