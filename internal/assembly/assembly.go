package assembly

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/eslsoft/vocdeck/internal/classifier"
	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
	"github.com/eslsoft/vocdeck/internal/resolver"
	"github.com/eslsoft/vocdeck/internal/selection"
)

// Stats counts the cards produced and the rows dropped or matched on the way.
type Stats struct {
	VocabularyCards      int
	ConjugationCards     int
	Blacklisted          int
	Duplicates           int
	ProfessionsMatched   int
	ProfessionsUnmatched int
	RegionalMatched      int
	RegionalUnmatched    int
}

// Assembler merges selected lemmas with the curated additions into flat card records.
type Assembler struct {
	opts  entity.PipelineOptions
	ref   *entity.ReferenceData
	index map[string]float64
}

// New returns an Assembler. index maps lower-cased lemmas and forms to their
// weighted frequency and is used to score regional additions.
func New(opts entity.PipelineOptions, ref *entity.ReferenceData, index map[string]float64) *Assembler {
	if ref == nil {
		ref = &entity.ReferenceData{}
	}
	return &Assembler{opts: opts, ref: ref, index: index}
}

// streamState deduplicates one category stream by case-insensitive word.
type streamState struct {
	seen  map[string]struct{}
	stats *Stats
	ref   *entity.ReferenceData
}

func (a *Assembler) newStream(stats *Stats) *streamState {
	return &streamState{seen: make(map[string]struct{}), stats: stats, ref: a.ref}
}

// admit reports whether the word passes the blacklist and has not been seen
// in this stream yet, recording it when it does.
func (s *streamState) admit(word string) bool {
	if s.ref.IsBlacklisted(word) {
		s.stats.Blacklisted++
		return false
	}
	key := entity.NormalizeWordToken(word)
	if _, ok := s.seen[key]; ok {
		s.stats.Duplicates++
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Assemble builds the vocabulary and conjugation streams. Both are sorted by
// descending frequency, then case-insensitively by text, and vocabulary
// entries carry their level.
func (a *Assembler) Assemble(sel selection.Result) (entity.Deck, Stats) {
	var stats Stats
	records := sel.All()
	byCategory := make(map[entity.Category][]entity.LemmaRecord)
	for _, rec := range records {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	var vocab []entity.VocabEntry
	vocab = append(vocab, a.nouns(byCategory[entity.CategoryNoun], &stats)...)
	vocab = append(vocab, a.adjectives(byCategory[entity.CategoryAdjective], &stats)...)
	vocab = append(vocab, a.simple(byCategory[entity.CategoryAdverb], &stats)...)
	vocab = append(vocab, a.simple(byCategory[entity.CategoryNumeral], &stats)...)
	vocab = append(vocab, a.simple(otherRecords(records), &stats)...)
	vocab = append(vocab, a.simple(byCategory[entity.CategoryOnomatopoeia], &stats)...)
	vocab = append(vocab, a.regional(&stats)...)

	frequency.RankFold(vocab,
		func(v entity.VocabEntry) float64 { return v.Frequency },
		func(v entity.VocabEntry) string { return v.French },
	)
	AssignLevels(vocab, a.opts.Levels)

	conj := a.verbs(byCategory[entity.CategoryVerb], &stats)
	frequency.RankFold(conj,
		func(c entity.ConjugationEntry) float64 { return c.Frequency },
		func(c entity.ConjugationEntry) string { return c.Verb },
	)

	stats.VocabularyCards = len(vocab)
	stats.ConjugationCards = len(conj)
	return entity.Deck{Vocabulary: vocab, Conjugation: conj}, stats
}

var dedicatedStreams = map[entity.Category]struct{}{
	entity.CategoryNoun:         {},
	entity.CategoryAdjective:    {},
	entity.CategoryAdverb:       {},
	entity.CategoryNumeral:      {},
	entity.CategoryOnomatopoeia: {},
	entity.CategoryVerb:         {},
}

func otherRecords(records []entity.LemmaRecord) []entity.LemmaRecord {
	var out []entity.LemmaRecord
	for _, rec := range records {
		if _, ok := dedicatedStreams[rec.Category]; !ok {
			out = append(out, rec)
		}
	}
	return out
}

func lexiconEntry(rec entity.LemmaRecord) entity.VocabEntry {
	source := rec.Source
	if source == "" {
		source = entity.SourceLexicon
	}
	return entity.VocabEntry{
		French:    strings.TrimSpace(rec.Lemma),
		WordType:  rec.Category.WordType(rec.Gender),
		Notes:     rec.Notes,
		Source:    source,
		Frequency: rec.Frequency,
		Category:  rec.Category,
	}
}

// simple emits the lemma as-is with its category word type.
func (a *Assembler) simple(records []entity.LemmaRecord, stats *Stats) []entity.VocabEntry {
	stream := a.newStream(stats)
	var out []entity.VocabEntry
	for _, rec := range records {
		if !stream.admit(rec.Lemma) {
			continue
		}
		out = append(out, lexiconEntry(rec))
	}
	return out
}

func (a *Assembler) nouns(records []entity.LemmaRecord, stats *Stats) []entity.VocabEntry {
	stream := a.newStream(stats)
	var out []entity.VocabEntry
	for _, rec := range records {
		if !stream.admit(rec.Lemma) {
			continue
		}
		entry := lexiconEntry(rec)
		entry.French = FormatNoun(entry.French, entry.WordType)
		out = append(out, entry)
	}

	for _, p := range a.ref.Professions {
		lemma := strings.TrimSpace(p.Lemma)
		if lemma == "" || !stream.admit(lemma) {
			continue
		}
		notes := p.Notes
		if masc := strings.TrimSpace(p.Masculine); masc != "" {
			notes = "fém. de " + masc
			if _, ok := stream.seen[entity.NormalizeWordToken(masc)]; ok {
				stats.ProfessionsMatched++
			} else {
				stats.ProfessionsUnmatched++
			}
		} else {
			stats.ProfessionsUnmatched++
		}
		out = append(out, entity.VocabEntry{
			French:    FormatNoun(lemma, entity.WordTypeFeminine),
			WordType:  entity.WordTypeFeminine,
			Notes:     notes,
			Source:    entity.SourceAdditions,
			Frequency: p.Frequency,
			Category:  entity.CategoryNoun,
		})
	}
	return out
}

func (a *Assembler) adjectives(records []entity.LemmaRecord, stats *Stats) []entity.VocabEntry {
	stream := a.newStream(stats)
	var out []entity.VocabEntry
	for _, rec := range records {
		if !stream.admit(rec.Lemma) {
			continue
		}
		entry := lexiconEntry(rec)
		entry.French, entry.Notes = a.formatAdjective(rec)
		out = append(out, entry)
	}
	return out
}

// formatAdjective renders "masc, fem" with a short gender note. Curated
// irregular entries take precedence over the resolved forms.
func (a *Assembler) formatAdjective(rec entity.LemmaRecord) (string, string) {
	lemma := strings.TrimSpace(rec.Lemma)
	if irr, ok := a.ref.IrregularAdjectives[entity.NormalizeWordToken(lemma)]; ok {
		if irr.Masculine != "" && irr.Feminine != "" && irr.Masculine != irr.Feminine {
			return irr.Masculine + ", " + irr.Feminine, "irrégulier (" + irr.Notes + ")"
		}
		return lemma, string(entity.AdjectiveInvariable)
	}

	masc, fem := resolver.AdjectivePair(rec.Forms)
	if masc != "" && fem != "" && masc != fem {
		cls := classifier.ClassifyAdjective(masc, fem)
		switch cls.Class {
		case entity.AdjectiveRegular:
			return masc + ", " + fem, "+e au féminin"
		case entity.AdjectivePatterned:
			return masc + ", " + fem, cls.Pattern
		default:
			return masc + ", " + fem, ""
		}
	}
	if len(rec.Forms.Distinct()) > 1 {
		return firstNonEmpty(masc, lemma), string(entity.AdjectiveInvariable)
	}
	return lemma, ""
}

func (a *Assembler) verbs(records []entity.LemmaRecord, stats *Stats) []entity.ConjugationEntry {
	stream := a.newStream(stats)
	var out []entity.ConjugationEntry
	for _, rec := range records {
		if !stream.admit(rec.Lemma) {
			continue
		}
		group, notes := a.verbGroup(rec)
		out = append(out, entity.ConjugationEntry{
			Verb:      strings.TrimSpace(rec.Lemma),
			Notes:     notes,
			Frequency: rec.Frequency,
			Group:     group,
		})
	}
	return out
}

func (a *Assembler) verbGroup(rec entity.LemmaRecord) (entity.VerbGroup, string) {
	if irr, ok := a.ref.IrregularVerbs[entity.NormalizeWordToken(rec.Lemma)]; ok {
		return entity.VerbGroupThird, irr.Notes
	}
	var ppr string
	if rec.Verb != nil {
		ppr = rec.Verb.PresentParticiple
	}
	cls := classifier.ClassifyVerbGroup(rec.Lemma, ppr)
	if cls.Group == entity.VerbGroupThird {
		return cls.Group, classifier.VerbNotes(rec.Lemma)
	}
	return cls.Group, ""
}

func (a *Assembler) regional(stats *Stats) []entity.VocabEntry {
	seen := make(map[string]struct{})
	var out []entity.VocabEntry
	for _, w := range a.ref.Regional {
		word := strings.TrimSpace(w.Word)
		if word == "" {
			continue
		}
		if a.ref.IsBlacklisted(word) {
			stats.Blacklisted++
			continue
		}
		key := NormalizeRegionalWord(word)
		if _, ok := seen[key]; ok {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		wt := PosToWordType(w.POS)
		french := norm.NFC.String(word)
		if wt.IsNoun() {
			french = FormatNoun(french, wt)
		}
		freq, found := regionalFrequency(word, a.index)
		if found {
			stats.RegionalMatched++
		} else {
			stats.RegionalUnmatched++
		}
		priority := strings.TrimSpace(w.Priority)
		if priority == "" {
			priority = entity.PriorityMedium
		}
		out = append(out, entity.VocabEntry{
			French:    french,
			WordType:  wt,
			Notes:     regionalNotes(w.Translation, w.Definition),
			Source:    entity.SourceRegional,
			Frequency: freq,
			Priority:  priority,
		})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
