package selection

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
	"github.com/eslsoft/vocdeck/internal/resolver"
)

// OtherPartition names the residual bucket of small categories.
const OtherPartition = "other"

// Result is the outcome of selection: large categories in their own
// partitions (ordered by category code) plus the residual bucket.
type Result struct {
	Partitions []entity.Partition
	Other      entity.Partition
	Stats      Stats
}

// Stats counts what selection kept and dropped.
type Stats struct {
	Lemmas              int
	Blacklisted         int
	BelowMinimum        int
	TruncatedByTopN     int
	NumeralsExcluded    int
	NumeralsInLexicon   int
	NumeralsSynthesized int
}

// All returns every selected record, partitions first.
func (r Result) All() []entity.LemmaRecord {
	var out []entity.LemmaRecord
	for _, p := range r.Partitions {
		out = append(out, p.Records...)
	}
	return append(out, r.Other.Records...)
}

// Category returns the records of one category wherever they were partitioned.
func (r Result) Category(c entity.Category) []entity.LemmaRecord {
	return lo.Filter(r.All(), func(rec entity.LemmaRecord, _ int) bool {
		return rec.Category == c
	})
}

// Selector turns lexicon rows into ranked, filtered lemma partitions.
type Selector struct {
	opts     entity.PipelineOptions
	scorer   frequency.Scorer
	resolver *resolver.Resolver
	ref      *entity.ReferenceData
	numerals map[string]struct{}
}

func New(opts entity.PipelineOptions, ref *entity.ReferenceData) *Selector {
	scorer := frequency.FromOptions(opts)
	if ref == nil {
		ref = &entity.ReferenceData{}
	}
	numerals := make(map[string]struct{}, len(ref.Numerals))
	for _, n := range ref.Numerals {
		numerals[entity.NormalizeWordToken(n.Lemma)] = struct{}{}
	}
	return &Selector{
		opts:     opts,
		scorer:   scorer,
		resolver: resolver.New(scorer),
		ref:      ref,
		numerals: numerals,
	}
}

// Select builds one record per lemma row, resolves its forms, filters and
// splits the result by category size.
func (s *Selector) Select(rows []entity.LexicalRow) Result {
	var stats Stats
	groups := resolver.GroupRows(rows)
	records := s.lemmaRecords(rows, groups)
	stats.Lemmas = len(records)

	filtered := make([]entity.LemmaRecord, 0, len(records))
	for _, rec := range records {
		switch {
		case s.ref.IsBlacklisted(rec.Lemma):
			stats.Blacklisted++
		case rec.Category == entity.CategoryNumeral && !s.numeralAllowed(rec.Lemma):
			stats.NumeralsExcluded++
		case rec.Frequency < s.opts.MinFrequency:
			stats.BelowMinimum++
		default:
			filtered = append(filtered, rec)
		}
	}

	kept, truncated := s.topN(filtered)
	stats.TruncatedByTopN = truncated

	kept, stats.NumeralsInLexicon, stats.NumeralsSynthesized = s.withNumerals(kept)

	partitions, other := s.partition(kept)
	return Result{Partitions: partitions, Other: other, Stats: stats}
}

// Records returns one resolved record per lemma key, before any filtering.
func (s *Selector) Records(rows []entity.LexicalRow) []entity.LemmaRecord {
	return s.lemmaRecords(rows, resolver.GroupRows(rows))
}

// lemmaRecords keeps, per lemma key, the lemma row with the highest score.
func (s *Selector) lemmaRecords(rows []entity.LexicalRow, groups *resolver.Groups) []entity.LemmaRecord {
	index := make(map[entity.LemmaKey]int)
	var records []entity.LemmaRecord
	for _, row := range rows {
		if !row.IsLemma || row.Category == entity.CategoryUnspecified {
			continue
		}
		if entity.IsLiaisonVariant(row.Lemma, row.Category) {
			continue
		}
		key := row.Key()
		score := s.scorer.Lemma(row)
		if i, ok := index[key]; ok {
			if score > records[i].Frequency {
				records[i].Frequency = score
				records[i].Gender = row.Gender
				records[i].Homographs = row.Homographs
			}
			continue
		}
		index[key] = len(records)
		records = append(records, entity.LemmaRecord{
			Key:        key,
			Lemma:      key.Lemma,
			Category:   key.Category,
			Gender:     row.Gender,
			Frequency:  score,
			Homographs: row.Homographs,
			Source:     entity.SourceLexicon,
		})
	}
	for i := range records {
		s.resolveForms(&records[i], groups)
	}
	return records
}

func (s *Selector) resolveForms(rec *entity.LemmaRecord, groups *resolver.Groups) {
	group := groups.Rows(rec.Key)
	fallback := entity.ResolvedForms{Lemma: rec.Lemma, Display: rec.Lemma}

	var (
		forms entity.ResolvedForms
		err   error
	)
	if rec.Category == entity.CategoryAdjective {
		forms, err = s.resolver.ResolveWithAdjacent(group, groups.Rows(entity.NewLemmaKey(rec.Lemma, entity.CategoryNoun)))
	} else {
		forms, err = s.resolver.Resolve(group)
	}
	if err != nil {
		forms = fallback
	}
	rec.Forms = forms

	if rec.Category.IsVerbal() {
		if verb, err := s.resolver.ResolveVerb(group); err == nil {
			rec.Verb = &verb
		}
	}
}

func (s *Selector) numeralAllowed(lemma string) bool {
	_, ok := s.numerals[entity.NormalizeWordToken(lemma)]
	return ok
}

// topN truncates every filtered category to its N highest-scoring lemmas.
// Categories outside the filtered set are kept whole.
func (s *Selector) topN(records []entity.LemmaRecord) ([]entity.LemmaRecord, int) {
	if s.opts.TopN <= 0 {
		return records, 0
	}
	filtered := lo.SliceToMap(s.opts.FilteredCategories, func(c entity.Category) (entity.Category, struct{}) {
		return c, struct{}{}
	})

	byCategory := lo.GroupBy(records, func(r entity.LemmaRecord) entity.Category { return r.Category })
	keep := make(map[entity.LemmaKey]struct{}, len(records))
	truncated := 0
	for category, recs := range byCategory {
		if _, ok := filtered[category]; ok && len(recs) > s.opts.TopN {
			ranked := slices.Clone(recs)
			rankRecords(ranked)
			truncated += len(ranked) - s.opts.TopN
			recs = ranked[:s.opts.TopN]
		}
		for _, r := range recs {
			keep[r.Key] = struct{}{}
		}
	}
	return lo.Filter(records, func(r entity.LemmaRecord, _ int) bool {
		_, ok := keep[r.Key]
		return ok
	}), truncated
}

// withNumerals attaches allow-list notes and adds allow-listed numerals the
// lexicon does not contain, with zero frequency.
func (s *Selector) withNumerals(records []entity.LemmaRecord) ([]entity.LemmaRecord, int, int) {
	present := make(map[string]int)
	for i, r := range records {
		if r.Category == entity.CategoryNumeral {
			present[entity.NormalizeWordToken(r.Lemma)] = i
		}
	}
	inLexicon, synthesized := 0, 0
	for _, n := range s.ref.Numerals {
		token := entity.NormalizeWordToken(n.Lemma)
		if token == "" || s.ref.IsBlacklisted(token) {
			continue
		}
		if i, ok := present[token]; ok {
			records[i].Notes = n.Notes
			inLexicon++
			continue
		}
		key := entity.NewLemmaKey(token, entity.CategoryNumeral)
		records = append(records, entity.LemmaRecord{
			Key:      key,
			Lemma:    key.Lemma,
			Category: entity.CategoryNumeral,
			Forms:    entity.ResolvedForms{Lemma: key.Lemma, Display: key.Lemma},
			Source:   entity.SourceWhitelist,
			Notes:    n.Notes,
		})
		present[token] = len(records) - 1
		synthesized++
	}
	return records, inLexicon, synthesized
}

// partition gives categories with at least MinCategorySize lemmas their own
// partition sorted by frequency; the rest share the residual partition
// sorted by category then frequency.
func (s *Selector) partition(records []entity.LemmaRecord) ([]entity.Partition, entity.Partition) {
	byCategory := lo.GroupBy(records, func(r entity.LemmaRecord) entity.Category { return r.Category })
	categories := lo.Keys(byCategory)
	slices.Sort(categories)

	var (
		partitions []entity.Partition
		rest       []entity.LemmaRecord
	)
	for _, category := range categories {
		recs := byCategory[category]
		if len(recs) >= s.opts.MinCategorySize {
			rankRecords(recs)
			partitions = append(partitions, entity.Partition{
				Name:     category.FileStem(),
				Category: category,
				Records:  recs,
			})
			continue
		}
		rest = append(rest, recs...)
	}

	slices.SortStableFunc(rest, func(a, b entity.LemmaRecord) int {
		if c := strings.Compare(string(a.Category), string(b.Category)); c != 0 {
			return c
		}
		return compareRecords(a, b)
	})
	return partitions, entity.Partition{Name: OtherPartition, Records: rest}
}

func rankRecords(recs []entity.LemmaRecord) {
	frequency.Rank(recs,
		func(r entity.LemmaRecord) float64 { return r.Frequency },
		func(r entity.LemmaRecord) string { return r.Lemma },
	)
}

func compareRecords(a, b entity.LemmaRecord) int {
	switch {
	case a.Frequency > b.Frequency:
		return -1
	case a.Frequency < b.Frequency:
		return 1
	default:
		return strings.Compare(a.Lemma, b.Lemma)
	}
}
