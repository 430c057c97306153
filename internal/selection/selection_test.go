package selection

import (
	"fmt"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/entity"
)

func lemmaRow(lemma string, cat entity.Category, spoken float64) entity.LexicalRow {
	return entity.LexicalRow{
		Ortho:      lemma,
		Lemma:      lemma,
		Category:   cat,
		Gender:     entity.GenderMasculine,
		Number:     entity.NumberSingular,
		SpokenFreq: spoken,
		IsLemma:    true,
	}
}

func testOptions() entity.PipelineOptions {
	opts := entity.DefaultPipelineOptions()
	opts.TopN = 2
	opts.MinCategorySize = 2
	return opts
}

func lemmas(recs []entity.LemmaRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Lemma)
	}
	return out
}

func TestSelect_TopNPerFilteredCategory(t *testing.T) {
	rows := []entity.LexicalRow{
		lemmaRow("chat", entity.CategoryNoun, 10),
		lemmaRow("chien", entity.CategoryNoun, 30),
		lemmaRow("arbre", entity.CategoryNoun, 20),
		lemmaRow("et", entity.CategoryConjunction, 0.01),
		lemmaRow("ou", entity.CategoryConjunction, 500),
		lemmaRow("mais", entity.CategoryConjunction, 1),
	}
	result := New(testOptions(), nil).Select(rows)

	assert.Equal(t, []string{"chien", "arbre"}, lemmas(result.Category(entity.CategoryNoun)))
	assert.ElementsMatch(t, []string{"et", "ou", "mais"}, lemmas(result.Category(entity.CategoryConjunction)))
	assert.Equal(t, 1, result.Stats.TruncatedByTopN)
}

func TestSelect_TopNBoundProperty(t *testing.T) {
	property := func(seed int64, n uint8) bool {
		r := rand.New(rand.NewSource(seed))
		opts := testOptions()
		opts.TopN = 1 + int(n%10)

		var rows []entity.LexicalRow
		for i := 0; i < 40; i++ {
			rows = append(rows,
				lemmaRow(fmt.Sprintf("nom%d", i), entity.CategoryNoun, float64(r.Intn(5))),
				lemmaRow(fmt.Sprintf("pre%d", i), entity.CategoryPreposition, float64(r.Intn(5))),
			)
		}
		result := New(opts, nil).Select(rows)
		return len(result.Category(entity.CategoryNoun)) == opts.TopN &&
			len(result.Category(entity.CategoryPreposition)) == 40
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestSelect_BlacklistedLemmasNeverSurvive(t *testing.T) {
	categories := []entity.Category{entity.CategoryNoun, entity.CategoryAdverb, entity.CategoryPreposition, entity.CategoryNumeral}
	property := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ref := &entity.ReferenceData{Blacklist: map[string]struct{}{}}
		var rows []entity.LexicalRow
		for i := 0; i < 30; i++ {
			lemma := fmt.Sprintf("Mot%d", i)
			rows = append(rows, lemmaRow(lemma, categories[r.Intn(len(categories))], float64(r.Intn(100))))
			ref.Numerals = append(ref.Numerals, entity.NumeralAllowance{Lemma: lemma})
			if r.Intn(3) == 0 {
				ref.Blacklist[entity.NormalizeWordToken(lemma)] = struct{}{}
			}
		}
		result := New(testOptions(), ref).Select(rows)
		for _, rec := range result.All() {
			if ref.IsBlacklisted(rec.Lemma) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestSelect_NumeralAllowList(t *testing.T) {
	ref := &entity.ReferenceData{
		Numerals: []entity.NumeralAllowance{
			{Lemma: "dix", Notes: "10"},
			{Lemma: "dix-sept", Notes: "17"},
		},
	}
	rows := []entity.LexicalRow{
		lemmaRow("dix", entity.CategoryNumeral, 40),
		lemmaRow("mille", entity.CategoryNumeral, 30),
	}
	result := New(testOptions(), ref).Select(rows)

	numerals := result.Category(entity.CategoryNumeral)
	require.Len(t, numerals, 2)
	assert.Equal(t, "dix", numerals[0].Lemma)
	assert.Equal(t, "10", numerals[0].Notes)
	assert.Equal(t, entity.SourceLexicon, numerals[0].Source)

	assert.Equal(t, "dix-sept", numerals[1].Lemma)
	assert.Equal(t, 0.0, numerals[1].Frequency)
	assert.Equal(t, entity.SourceWhitelist, numerals[1].Source)
	assert.Equal(t, "dix-sept", numerals[1].DisplayForms())

	assert.Equal(t, 1, result.Stats.NumeralsExcluded)
	assert.Equal(t, 1, result.Stats.NumeralsInLexicon)
	assert.Equal(t, 1, result.Stats.NumeralsSynthesized)
}

func TestSelect_PartitionsBySize(t *testing.T) {
	rows := []entity.LexicalRow{
		lemmaRow("vite", entity.CategoryAdverb, 5),
		lemmaRow("bien", entity.CategoryAdverb, 50),
		lemmaRow("dans", entity.CategoryPreposition, 10),
		lemmaRow("avec", entity.CategoryPreposition, 10),
		lemmaRow("ah", entity.CategoryOnomatopoeia, 3),
		lemmaRow("et", entity.CategoryConjunction, 90),
	}
	opts := testOptions()
	opts.TopN = 100
	result := New(opts, nil).Select(rows)

	require.Len(t, result.Partitions, 2)
	assert.Equal(t, "ADV", result.Partitions[0].Name)
	assert.Equal(t, []string{"bien", "vite"}, lemmas(result.Partitions[0].Records))
	assert.Equal(t, "PRE", result.Partitions[1].Name)
	assert.Equal(t, []string{"avec", "dans"}, lemmas(result.Partitions[1].Records))

	assert.Equal(t, OtherPartition, result.Other.Name)
	assert.Equal(t, []string{"et", "ah"}, lemmas(result.Other.Records))
}

func TestSelect_ResolvesFormsAndSkipsVariants(t *testing.T) {
	rows := []entity.LexicalRow{
		lemmaRow("beau", entity.CategoryAdjective, 80),
		{Ortho: "belle", Lemma: "beau", Category: entity.CategoryAdjective, Gender: entity.GenderFeminine, Number: entity.NumberSingular},
		lemmaRow("bel", entity.CategoryAdjective, 10),
		{Ortho: "finir", Lemma: "finir", Category: entity.CategoryVerb, IsLemma: true, SpokenFreq: 20, InflectionCode: "inf;"},
		{Ortho: "finissant", Lemma: "finir", Category: entity.CategoryVerb, InflectionCode: "par:pre;"},
	}
	result := New(testOptions(), nil).Select(rows)

	adjectives := result.Category(entity.CategoryAdjective)
	require.Len(t, adjectives, 1)
	assert.Equal(t, "beau, belle", adjectives[0].DisplayForms())

	verbs := result.Category(entity.CategoryVerb)
	require.Len(t, verbs, 1)
	require.NotNil(t, verbs[0].Verb)
	assert.Equal(t, "finissant", verbs[0].Verb.PresentParticiple)
}

func TestSelect_VerbFormsColumnUsesParadigm(t *testing.T) {
	rows := []entity.LexicalRow{
		{Ortho: "finir", Lemma: "finir", Category: entity.CategoryVerb, IsLemma: true, SpokenFreq: 20, InflectionCode: "inf;"},
		{Ortho: "finis", Lemma: "finir", Category: entity.CategoryVerb, InflectionCode: "ind:pre:1s;ind:pre:2s;"},
		{Ortho: "fini", Lemma: "finir", Category: entity.CategoryVerb, Gender: entity.GenderMasculine, Number: entity.NumberSingular, InflectionCode: "par:pas;"},
		{Ortho: "finie", Lemma: "finir", Category: entity.CategoryVerb, Gender: entity.GenderFeminine, Number: entity.NumberSingular, InflectionCode: "par:pas;"},
		{Ortho: "finissant", Lemma: "finir", Category: entity.CategoryVerb, InflectionCode: "par:pre;"},
	}
	result := New(testOptions(), nil).Select(rows)

	verbs := result.Category(entity.CategoryVerb)
	require.Len(t, verbs, 1)
	assert.Equal(t, "finir, fini/finie (finissant)", verbs[0].DisplayForms())
}

func TestSelect_MinFrequency(t *testing.T) {
	opts := testOptions()
	opts.MinFrequency = 1
	result := New(opts, nil).Select([]entity.LexicalRow{
		lemmaRow("rare", entity.CategoryAdverb, 0.5),
		lemmaRow("souvent", entity.CategoryAdverb, 10),
	})
	assert.Equal(t, []string{"souvent"}, lemmas(result.Category(entity.CategoryAdverb)))
	assert.Equal(t, 1, result.Stats.BelowMinimum)
}
