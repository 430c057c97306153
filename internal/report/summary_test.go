package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/assembly"
	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/review"
	"github.com/eslsoft/vocdeck/internal/selection"
)

func TestSummaryRender_ExtractOnly(t *testing.T) {
	s := &Summary{
		LexiconRows:   142694,
		CoercedFields: 3,
		SpokenWeight:  0.6,
		WrittenWeight: 0.4,
		Partitions:    []PartitionCount{{Name: "NOM", Lemmas: 10000}, {Name: selection.OtherPartition, Lemmas: 42}},
		Selection:     &selection.Stats{Lemmas: 47342, Blacklisted: 5, NumeralsInLexicon: 30, NumeralsSynthesized: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "lexicon")
	assert.Regexp(t, `rows\s+142694`, out)
	assert.Contains(t, out, "0.6 × spoken + 0.4 × written")
	assert.Regexp(t, `partition NOM\s+10000`, out)
	assert.Contains(t, out, "30 in lexicon / 2 synthesized")
	assert.NotContains(t, out, "review")
	assert.NotContains(t, out, "cards")
	assert.NotContains(t, out, "deck store")
}

func TestSummaryRender_FullBuild(t *testing.T) {
	drills := CountDrills(entity.ConjugationDrills{
		Present:   []entity.PresentDrill{{Verb: "aller"}, {Verb: "parler"}},
		EtreVerbs: []entity.EtreVerbDrill{{Verb: "aller"}},
	})
	s := &Summary{
		Review:      &review.Stats{AdjectivesClassified: 10, AdjectivesNeedReview: 4},
		Assembly:    &assembly.Stats{VocabularyCards: 120, RegionalMatched: 7, RegionalUnmatched: 1},
		Drills:      &drills,
		FilteredOut: 6,
		Stored:      true,
	}
	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "10 classified / 4 need review")
	assert.Contains(t, out, "7 matched / 1 unmatched")
	assert.Regexp(t, `removed by cards.filter\s+6`, out)
	assert.Regexp(t, `present\s+2`, out)
	assert.Regexp(t, `etre verbs\s+1`, out)
	assert.Contains(t, out, "deck store")
	assert.NotContains(t, out, "selection")
	assert.NotContains(t, out, "× spoken")
}
