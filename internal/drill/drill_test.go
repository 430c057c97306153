package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/entity"
)

func conjugation() []entity.ConjugationEntry {
	return []entity.ConjugationEntry{
		{Verb: "être", Frequency: 5000, Group: entity.VerbGroupThird},
		{Verb: "aller", Frequency: 900, Group: entity.VerbGroupThird},
		{Verb: "prendre", Frequency: 400, Group: entity.VerbGroupThird, Notes: "-endre (je prends)"},
		{Verb: "parler", Frequency: 300, Group: entity.VerbGroupFirst},
		{Verb: "finir", Frequency: 100, Group: entity.VerbGroupSecond},
		{Verb: "tomber", Frequency: 80, Group: entity.VerbGroupFirst},
	}
}

func TestPresent_UsesCuratedTable(t *testing.T) {
	ref := &entity.ReferenceData{IrregularVerbs: map[string]entity.IrregularVerb{
		"prendre": {Lemma: "prendre", EndingType: "-re", Notes: "-endre (je prends)"},
		"voir":    {Lemma: "voir", EndingType: "-oir"},
	}}
	present := New(conjugation(), ref).Present()

	require.Len(t, present, 7)
	assert.Equal(t, entity.PresentDrill{
		Verb: "prendre", Group: entity.VerbGroupThird, Pattern: "-re (-endre (je prends))", Frequency: 400,
	}, present[0])
	assert.Equal(t, "parler", present[1].Verb)
	assert.Equal(t, "-er régulier", present[1].Pattern)
	assert.Equal(t, "finir", present[2].Verb)
	assert.Equal(t, entity.VerbGroupSecond, present[2].Group)

	// zero-frequency verbs sort alphabetically
	assert.Equal(t, []string{"choisir", "commencer", "manger", "voir"}, []string{
		present[3].Verb, present[4].Verb, present[5].Verb, present[6].Verb,
	})
	assert.Equal(t, "-oir", present[6].Pattern)
}

func TestPresent_FallsBackToConjugationStream(t *testing.T) {
	present := New(conjugation(), nil).Present()
	assert.Equal(t, "être", present[0].Verb)
	assert.Equal(t, entity.VerbGroupThird, present[0].Group)
	assert.Len(t, present, 3+len(regularSamples))
}

func TestParticiples(t *testing.T) {
	participles := New(conjugation(), nil).Participles()
	require.Len(t, participles, len(irregularParticiples))
	assert.Equal(t, entity.ParticipleDrill{
		Verb: "être", Participle: "été", Auxiliary: "avoir", Pattern: "unique", Frequency: 5000,
	}, participles[0])
	assert.Equal(t, "prendre", participles[1].Verb)
	assert.Equal(t, "comprendre, apprendre, reprendre, surprendre", participles[1].Related)

	for _, p := range participles {
		if p.Verb == "mourir" {
			assert.Equal(t, "être", p.Auxiliary)
			assert.Equal(t, "mort", p.Participle)
		}
	}
}

func TestEtreVerbs(t *testing.T) {
	etre := New(conjugation(), nil).EtreVerbs()
	require.Len(t, etre, 17)
	assert.Equal(t, entity.EtreVerbDrill{Verb: "aller", Participle: "allé", Frequency: 900}, etre[0])
	assert.Equal(t, entity.EtreVerbDrill{Verb: "tomber", Participle: "tombé", Frequency: 80}, etre[1])
}

func TestPastParticiple(t *testing.T) {
	tests := map[string]string{
		"naître":    "né",
		"venir":     "venu",
		"arriver":   "arrivé",
		"sortir":    "sorti",
		"descendre": "",
	}
	for verb, want := range tests {
		assert.Equal(t, want, PastParticiple(verb), verb)
	}
}

func TestSubjunctiveAndFutureStems(t *testing.T) {
	drills := New(conjugation(), nil).Build()
	require.Len(t, drills.Subjunctive, 10)
	assert.Equal(t, "être", drills.Subjunctive[0].Verb)
	assert.Equal(t, "aller", drills.Subjunctive[1].Verb)

	require.Len(t, drills.FutureStems, 22)
	assert.Equal(t, entity.FutureStemDrill{Verb: "être", Stem: "ser-", Frequency: 5000}, drills.FutureStems[0])
}
