package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/entity"
)

func record(lemma string, cat entity.Category, freq float64, forms entity.ResolvedForms) entity.LemmaRecord {
	forms.Lemma = lemma
	return entity.LemmaRecord{
		Key:       entity.NewLemmaKey(lemma, cat),
		Lemma:     lemma,
		Category:  cat,
		Gender:    entity.GenderMasculine,
		Frequency: freq,
		Forms:     forms,
	}
}

func pair(masc, fem string) entity.ResolvedForms {
	return entity.ResolvedForms{
		MascSingular: masc,
		FemSingular:  fem,
		Observed: map[entity.Cell]string{
			{Gender: entity.GenderMasculine, Number: entity.NumberSingular}: masc,
			{Gender: entity.GenderFeminine, Number: entity.NumberSingular}:  fem,
		},
	}
}

func TestBuild_Adjectives(t *testing.T) {
	records := []entity.LemmaRecord{
		record("petit", entity.CategoryAdjective, 300, pair("petit", "petite")),
		record("heureux", entity.CategoryAdjective, 80, pair("heureux", "heureuse")),
		record("beau", entity.CategoryAdjective, 200, pair("beau", "belle")),
		record("rare", entity.CategoryAdjective, 0.1, pair("vieux", "vieille")),
	}
	set, stats := New(entity.DefaultPipelineOptions(), nil).Build(records)

	require.Len(t, set.Adjectives, 2)
	assert.Equal(t, "beau", set.Adjectives[0].Lemma)
	assert.Equal(t, entity.AdjectiveUnique, set.Adjectives[0].Class)
	assert.Equal(t, "unique", set.Adjectives[0].Notes)
	assert.Equal(t, "heureux", set.Adjectives[1].Lemma)
	assert.Equal(t, "-eux → -euse", set.Adjectives[1].Notes)

	assert.Equal(t, 2, stats.AdjectivesClassified)
	assert.Equal(t, 1, stats.AdjectivesNeedReview)
}

func TestBuild_Verbs(t *testing.T) {
	verb := func(lemma, ppr string, freq float64) entity.LemmaRecord {
		rec := record(lemma, entity.CategoryVerb, freq, entity.ResolvedForms{})
		rec.Verb = &entity.VerbForms{Infinitive: lemma, PresentParticiple: ppr}
		return rec
	}
	set, stats := New(entity.DefaultPipelineOptions(), nil).Build([]entity.LemmaRecord{
		verb("parler", "parlant", 100),
		verb("finir", "finissant", 90),
		verb("venir", "venant", 400),
		verb("aller", "allant", 900),
	})

	require.Len(t, set.Verbs, 2)
	assert.Equal(t, entity.IrregularVerbReview{
		Lemma: "aller", Frequency: 900, PresentParticiple: "allant",
		EndingType: "-er exception", Notes: "3e groupe (-er exception)",
	}, set.Verbs[0])
	assert.Equal(t, "-ir sans -issant", set.Verbs[1].EndingType)
	assert.Equal(t, 2, stats.VerbsRegular)
	assert.Equal(t, 2, stats.VerbsIrregular)
}

func TestBuild_NounTables(t *testing.T) {
	genderless := record("livre", entity.CategoryNoun, 50, pair("livre", "livre"))
	genderless.Gender = entity.GenderNone
	genderless.Homographs = 2
	common := record("enfant", entity.CategoryNoun, 70, entity.ResolvedForms{})
	common.Gender = entity.GenderNone

	ref := &entity.ReferenceData{GenderHomographs: map[string]struct{}{"livre": {}}}
	set, stats := New(entity.DefaultPipelineOptions(), ref).Build([]entity.LemmaRecord{
		record("acteur", entity.CategoryNoun, 40, pair("acteur", "actrice")),
		record("ordinateur", entity.CategoryNoun, 60, pair("ordinateur", "")),
		record("chanteur", entity.CategoryNoun, 90, pair("chanteur", "chanteuse")),
		record("table", entity.CategoryNoun, 99, pair("", "table")),
		genderless,
		common,
	})

	require.Len(t, set.Professions, 4)
	assert.Equal(t, []string{"chanteur", "livre", "acteur", "ordinateur"}, []string{
		set.Professions[0].Lemma, set.Professions[1].Lemma, set.Professions[2].Lemma, set.Professions[3].Lemma,
	})
	assert.Equal(t, "invariable", set.Professions[1].Pattern)
	assert.Equal(t, entity.NounMascOnlyProfession, set.Professions[3].Status)
	assert.Equal(t, 3, stats.ProfessionPairs)
	assert.Equal(t, 1, stats.ProfessionsUnpaired)

	require.Len(t, set.GenderlessNouns, 2)
	assert.Equal(t, "enfant", set.GenderlessNouns[0].Lemma)
	assert.Empty(t, set.GenderlessNouns[0].Type)
	assert.Equal(t, HomographType, set.GenderlessNouns[1].Type)
	assert.Equal(t, 2, set.GenderlessNouns[1].Homographs)
	assert.Equal(t, 1, stats.GenderlessClassified)
	assert.Equal(t, 1, stats.GenderlessNeedReview)
}
