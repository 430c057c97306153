package lexicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
)

const header = "ortho\tlemme\tcgram\tgenre\tnombre\tfreqlemfilms2\tfreqlemlivres\tfreqfilms2\tfreqlivres\tinfover\tislem\tnbhomogr"

func TestParse_Rows(t *testing.T) {
	input := strings.Join([]string{
		header,
		"maison\tmaison\tNOM\tf\ts\t100.5\t200\t90\t150\t\t1\t1",
		"maisons\tmaison\tNOM\tf\tp\t100.5\t200\t10\t50\t\t0\t1",
		"finissant\tfinir\tVER\t\t\t40\t30\t1.2\t0.8\tpar:pre;\t0\t1",
	}, "\n")

	lex, err := Parse(strings.NewReader(input), "test.tsv")
	require.NoError(t, err)
	require.Len(t, lex.Rows, 3)
	assert.Zero(t, lex.Coerced)

	first := lex.Rows[0]
	assert.Equal(t, "maison", first.Ortho)
	assert.Equal(t, entity.CategoryNoun, first.Category)
	assert.Equal(t, entity.GenderFeminine, first.Gender)
	assert.Equal(t, entity.NumberSingular, first.Number)
	assert.True(t, first.IsLemma)
	assert.InDelta(t, 100.5, first.SpokenFreq, 1e-9)
	assert.InDelta(t, 90.0, first.FormSpoken, 1e-9)

	verb := lex.Rows[2]
	assert.Equal(t, entity.GenderNone, verb.Gender)
	assert.Equal(t, entity.NumberNone, verb.Number)
	assert.True(t, verb.HasInflection(entity.InflectionPresentParticiple))
	assert.False(t, verb.HasInflection(entity.InflectionInfinitive))
}

func TestParse_MissingColumns(t *testing.T) {
	input := "ortho\tlemme\tcgram\n" + "chat\tchat\tNOM\n"

	_, err := Parse(strings.NewReader(input), "broken.tsv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrMissingColumns))
	assert.True(t, IsStructural(err))

	var mc *entity.MissingColumnsError
	require.True(t, errors.As(err, &mc))
	assert.Contains(t, mc.Columns, ColGender)
	assert.Contains(t, mc.Columns, ColHomographs)
	assert.NotContains(t, mc.Columns, ColOrtho)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""), "empty.tsv")
	assert.ErrorIs(t, err, entity.ErrEmptyLexicon)
}

func TestParse_MalformedNumbersCoerceToZero(t *testing.T) {
	input := header + "\n" + "chat\tchat\tNOM\tm\ts\tabc\t12\t\t\t\t1\tx\n"

	lex, err := Parse(strings.NewReader(input), "test.tsv")
	require.NoError(t, err)
	require.Len(t, lex.Rows, 1)
	assert.Equal(t, 2, lex.Coerced)
	assert.Zero(t, lex.Rows[0].SpokenFreq)
	assert.Zero(t, lex.Rows[0].Homographs)
	assert.InDelta(t, 12.0, lex.Rows[0].WrittenFreq, 1e-9)
}

func TestParse_NonFiniteNumbersCoerceToZero(t *testing.T) {
	input := header + "\n" +
		"chat\tchat\tNOM\tm\ts\tNaN\tInf\t+Inf\t-inf\t\t1\tNaN\n"

	lex, err := Parse(strings.NewReader(input), "test.tsv")
	require.NoError(t, err)
	require.Len(t, lex.Rows, 1)
	assert.Equal(t, 5, lex.Coerced)
	row := lex.Rows[0]
	assert.Zero(t, row.SpokenFreq)
	assert.Zero(t, row.WrittenFreq)
	assert.Zero(t, row.FormSpoken)
	assert.Zero(t, row.FormWritten)
	assert.Zero(t, row.Homographs)
}

func TestParse_OptionalColumnsAbsent(t *testing.T) {
	input := "ortho\tlemme\tcgram\tgenre\tnombre\tfreqlemfilms2\tfreqlemlivres\tislem\tnbhomogr\n" +
		"chat\tchat\tNOM\tm\ts\t5\t5\t1\t1\n" +
		"\t\tNOM\tm\ts\t5\t5\t1\t1\n"

	lex, err := Parse(strings.NewReader(input), "test.tsv")
	require.NoError(t, err)
	require.Len(t, lex.Rows, 1)
	assert.Equal(t, 1, lex.Skipped)
	assert.Empty(t, lex.Rows[0].InflectionCode)
	assert.Zero(t, lex.Rows[0].FormSpoken)
}

func TestFrequencyIndex_MaxOverLemmaAndForm(t *testing.T) {
	lex := &Lexicon{Rows: []entity.LexicalRow{
		{Ortho: "char", Lemma: "char", SpokenFreq: 10},
		{Ortho: "chars", Lemma: "char", SpokenFreq: 10},
		{Ortho: "char", Lemma: "charrue", SpokenFreq: 1},
	}}
	index := lex.FrequencyIndex(frequency.NewScorer(1, 0))
	assert.InDelta(t, 10.0, index["char"], 1e-9)
	assert.InDelta(t, 10.0, index["chars"], 1e-9)
	assert.InDelta(t, 1.0, index["charrue"], 1e-9)
}
