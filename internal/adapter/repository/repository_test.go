package repository

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/repository"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestDecodeTable(t *testing.T) {
	rows, err := decodeTable(strings.NewReader("\ufefflemme, notes\nonze,\"11, nombre\"\ndouze\n"), "numerals.csv", "lemme")
	require.NoError(t, err)
	assert.Equal(t, []tableRow{
		{"lemme": "onze", "notes": "11, nombre"},
		{"lemme": "douze", "notes": ""},
	}, rows)

	_, err = decodeTable(strings.NewReader("word\nx\n"), "blacklist.csv", "lemme")
	var missing *entity.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"lemme"}, missing.Columns)
	assert.ErrorIs(t, err, entity.ErrMissingColumns)
}

func TestReferenceFiles_Load(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	additions := filepath.Join(dir, "additions")
	writeFile(t, filepath.Join(data, BlacklistFile), "lemme\nCon\n")
	writeFile(t, filepath.Join(data, IrregularVerbsFile),
		"lemme,freqlem,participe_present,ending_type,notes\nprendre,1000,prenant,-re,-endre\nvoir,n/a,voyant,-oir,\n")
	writeFile(t, filepath.Join(additions, ProfessionFormsFile), "lemme,lemme_m,freqlem,notes\nautrice,auteur,1.5,fém. de auteur\n")

	logger, hook := test.NewNullLogger()
	ref, err := NewReferenceFiles(data, additions, logger).Load(context.Background())
	require.NoError(t, err)

	assert.True(t, ref.IsBlacklisted("con"))
	assert.Equal(t, "prenant", ref.IrregularVerbs["prendre"].PresentParticiple)
	assert.Equal(t, 1000.0, ref.IrregularVerbs["prendre"].Frequency)
	assert.Zero(t, ref.IrregularVerbs["voir"].Frequency)
	assert.Equal(t, []entity.ProfessionForm{{Lemma: "autrice", Masculine: "auteur", Frequency: 1.5, Notes: "fém. de auteur"}}, ref.Professions)
	assert.Empty(t, ref.Regional)
	assert.NotNil(t, ref.GenderHomographs)

	var missing, coerced int
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "reference table not found, using an empty lookup":
			missing++
		case "malformed number coerced to zero":
			coerced++
		}
	}
	assert.Equal(t, 4, missing)
	assert.Equal(t, 1, coerced)
}

func TestReferenceFiles_MissingColumnIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, RegionalFile), "mot,pos\nchum,n. m.\n")

	logger, _ := test.NewNullLogger()
	_, err := NewReferenceFiles(dir, dir, logger).Load(context.Background())
	assert.ErrorIs(t, err, entity.ErrMissingColumns)
}

func TestLexiconFile_NotFound(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewLexiconFile(filepath.Join(t.TempDir(), "missing.tsv"), logger).Load(context.Background())
	assert.ErrorIs(t, err, entity.ErrLexiconNotFound)
}

func TestOutputFiles(t *testing.T) {
	dir := t.TempDir()
	logger, _ := test.NewNullLogger()
	out := NewOutputFiles(filepath.Join(dir, "categories"), filepath.Join(dir, "output"), logger)
	ctx := context.Background()

	require.NoError(t, out.WriteCategories(ctx, []entity.Partition{{
		Name: "ADJ_num",
		Records: []entity.LemmaRecord{
			{Lemma: "deux", Category: "ADJ:num", Frequency: 1234.567, Homographs: 1},
		},
	}, {
		Name: "VER",
		Records: []entity.LemmaRecord{{
			Lemma:     "finir",
			Category:  entity.CategoryVerb,
			Frequency: 20,
			Forms:     entity.ResolvedForms{Display: "fini, finie"},
			Verb:      &entity.VerbForms{Display: "finir, fini/finie (finissant)"},
		}},
	}}))
	assert.Equal(t, [][]string{
		{"lemme", "cgram", "genre", "freqlem", "forms", "nbhomogr"},
		{"deux", "ADJ:num", "", "1234.57", "deux", "1"},
	}, readCSV(t, filepath.Join(dir, "categories", "ADJ_num.csv")))
	assert.Equal(t, "finir, fini/finie (finissant)", readCSV(t, filepath.Join(dir, "categories", "VER.csv"))[1][4])

	require.NoError(t, out.WriteConjugation(ctx, []entity.ConjugationEntry{
		{Verb: "finir", Notes: "finir, fini/finie (finissant)", Frequency: 10, Group: entity.VerbGroupSecond},
	}))
	assert.Equal(t, []string{"finir", "finir, fini/finie (finissant)", "10.00", "2e groupe"},
		readCSV(t, filepath.Join(dir, "output", ConjugationFile))[1])

	require.NoError(t, out.WriteLevels(ctx, []entity.LevelBucket{
		{Level: entity.LevelB1, Entries: []entity.VocabEntry{{French: "la maison", WordType: "f", Source: entity.SourceLexicon}}},
		{Level: entity.LevelOther},
	}))
	assert.Len(t, readCSV(t, filepath.Join(dir, "output", "levels", "b1.csv")), 2)
	assert.Len(t, readCSV(t, filepath.Join(dir, "output", "levels", "autres.csv")), 1)

	require.NoError(t, out.WriteReview(ctx, entity.ReviewSet{
		Verbs: []entity.IrregularVerbReview{{Lemma: "prendre", Frequency: 1, PresentParticiple: "prenant", EndingType: "-re"}},
	}))
	assert.Equal(t, []string{"prendre", "1.00", "prenant", "-re", ""},
		readCSV(t, filepath.Join(dir, "output", "review", IrregularVerbsFile))[1])
}

func newSQLiteDriver(t *testing.T) dialect.Driver {
	t.Helper()
	drv, err := entsql.Open(dialect.SQLite, "file:"+filepath.Join(t.TempDir(), "deck.db")+"?_fk=1")
	require.NoError(t, err)
	drv.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { _ = drv.Close() })
	return drv
}

func TestDeckRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewDeckRepository(newSQLiteDriver(t))
	require.NoError(t, repo.Migrate(ctx))

	deck := entity.Deck{
		Vocabulary: []entity.VocabEntry{
			{French: "la maison", WordType: "f", Source: entity.SourceLexicon, Frequency: 300, Category: "NOM", Level: entity.LevelA1A2},
			{French: "aller", WordType: "v", Source: entity.SourceLexicon, Frequency: 900, Category: "VER", Level: entity.LevelA1A2},
			{French: "le chum", WordType: "m", Source: entity.SourceRegional, Priority: entity.PriorityMedium, Level: entity.LevelA1A2},
			{French: "rouge", WordType: "adj", Source: entity.SourceLexicon, Frequency: 50, Category: "ADJ", Level: entity.LevelB1},
		},
		Conjugation: []entity.ConjugationEntry{{Verb: "aller", Frequency: 900, Group: entity.VerbGroupThird}},
		Review: entity.ReviewSet{
			Verbs: []entity.IrregularVerbReview{{Lemma: "aller", EndingType: "-er exception"}},
		},
	}
	require.NoError(t, repo.Save(ctx, deck))
	// saving again replaces the previous deck
	require.NoError(t, repo.Save(ctx, deck))

	all, err := repo.ListVocabulary(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "aller", all[0].French)
	assert.Equal(t, deck.Vocabulary[2], all[3])

	filtered, err := repo.ListVocabulary(ctx, &repository.ListVocabQuery{
		FilterOrder: repository.FilterOrder{Filter: `level == "a1_a2" && word_type in ["m", "f"]`, OrderBy: "text"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"la maison", "le chum"}, []string{filtered[0].French, filtered[1].French})

	limited, err := repo.ListVocabulary(ctx, &repository.ListVocabQuery{
		FilterOrder: repository.FilterOrder{Filter: `freq >= 50`},
		Limit:       1,
	})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "aller", limited[0].French)

	_, err = repo.ListVocabulary(ctx, &repository.ListVocabQuery{FilterOrder: repository.FilterOrder{Filter: `level == "a1" || freq > 1`}})
	assert.ErrorIs(t, err, entity.ErrInvalidFilter)
}
