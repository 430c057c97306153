package backup

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "github.com/eslsoft/vocdeck/internal/adapter/repository"
	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/repository"
)

type sqliteStore struct {
	dsn  string
	repo repository.DeckRepository
}

func newSQLiteStore(t *testing.T) sqliteStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "deck.db") + "?_fk=1"
	drv, err := entsql.Open(dialect.SQLite, dsn)
	require.NoError(t, err)
	drv.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { _ = drv.Close() })

	repo := adapterrepo.NewDeckRepository(drv)
	require.NoError(t, repo.Migrate(context.Background()))
	return sqliteStore{dsn: dsn, repo: repo}
}

func sampleDeck() entity.Deck {
	return entity.Deck{
		Vocabulary: []entity.VocabEntry{
			{French: "aller", WordType: "v", Source: entity.SourceLexicon, Frequency: 900.5, Category: "VER", Level: entity.LevelA1A2},
			{French: "la maison", WordType: "f", Source: entity.SourceLexicon, Frequency: 300, Category: "NOM", Level: entity.LevelA1A2},
			{French: "le chum", WordType: "m", Source: entity.SourceRegional, Priority: entity.PriorityMedium, Level: entity.LevelB1},
		},
		Conjugation: []entity.ConjugationEntry{
			{Verb: "aller", Notes: "aller, allé/allée (allant)", Frequency: 900.5, Group: entity.VerbGroupThird},
			{Verb: "finir", Frequency: 10, Group: entity.VerbGroupSecond},
		},
		Review: entity.ReviewSet{
			Verbs: []entity.IrregularVerbReview{{Lemma: "aller", EndingType: "-er exception"}},
		},
	}
}

type recordingProgress struct {
	started  map[string]int
	counts   map[string]int
	finished []string
}

func (p *recordingProgress) StartTable(table string, total int) { p.started[table] = total }
func (p *recordingProgress) Increment(table string, delta int)  { p.counts[table] += delta }
func (p *recordingProgress) FinishTable(table string)           { p.finished = append(p.finished, table) }

func TestServiceExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteStore(t)
	require.NoError(t, src.repo.Save(ctx, sampleDeck()))

	exporter, err := NewService(dialect.SQLite, src.dsn, WithBatchSize(2))
	require.NoError(t, err)

	progress := &recordingProgress{started: map[string]int{}, counts: map[string]int{}}
	var buf bytes.Buffer
	require.NoError(t, exporter.Export(ctx, &buf, WithProgressReporter(progress)))

	assert.Equal(t, map[string]int{"conjugation_cards": 2, "review_items": 1, "vocab_cards": 3}, progress.started)
	assert.Equal(t, progress.started, progress.counts)
	assert.Equal(t, []string{"conjugation_cards", "review_items", "vocab_cards"}, progress.finished)

	firstLine, _, _ := strings.Cut(buf.String(), "\n")
	var meta rawRecord
	require.NoError(t, json.Unmarshal([]byte(firstLine), &meta))
	assert.Equal(t, metaType, meta.Type)
	assert.Equal(t, formatVersion, meta.Version)
	assert.Equal(t, exporter.schemaHash, meta.EntSchemaHash)

	dst := newSQLiteStore(t)
	// stale content is replaced by the snapshot
	require.NoError(t, dst.repo.Save(ctx, entity.Deck{Vocabulary: []entity.VocabEntry{{French: "vieux", WordType: "adj"}}}))

	importer, err := NewService(dialect.SQLite, dst.dsn)
	require.NoError(t, err)
	require.NoError(t, importer.Import(ctx, bytes.NewReader(buf.Bytes())))

	want, err := src.repo.ListVocabulary(ctx, nil)
	require.NoError(t, err)
	got, err := dst.repo.ListVocabulary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// a second export of the restored store carries identical rows
	var again bytes.Buffer
	require.NoError(t, importer.Export(ctx, &again))
	assert.Equal(t, rowLines(t, buf.Bytes()), rowLines(t, again.Bytes()))
}

func TestServiceExportWithTables(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteStore(t)
	require.NoError(t, src.repo.Save(ctx, sampleDeck()))

	svc, err := NewService(dialect.SQLite, src.dsn)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf, WithTables([]string{"conjugation_cards"})))

	lines := rowLines(t, buf.Bytes())
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"type":"conjugation_cards"`)
	}

	err = svc.Export(ctx, &buf, WithTables([]string{"words"}))
	assert.ErrorContains(t, err, "unsupported table")
}

func TestServiceImportRejectsBadSnapshots(t *testing.T) {
	ctx := context.Background()
	dst := newSQLiteStore(t)
	svc, err := NewService(dialect.SQLite, dst.dsn)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{
			name:  "rows before meta",
			input: `{"type":"vocab_cards","payload":{"id":1,"french":"x"}}` + "\n",
			msg:   "meta record must come first",
		},
		{
			name:  "missing meta",
			input: "\n",
			msg:   "missing meta record",
		},
		{
			name:  "schema drift",
			input: `{"type":"meta","version":1,"ent_schema_hash":"other"}` + "\n",
			err:   ErrSchemaMismatch,
		},
		{
			name:  "unknown version",
			input: `{"type":"meta","version":9}` + "\n",
			msg:   "unsupported format version",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Import(ctx, strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestServiceImportMerge(t *testing.T) {
	ctx := context.Background()
	dst := newSQLiteStore(t)
	require.NoError(t, dst.repo.Save(ctx, entity.Deck{Vocabulary: []entity.VocabEntry{
		{French: "aller", WordType: "v"},
		{French: "vieux", WordType: "adj"},
	}}))

	svc, err := NewService(dialect.SQLite, dst.dsn)
	require.NoError(t, err)
	snapshot := `{"type":"meta","version":1,"ent_schema_hash":"` + svc.schemaHash + `","tables":["vocab_cards"]}` + "\n" +
		`{"type":"vocab_cards","payload":{"id":1,"french":"partir","word_type":"v","notes":"","source":"Lexique383","frequency":12.5,"category":"VER","priority":"","level":"a1_a2"}}` + "\n"
	require.NoError(t, svc.Import(ctx, strings.NewReader(snapshot), WithMerge()))

	got, err := dst.repo.ListVocabulary(ctx, &repository.ListVocabQuery{FilterOrder: repository.FilterOrder{OrderBy: "text"}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "partir", got[0].French)
	assert.Equal(t, 12.5, got[0].Frequency)
	assert.Equal(t, "vieux", got[1].French)
}

func TestNewServiceValidation(t *testing.T) {
	_, err := NewService("", "file:x")
	assert.Error(t, err)
	_, err = NewService("mysql", "root@/deck")
	assert.ErrorContains(t, err, "unsupported driver")
	_, err = NewService(dialect.SQLite, " ")
	assert.Error(t, err)
}

func TestBuildPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"$1", "$2"}, buildPlaceholders("pgx", 2))
	assert.Equal(t, []string{"?", "?"}, buildPlaceholders("sqlite3", 2))
}

func rowLines(t *testing.T, data []byte) []string {
	t.Helper()
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.Contains(line, `"type":"meta"`) {
			continue
		}
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}
