package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/lexicon"
	"github.com/eslsoft/vocdeck/internal/repository"
)

const lexiconFixture = "ortho\tlemme\tcgram\tgenre\tnombre\tfreqlemfilms2\tfreqlemlivres\tfreqfilms2\tfreqlivres\tinfover\tislem\tnbhomogr\n" +
	"maison\tmaison\tNOM\tf\ts\t300\t400\t250\t350\t\t1\t1\n" +
	"maisons\tmaison\tNOM\tf\tp\t300\t400\t50\t50\t\t0\t1\n" +
	"aller\taller\tVER\t\t\t900\t800\t100\t100\tinf;;\t1\t1\n" +
	"allant\taller\tVER\t\t\t900\t800\t10\t10\tpar:pre;\t0\t1\n" +
	"finir\tfinir\tVER\t\t\t100\t120\t50\t50\tinf;;\t1\t1\n" +
	"finissant\tfinir\tVER\t\t\t100\t120\t5\t5\tpar:pre;\t0\t1\n" +
	"rouge\trouge\tADJ\t\t\t80\t60\t80\t60\t\t1\t1\n" +
	"bien\tbien\tADV\t\t\t1000\t900\t1000\t900\t\t1\t1\n"

type mockLexiconRepo struct {
	err error
}

func (m *mockLexiconRepo) Load(ctx context.Context) (*lexicon.Lexicon, error) {
	if m.err != nil {
		return nil, m.err
	}
	return lexicon.Parse(strings.NewReader(lexiconFixture), "fixture.tsv")
}

type mockReferenceRepo struct {
	ref *entity.ReferenceData
}

func (m *mockReferenceRepo) Load(ctx context.Context) (*entity.ReferenceData, error) {
	if m.ref == nil {
		return &entity.ReferenceData{}, nil
	}
	return m.ref, nil
}

type mockOutputRepo struct {
	partitions  []entity.Partition
	review      *entity.ReviewSet
	vocabulary  []entity.VocabEntry
	conjugation []entity.ConjugationEntry
	levels      []entity.LevelBucket
	drills      *entity.ConjugationDrills
}

func (m *mockOutputRepo) WriteCategories(ctx context.Context, partitions []entity.Partition) error {
	m.partitions = partitions
	return nil
}
func (m *mockOutputRepo) WriteReview(ctx context.Context, set entity.ReviewSet) error {
	m.review = &set
	return nil
}
func (m *mockOutputRepo) WriteVocabulary(ctx context.Context, vocab []entity.VocabEntry) error {
	m.vocabulary = vocab
	return nil
}
func (m *mockOutputRepo) WriteConjugation(ctx context.Context, conj []entity.ConjugationEntry) error {
	m.conjugation = conj
	return nil
}
func (m *mockOutputRepo) WriteLevels(ctx context.Context, buckets []entity.LevelBucket) error {
	m.levels = buckets
	return nil
}
func (m *mockOutputRepo) WriteDrills(ctx context.Context, drills entity.ConjugationDrills) error {
	m.drills = &drills
	return nil
}

type mockDeckRepo struct {
	migrated bool
	saved    *entity.Deck
	query    *repository.ListVocabQuery
}

func (m *mockDeckRepo) Migrate(ctx context.Context) error {
	m.migrated = true
	return nil
}
func (m *mockDeckRepo) Save(ctx context.Context, deck entity.Deck) error {
	m.saved = &deck
	return nil
}
func (m *mockDeckRepo) ListVocabulary(ctx context.Context, query *repository.ListVocabQuery) ([]entity.VocabEntry, error) {
	m.query = query
	return nil, nil
}

func testDeckConfig() DeckConfig {
	opts := entity.DefaultPipelineOptions()
	opts.MinCategorySize = 1
	return DeckConfig{Options: opts}
}

func newTestDeckUsecase(cfg DeckConfig, out *mockOutputRepo, store repository.DeckRepository) DeckUsecase {
	logger, _ := test.NewNullLogger()
	return NewDeckUsecase(cfg, &mockLexiconRepo{}, &mockReferenceRepo{}, out, store, logger)
}

func vocabTexts(vocab []entity.VocabEntry) []string {
	texts := make([]string, len(vocab))
	for i, v := range vocab {
		texts[i] = v.French
	}
	return texts
}

func TestExtract_WritesPartitions(t *testing.T) {
	out := &mockOutputRepo{}
	uc := newTestDeckUsecase(testDeckConfig(), out, nil)

	summary, err := uc.Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, summary.LexiconRows)
	require.NotNil(t, summary.Selection)
	assert.Equal(t, 5, summary.Selection.Lemmas)
	require.NotEmpty(t, out.partitions)
	assert.Equal(t, "other", out.partitions[len(out.partitions)-1].Name)
	assert.Len(t, summary.Partitions, len(out.partitions))
	assert.Nil(t, summary.Assembly)
	assert.InDelta(t, 0.6, summary.SpokenWeight, 1e-9)
	assert.InDelta(t, 0.4, summary.WrittenWeight, 1e-9)

	forms := map[string]string{}
	for _, p := range out.partitions {
		for _, r := range p.Records {
			forms[r.Lemma] = r.DisplayForms()
		}
	}
	assert.Equal(t, "finir (finissant)", forms["finir"])
	assert.Equal(t, "maison, maisons", forms["maison"])
}

func TestReview_WritesReviewTables(t *testing.T) {
	out := &mockOutputRepo{}
	uc := newTestDeckUsecase(testDeckConfig(), out, nil)

	summary, err := uc.Review(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out.review)
	require.NotNil(t, summary.Review)
	assert.Equal(t, 1, summary.Review.VerbsIrregular)
	assert.Equal(t, 1, summary.Review.VerbsRegular)
	assert.Equal(t, "aller", out.review.Verbs[0].Lemma)
	assert.Nil(t, summary.Selection)
}

func TestBuild_WritesAndStoresDeck(t *testing.T) {
	out := &mockOutputRepo{}
	store := &mockDeckRepo{}
	uc := newTestDeckUsecase(testDeckConfig(), out, store)

	summary, err := uc.Build(context.Background(), true)
	require.NoError(t, err)

	assert.Contains(t, vocabTexts(out.vocabulary), "la maison")
	assert.Equal(t, "bien", out.vocabulary[0].French)
	require.Len(t, out.conjugation, 2)
	assert.Equal(t, "aller", out.conjugation[0].Verb)
	require.NotNil(t, out.drills)
	assert.NotEmpty(t, out.drills.Present)
	assert.NotEmpty(t, out.levels)

	assert.True(t, store.migrated)
	require.NotNil(t, store.saved)
	assert.Equal(t, out.vocabulary, store.saved.Vocabulary)
	assert.True(t, summary.Stored)
	assert.Zero(t, summary.FilteredOut)
	require.NotNil(t, summary.Drills)
	assert.Equal(t, len(out.drills.Present), summary.Drills.Present)
}

func TestBuild_AppliesCardFilterAndOrder(t *testing.T) {
	cfg := testDeckConfig()
	cfg.Cards = repository.FilterOrder{Filter: `word_type != "adv"`, OrderBy: "text"}
	out := &mockOutputRepo{}
	uc := newTestDeckUsecase(cfg, out, nil)

	summary, err := uc.Build(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"la maison", "rouge"}, vocabTexts(out.vocabulary))
	assert.Equal(t, 1, summary.FilteredOut)
	assert.False(t, summary.Stored)
	for _, v := range out.vocabulary {
		assert.Equal(t, entity.LevelA1A2, v.Level)
	}
}

func TestBuild_Errors(t *testing.T) {
	cfg := testDeckConfig()
	uc := newTestDeckUsecase(cfg, &mockOutputRepo{}, nil)
	_, err := uc.Build(context.Background(), true)
	assert.ErrorIs(t, err, ErrNoDeckStore)

	for _, filter := range []string{`freq >`, `source == "lexicon"`} {
		cfg.Cards.Filter = filter
		uc = newTestDeckUsecase(cfg, &mockOutputRepo{}, nil)
		_, err = uc.Build(context.Background(), false)
		assert.ErrorIs(t, err, entity.ErrInvalidFilter, filter)
	}

	logger, _ := test.NewNullLogger()
	uc = NewDeckUsecase(testDeckConfig(), &mockLexiconRepo{err: entity.ErrLexiconNotFound},
		&mockReferenceRepo{}, &mockOutputRepo{}, nil, logger)
	_, err = uc.Extract(context.Background())
	assert.True(t, errors.Is(err, entity.ErrLexiconNotFound))
}

func TestListCards_ClampsLimit(t *testing.T) {
	store := &mockDeckRepo{}
	uc := newTestDeckUsecase(testDeckConfig(), &mockOutputRepo{}, store)

	_, err := uc.ListCards(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, _maxCardLimit, store.query.Limit)

	_, err = uc.ListCards(context.Background(), &repository.ListVocabQuery{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, store.query.Limit)

	_, err = newTestDeckUsecase(testDeckConfig(), &mockOutputRepo{}, nil).ListCards(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoDeckStore)
}
