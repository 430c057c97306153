package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdeck/internal/assembly"
	"github.com/eslsoft/vocdeck/internal/drill"
	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
	"github.com/eslsoft/vocdeck/internal/lexicon"
	"github.com/eslsoft/vocdeck/internal/report"
	"github.com/eslsoft/vocdeck/internal/repository"
	"github.com/eslsoft/vocdeck/internal/review"
	"github.com/eslsoft/vocdeck/internal/selection"
	"github.com/eslsoft/vocdeck/pkg/filterexpr"
)

const _maxCardLimit = 10000

// ErrNoDeckStore is returned when a store operation runs without a configured deck store.
var ErrNoDeckStore = errors.New("deck store not configured")

// DeckUsecase runs the pipeline stages and queries the persisted deck.
type DeckUsecase interface {
	Extract(ctx context.Context) (*report.Summary, error)
	Review(ctx context.Context) (*report.Summary, error)
	Build(ctx context.Context, store bool) (*report.Summary, error)
	ListCards(ctx context.Context, query *repository.ListVocabQuery) ([]entity.VocabEntry, error)
}

// DeckConfig carries the immutable pipeline options and the card filter.
type DeckConfig struct {
	Options entity.PipelineOptions
	Cards   repository.FilterOrder
}

type deckUsecase struct {
	cfg       DeckConfig
	lexicon   repository.LexiconRepository
	reference repository.ReferenceRepository
	output    repository.OutputRepository
	store     repository.DeckRepository
	logger    logrus.FieldLogger
}

// NewDeckUsecase wires the pipeline. store may be nil when no command needs it.
func NewDeckUsecase(
	cfg DeckConfig,
	lex repository.LexiconRepository,
	ref repository.ReferenceRepository,
	out repository.OutputRepository,
	store repository.DeckRepository,
	logger logrus.FieldLogger,
) DeckUsecase {
	return &deckUsecase{cfg: cfg, lexicon: lex, reference: ref, output: out, store: store, logger: logger}
}

type inputs struct {
	lex *lexicon.Lexicon
	ref *entity.ReferenceData
}

func (u *deckUsecase) load(ctx context.Context) (inputs, *report.Summary, error) {
	lex, err := u.lexicon.Load(ctx)
	if err != nil {
		return inputs{}, nil, fmt.Errorf("load lexicon: %w", err)
	}
	ref, err := u.reference.Load(ctx)
	if err != nil {
		return inputs{}, nil, fmt.Errorf("load reference tables: %w", err)
	}
	spoken, written := frequency.FromOptions(u.cfg.Options).Weights()
	summary := &report.Summary{
		LexiconRows:   len(lex.Rows),
		CoercedFields: lex.Coerced,
		SkippedRows:   lex.Skipped,
		SpokenWeight:  spoken,
		WrittenWeight: written,
	}
	return inputs{lex: lex, ref: ref}, summary, nil
}

func (u *deckUsecase) selectLemmas(in inputs, summary *report.Summary) selection.Result {
	result := selection.New(u.cfg.Options, in.ref).Select(in.lex.Rows)
	summary.Selection = &result.Stats
	for _, p := range append(result.Partitions, result.Other) {
		summary.Partitions = append(summary.Partitions, report.PartitionCount{Name: p.Name, Lemmas: len(p.Records)})
	}
	return result
}

func (u *deckUsecase) Extract(ctx context.Context) (*report.Summary, error) {
	in, summary, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	result := u.selectLemmas(in, summary)
	if err := u.output.WriteCategories(ctx, append(result.Partitions, result.Other)); err != nil {
		return nil, fmt.Errorf("write categories: %w", err)
	}
	return summary, nil
}

func (u *deckUsecase) buildReview(in inputs, summary *report.Summary) entity.ReviewSet {
	records := selection.New(u.cfg.Options, in.ref).Records(in.lex.Rows)
	set, stats := review.New(u.cfg.Options, in.ref).Build(records)
	summary.Review = &stats
	return set
}

func (u *deckUsecase) Review(ctx context.Context) (*report.Summary, error) {
	in, summary, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	set := u.buildReview(in, summary)
	if err := u.output.WriteReview(ctx, set); err != nil {
		return nil, fmt.Errorf("write review tables: %w", err)
	}
	return summary, nil
}

func (u *deckUsecase) Build(ctx context.Context, store bool) (*report.Summary, error) {
	if store && u.store == nil {
		return nil, ErrNoDeckStore
	}
	in, summary, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	result := u.selectLemmas(in, summary)

	index := in.lex.FrequencyIndex(frequency.FromOptions(u.cfg.Options))
	deck, stats := assembly.New(u.cfg.Options, in.ref, index).Assemble(result)
	summary.Assembly = &stats
	deck.Review = u.buildReview(in, summary)
	deck.Drills = drill.New(deck.Conjugation, in.ref).Build()
	drills := report.CountDrills(deck.Drills)
	summary.Drills = &drills

	vocab, err := u.applyCards(deck.Vocabulary)
	if err != nil {
		return nil, err
	}
	summary.FilteredOut = len(deck.Vocabulary) - len(vocab)
	deck.Vocabulary = vocab

	if err := u.writeDeck(ctx, deck); err != nil {
		return nil, err
	}

	if store {
		if err := u.store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate deck store: %w", err)
		}
		if err := u.store.Save(ctx, deck); err != nil {
			return nil, fmt.Errorf("save deck: %w", err)
		}
		summary.Stored = true
		u.logger.WithField("vocabulary", len(deck.Vocabulary)).Info("deck saved")
	}
	return summary, nil
}

// applyCards filters the vocabulary with cards.filter and reorders it when
// cards.order_by differs from the assembly order. Levels follow the final ranks.
func (u *deckUsecase) applyCards(vocab []entity.VocabEntry) ([]entity.VocabEntry, error) {
	filter, err := filterexpr.Compile(u.cfg.Cards.GetFilter(), repository.VocabSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidFilter, err)
	}
	order, err := filterexpr.ParseOrder(u.cfg.Cards.GetOrderBy(), repository.VocabSchema.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: order_by: %w", entity.ErrInvalidFilter, err)
	}
	defaultOrder, err := filterexpr.ParseOrder("", repository.VocabSchema.Order)
	if err != nil {
		return nil, err
	}
	if filter == nil && order == defaultOrder {
		return vocab, nil
	}

	kept := make([]entity.VocabEntry, 0, len(vocab))
	for _, v := range vocab {
		ok, err := filter.Match(repository.VocabVars(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrInvalidFilter, err)
		}
		if ok {
			kept = append(kept, v)
		}
	}
	if order != defaultOrder {
		filterexpr.Sort(kept, order, repository.VocabValue)
	}
	assembly.AssignLevels(kept, u.cfg.Options.Levels)
	u.logger.WithFields(logrus.Fields{
		"filter":  filter.String(),
		"kept":    len(kept),
		"dropped": len(vocab) - len(kept),
	}).Info("card filter applied")
	return kept, nil
}

func (u *deckUsecase) writeDeck(ctx context.Context, deck entity.Deck) error {
	if err := u.output.WriteVocabulary(ctx, deck.Vocabulary); err != nil {
		return fmt.Errorf("write vocabulary: %w", err)
	}
	if err := u.output.WriteConjugation(ctx, deck.Conjugation); err != nil {
		return fmt.Errorf("write conjugation: %w", err)
	}
	if err := u.output.WriteLevels(ctx, assembly.SplitByLevel(deck.Vocabulary, u.cfg.Options.Levels)); err != nil {
		return fmt.Errorf("write levels: %w", err)
	}
	if err := u.output.WriteDrills(ctx, deck.Drills); err != nil {
		return fmt.Errorf("write drills: %w", err)
	}
	return nil
}

func (u *deckUsecase) ListCards(ctx context.Context, query *repository.ListVocabQuery) ([]entity.VocabEntry, error) {
	if u.store == nil {
		return nil, ErrNoDeckStore
	}
	if query == nil {
		query = &repository.ListVocabQuery{}
	}
	if query.Limit <= 0 || query.Limit > _maxCardLimit {
		query.Limit = _maxCardLimit
	}
	return u.store.ListVocabulary(ctx, query)
}
