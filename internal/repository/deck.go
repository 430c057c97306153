package repository

import (
	"context"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/pkg/filterexpr"
)

// FilterOrder carries the raw card filter and order_by inputs.
type FilterOrder struct {
	Filter  string
	OrderBy string
}

func (fo *FilterOrder) GetFilter() string { return fo.Filter }

func (fo *FilterOrder) GetOrderBy() string { return fo.OrderBy }

// ListVocabQuery holds parameters for listing stored vocabulary cards.
type ListVocabQuery struct {
	FilterOrder

	Limit int
}

// DeckRepository persists assembled decks so they can be queried and snapshotted.
type DeckRepository interface {
	Migrate(ctx context.Context) error
	Save(ctx context.Context, deck entity.Deck) error
	ListVocabulary(ctx context.Context, query *ListVocabQuery) ([]entity.VocabEntry, error)
}

var cardSources = []string{
	string(entity.SourceLexicon),
	string(entity.SourceAdditions),
	string(entity.SourceWhitelist),
	string(entity.SourceRegional),
}

// VocabSchema declares the card fields usable in filters and order_by.
var VocabSchema = filterexpr.Schema{
	Fields: map[string]filterexpr.Field{
		"text":      {Kind: filterexpr.KindString, Column: "french"},
		"word_type": {Kind: filterexpr.KindString, Column: "word_type"},
		"notes":     {Kind: filterexpr.KindString, Column: "notes"},
		"source":    {Kind: filterexpr.KindString, Column: "source", Values: cardSources},
		"category":  {Kind: filterexpr.KindString, Column: "category"},
		"priority":  {Kind: filterexpr.KindString, Column: "priority"},
		"level":     {Kind: filterexpr.KindString, Column: "level"},
		"freq":      {Kind: filterexpr.KindNumber, Column: "frequency"},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "freq",
		DefaultPrimaryDesc: true,
		FallbackKey:        "text",
		Fields: map[string]filterexpr.OrderField{
			"freq":      {Column: "frequency"},
			"text":      {Column: "french"},
			"level":     {Column: "level"},
			"word_type": {Column: "word_type"},
		},
	},
}

// VocabVars exposes a card to filter evaluation.
func VocabVars(v entity.VocabEntry) map[string]any {
	return map[string]any{
		"text":      v.French,
		"word_type": string(v.WordType),
		"notes":     v.Notes,
		"source":    string(v.Source),
		"category":  string(v.Category),
		"priority":  v.Priority,
		"level":     string(v.Level),
		"freq":      v.Frequency,
	}
}

// VocabValue returns the value of an order key.
func VocabValue(v entity.VocabEntry, key string) any {
	switch key {
	case "freq":
		return v.Frequency
	case "level":
		return string(v.Level)
	case "word_type":
		return string(v.WordType)
	default:
		return v.French
	}
}
