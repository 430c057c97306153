package repository

import (
	"context"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/lexicon"
)

// LexiconRepository loads the raw frequency lexicon.
type LexiconRepository interface {
	Load(ctx context.Context) (*lexicon.Lexicon, error)
}

// ReferenceRepository loads the curated lookup tables and addition lists.
// Missing optional tables yield empty lookups.
type ReferenceRepository interface {
	Load(ctx context.Context) (*entity.ReferenceData, error)
}

// OutputRepository writes the tabular pipeline outputs.
type OutputRepository interface {
	WriteCategories(ctx context.Context, partitions []entity.Partition) error
	WriteReview(ctx context.Context, set entity.ReviewSet) error
	WriteVocabulary(ctx context.Context, vocab []entity.VocabEntry) error
	WriteConjugation(ctx context.Context, conj []entity.ConjugationEntry) error
	WriteLevels(ctx context.Context, buckets []entity.LevelBucket) error
	WriteDrills(ctx context.Context, drills entity.ConjugationDrills) error
}
