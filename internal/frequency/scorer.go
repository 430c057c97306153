// Package frequency blends spoken and written corpus counts into one score
// and ranks items by it.
package frequency

import (
	"cmp"
	"slices"
	"strings"

	"github.com/eslsoft/vocdeck/internal/entity"
)

// Default weights favour spoken (film subtitle) frequency.
const (
	DefaultSpokenWeight  = 0.6
	DefaultWrittenWeight = 0.4
)

// Scorer computes weighted frequencies. The zero value scores everything 0;
// use NewScorer or DefaultScorer.
type Scorer struct {
	spoken  float64
	written float64
}

func NewScorer(spokenWeight, writtenWeight float64) Scorer {
	return Scorer{spoken: spokenWeight, written: writtenWeight}
}

func DefaultScorer() Scorer {
	return NewScorer(DefaultSpokenWeight, DefaultWrittenWeight)
}

// FromOptions builds a scorer from pipeline options.
func FromOptions(opts entity.PipelineOptions) Scorer {
	return NewScorer(opts.SpokenWeight, opts.WrittenWeight)
}

// Score returns spokenWeight*spoken + writtenWeight*written. Missing counts
// are passed as zero by the loader.
func (s Scorer) Score(spoken, written float64) float64 {
	return s.spoken*spoken + s.written*written
}

// Lemma scores a row by its lemma-level counts.
func (s Scorer) Lemma(row entity.LexicalRow) float64 {
	return s.Score(row.SpokenFreq, row.WrittenFreq)
}

// Form scores a row by its form-level counts.
func (s Scorer) Form(row entity.LexicalRow) float64 {
	return s.Score(row.FormSpoken, row.FormWritten)
}

// Weights returns the configured weights.
func (s Scorer) Weights() (spoken, written float64) {
	return s.spoken, s.written
}

// MeetsThreshold reports score >= threshold.
func MeetsThreshold(score, threshold float64) bool {
	return score >= threshold
}

// Rank sorts items by descending score, breaking ties alphabetically on label.
// The result does not depend on input order for distinct (score, label) pairs.
func Rank[T any](items []T, score func(T) float64, label func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		if c := cmp.Compare(score(b), score(a)); c != 0 {
			return c
		}
		return strings.Compare(label(a), label(b))
	})
}

// RankFold is Rank with a case-insensitive label comparison.
func RankFold[T any](items []T, score func(T) float64, label func(T) string) {
	Rank(items, score, func(t T) string { return strings.ToLower(label(t)) })
}
