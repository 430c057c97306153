package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Structural errors. Everything else is absorbed per record.
var (
	ErrLexiconNotFound   = errors.New("lexicon file not found")
	ErrMissingColumns    = errors.New("lexicon is missing required columns")
	ErrEmptyLexicon      = errors.New("lexicon has no header row")
	ErrEmptyLemmaGroup   = errors.New("lemma group is empty")
	ErrMixedLemmaGroup   = errors.New("lemma group mixes lemmas or categories")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrInvalidFilter     = errors.New("invalid card filter")
)

// MissingColumnsError names the required columns absent from a table header.
type MissingColumnsError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Source, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}
