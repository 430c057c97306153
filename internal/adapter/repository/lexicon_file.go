package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/lexicon"
	"github.com/eslsoft/vocdeck/internal/repository"
)

type lexiconFile struct {
	path   string
	logger logrus.FieldLogger
}

// NewLexiconFile loads the tab-separated lexicon at path.
func NewLexiconFile(path string, logger logrus.FieldLogger) repository.LexiconRepository {
	return &lexiconFile{path: path, logger: logger}
}

func (r *lexiconFile) Load(ctx context.Context) (*lexicon.Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", entity.ErrLexiconNotFound, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	lex, err := lexicon.Parse(f, filepath.Base(r.path))
	if err != nil {
		return nil, err
	}

	log := r.logger.WithFields(logrus.Fields{"file": r.path, "rows": len(lex.Rows)})
	if lex.Coerced > 0 || lex.Skipped > 0 {
		log.WithFields(logrus.Fields{"coerced": lex.Coerced, "skipped": lex.Skipped}).
			Warn("lexicon contained malformed cells")
	}
	log.Info("lexicon loaded")
	return lex, nil
}
