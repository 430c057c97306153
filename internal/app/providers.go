package app

import (
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/vocdeck/internal/adapter/repository"
	"github.com/eslsoft/vocdeck/internal/infrastructure/config"
	"github.com/eslsoft/vocdeck/internal/repository"
	"github.com/eslsoft/vocdeck/internal/usecase"
)

func provideLexiconRepository(cfg *config.Config, logger logrus.FieldLogger) repository.LexiconRepository {
	return adapterrepo.NewLexiconFile(cfg.Lexicon.Path, logger)
}

func provideReferenceRepository(cfg *config.Config, logger logrus.FieldLogger) repository.ReferenceRepository {
	return adapterrepo.NewReferenceFiles(cfg.Paths.DataDir, cfg.Paths.AdditionsDir, logger)
}

func provideOutputRepository(cfg *config.Config, logger logrus.FieldLogger) repository.OutputRepository {
	return adapterrepo.NewOutputFiles(cfg.Paths.CategoriesDir, cfg.Paths.OutputDir, logger)
}

// provideNoDeckStore leaves the store unset for file-only commands.
func provideNoDeckStore() repository.DeckRepository {
	return nil
}

func provideDeckConfig(cfg *config.Config) usecase.DeckConfig {
	return usecase.DeckConfig{
		Options: cfg.Pipeline(),
		Cards:   repository.FilterOrder{Filter: cfg.Cards.Filter, OrderBy: cfg.Cards.OrderBy},
	}
}
