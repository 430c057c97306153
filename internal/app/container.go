package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdeck/internal/infrastructure/config"
	"github.com/eslsoft/vocdeck/internal/repository"
	"github.com/eslsoft/vocdeck/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  repository.DeckRepository
	Deck   usecase.DeckUsecase
}
