//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/vocdeck/internal/adapter/repository"
	"github.com/eslsoft/vocdeck/internal/infrastructure/config"
	"github.com/eslsoft/vocdeck/internal/infrastructure/database"
	"github.com/eslsoft/vocdeck/internal/infrastructure/logger"
	"github.com/eslsoft/vocdeck/internal/usecase"
)

var loggerSet = wire.NewSet(
	logger.New,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var fileRepositorySet = wire.NewSet(
	provideLexiconRepository,
	provideReferenceRepository,
	provideOutputRepository,
)

var databaseSet = wire.NewSet(
	database.NewDriver,
	adapterrepo.NewDeckRepository,
)

var usecaseSet = wire.NewSet(
	provideDeckConfig,
	usecase.NewDeckUsecase,
)

// InitializePipeline builds a container for commands that only touch files.
func InitializePipeline(cfg *config.Config) (*Container, error) {
	wire.Build(
		loggerSet,
		fileRepositorySet,
		provideNoDeckStore,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}

// InitializeWithStore builds a container bound to the configured deck store.
func InitializeWithStore(cfg *config.Config) (*Container, func(), error) {
	wire.Build(
		loggerSet,
		fileRepositorySet,
		databaseSet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
