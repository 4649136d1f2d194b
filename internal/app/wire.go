//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/catapult/internal/adapters"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/logging"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(cfg *config.RuntimeConfig, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewDeployAndMint,
		usecase.NewResolveContract,
		usecase.NewVerifyContract,
		usecase.NewListContracts,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
