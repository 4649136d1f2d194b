package app

import (
	"log/slog"

	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract  *usecase.DeployContract
	DeployAndMint   *usecase.DeployAndMint
	ResolveContract *usecase.ResolveContract
	VerifyContract  *usecase.VerifyContract
	ListContracts   *usecase.ListContracts
	ListNetworks    *usecase.ListNetworks
	ShowConfig      *usecase.ShowConfig
	SetConfig       *usecase.SetConfig
	RemoveConfig    *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	deployAndMint *usecase.DeployAndMint,
	resolveContract *usecase.ResolveContract,
	verifyContract *usecase.VerifyContract,
	listContracts *usecase.ListContracts,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		DeployContract:  deployContract,
		DeployAndMint:   deployAndMint,
		ResolveContract: resolveContract,
		VerifyContract:  verifyContract,
		ListContracts:   listContracts,
		ListNetworks:    listNetworks,
		ShowConfig:      showConfig,
		SetConfig:       setConfig,
		RemoveConfig:    removeConfig,
	}, nil
}
