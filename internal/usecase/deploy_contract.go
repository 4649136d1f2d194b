package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	ContractName string
	// Network overrides the configured network when set
	Network string
	// Args are constructor arguments as given on the command line
	Args []string
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	Network    *domain.NetworkProfile   `json:"network" yaml:"network"`
	Factory    *domain.ContractFactory  `json:"contract" yaml:"contract"`
	Deployment *domain.DeployedContract `json:"deployment" yaml:"deployment"`
}

// DeployContract resolves a compiled contract, submits its creation
// transaction and waits for confirmation.
type DeployContract struct {
	cfg       *config.RuntimeConfig
	networks  NetworkResolver
	artifacts ArtifactRepository
	connector ChainConnector
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	artifacts ArtifactRepository,
	connector ChainConnector,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		cfg:       cfg,
		networks:  networks,
		artifacts: artifacts,
		connector: connector,
		progress:  progress,
		log:       log,
	}
}

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	network, err := resolveValidNetwork(ctx, uc.cfg, uc.networks, params.Network)
	if err != nil {
		return nil, err
	}

	factory, err := uc.artifacts.GetFactory(ctx, params.ContractName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contract %s: %w", params.ContractName, err)
	}

	args, err := ParseConstructorArgs(factory.ABI, params.Args)
	if err != nil {
		return nil, fmt.Errorf("invalid constructor arguments for %s: %w", factory.Name, err)
	}

	session, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageConnected, Metadata: session.Deployer()})

	deployed, err := deploy(ctx, session, factory, uc.progress, args...)
	if err != nil {
		return nil, err
	}

	return &DeployContractResult{
		Network:    network,
		Factory:    factory,
		Deployment: deployed,
	}, nil
}

// resolveValidNetwork picks the override or configured network and validates
// it before anything touches the network.
func resolveValidNetwork(ctx context.Context, cfg *config.RuntimeConfig, networks NetworkResolver, override string) (*domain.NetworkProfile, error) {
	name := override
	if name == "" {
		name = cfg.NetworkName
	}

	network, err := networks.ResolveNetwork(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := network.Validate(); err != nil {
		if missing := networks.MissingEnv(ctx, network.Name); len(missing) > 0 {
			return nil, fmt.Errorf("%w (unset: %v)", err, missing)
		}
		return nil, err
	}
	return network, nil
}

// deploy submits the creation transaction and blocks until it is confirmed
func deploy(ctx context.Context, session ChainSession, factory *domain.ContractFactory, progress ProgressSink, args ...any) (*domain.DeployedContract, error) {
	progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: factory.Name,
		Spinner: true,
	})

	pending, err := session.Deploy(ctx, factory, args...)
	if err != nil {
		return nil, err
	}

	receipt, err := session.WaitForDeployment(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("deployment of %s failed: %w", factory.Name, err)
	}

	deployed := &domain.DeployedContract{
		Name:        factory.Name,
		Address:     receipt.ContractAddress,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
		GasUsed:     receipt.GasUsed,
		Deployer:    session.Deployer(),
	}

	progress.OnProgress(ctx, ProgressEvent{
		Stage:    StageDeployed,
		Message:  deployed.Address.Hex(),
		Metadata: deployed,
	})
	return deployed, nil
}
