package usecase

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// VerifyContractParams contains parameters for explorer verification
type VerifyContractParams struct {
	Address      string
	ContractName string
	Network      string
	// ConstructorArgs is the ABI-encoded constructor input, hex with or without 0x
	ConstructorArgs string
}

// VerifyContractResult contains the verification outcome
type VerifyContractResult struct {
	Network      *domain.NetworkProfile `json:"network" yaml:"network"`
	Address      common.Address         `json:"address" yaml:"address"`
	ContractName string                 `json:"contractName" yaml:"contractName"`
	Compiler     string                 `json:"compiler" yaml:"compiler"`
	Verification *VerificationResult    `json:"verification" yaml:"verification"`
}

// VerifyContract submits a deployed contract's source to the network's explorer
type VerifyContract struct {
	cfg       *config.RuntimeConfig
	networks  NetworkResolver
	artifacts ArtifactRepository
	verifier  ContractVerifier
	progress  ProgressSink
}

// NewVerifyContract creates a new VerifyContract use case
func NewVerifyContract(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	artifacts ArtifactRepository,
	verifier ContractVerifier,
	progress ProgressSink,
) *VerifyContract {
	return &VerifyContract{
		cfg:       cfg,
		networks:  networks,
		artifacts: artifacts,
		verifier:  verifier,
		progress:  progress,
	}
}

// Run executes the verification
func (uc *VerifyContract) Run(ctx context.Context, params VerifyContractParams) (*VerifyContractResult, error) {
	if !common.IsHexAddress(params.Address) {
		return nil, fmt.Errorf("invalid contract address %q", params.Address)
	}
	address := common.HexToAddress(params.Address)

	constructorArgs := strings.TrimPrefix(strings.TrimSpace(params.ConstructorArgs), "0x")
	if _, err := hex.DecodeString(constructorArgs); err != nil {
		return nil, fmt.Errorf("constructor args must be ABI-encoded hex: %w", err)
	}

	network, err := resolveValidNetwork(ctx, uc.cfg, uc.networks, params.Network)
	if err != nil {
		return nil, err
	}
	if network.ExplorerAPIURL == "" {
		return nil, fmt.Errorf("network %s has no explorer API URL: %w", network.Name, domain.ErrVerificationUnavailable)
	}
	if network.ExplorerAPIKey == "" {
		return nil, fmt.Errorf("network %s has no explorer API key (set ETHERSCAN_API_KEY): %w", network.Name, domain.ErrVerificationUnavailable)
	}

	source, err := uc.artifacts.GetVerificationSource(ctx, params.ContractName)
	if err != nil {
		return nil, fmt.Errorf("failed to load sources for %s: %w", params.ContractName, err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageVerifying,
		Message: fmt.Sprintf("Verifying %s at %s", source.ContractName, address.Hex()),
		Spinner: true,
	})

	verification, err := uc.verifier.Verify(ctx, VerificationRequest{
		Network:         network,
		Address:         address,
		Source:          source,
		ConstructorArgs: constructorArgs,
	})
	if err != nil {
		return nil, err
	}
	if url := network.AddressURL(address.Hex()); url != "" {
		verification.ExplorerURL = url + "#code"
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageVerified, Message: verification.Status, Metadata: verification})

	return &VerifyContractResult{
		Network:      network,
		Address:      address,
		ContractName: source.ContractName,
		Compiler:     source.CompilerVersion,
		Verification: verification,
	}, nil
}
