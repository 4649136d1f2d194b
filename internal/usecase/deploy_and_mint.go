package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// DefaultMintMethod is the mint entry point of the MyNFT contract
const DefaultMintMethod = "mintNFT"

// transferEventSig is keccak256("Transfer(address,address,uint256)")
var transferEventSig = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// DeployAndMintParams contains parameters for the deploy and mint flow
type DeployAndMintParams struct {
	ContractName string
	Network      string
	// TokenURI defaults to the configured token URI
	TokenURI string
	// Method defaults to DefaultMintMethod; it is called as method(recipient, tokenURI)
	Method string
	// Recipient defaults to the deployer
	Recipient *common.Address
}

// DeployAndMintResult contains the deployed contract and the minted token
type DeployAndMintResult struct {
	Network        *domain.NetworkProfile   `json:"network" yaml:"network"`
	Deployment     *domain.DeployedContract `json:"deployment" yaml:"deployment"`
	Token          *domain.MintedToken      `json:"token" yaml:"token"`
	MarketplaceURL string                   `json:"marketplaceUrl,omitempty" yaml:"marketplaceUrl,omitempty"`
}

// DeployAndMint deploys an ERC-721 contract and mints one token on it after
// the deployment is confirmed.
type DeployAndMint struct {
	cfg       *config.RuntimeConfig
	networks  NetworkResolver
	artifacts ArtifactRepository
	connector ChainConnector
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployAndMint creates a new DeployAndMint use case
func NewDeployAndMint(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	artifacts ArtifactRepository,
	connector ChainConnector,
	progress ProgressSink,
	log *slog.Logger,
) *DeployAndMint {
	return &DeployAndMint{
		cfg:       cfg,
		networks:  networks,
		artifacts: artifacts,
		connector: connector,
		progress:  progress,
		log:       log,
	}
}

// Run executes deploy, confirmation, mint and mint confirmation in order
func (uc *DeployAndMint) Run(ctx context.Context, params DeployAndMintParams) (*DeployAndMintResult, error) {
	tokenURI := params.TokenURI
	if tokenURI == "" {
		tokenURI = uc.cfg.TokenURI
	}
	method := params.Method
	if method == "" {
		method = DefaultMintMethod
	}

	network, err := resolveValidNetwork(ctx, uc.cfg, uc.networks, params.Network)
	if err != nil {
		return nil, err
	}

	factory, err := uc.artifacts.GetFactory(ctx, params.ContractName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contract %s: %w", params.ContractName, err)
	}
	if _, ok := factory.ABI.Methods[method]; !ok {
		return nil, fmt.Errorf("%s.%s: %w", factory.Name, method, domain.ErrMethodNotFound)
	}

	session, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	deployer := session.Deployer()
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageConnected, Metadata: deployer})

	deployed, err := deploy(ctx, session, factory, uc.progress)
	if err != nil {
		return nil, err
	}

	recipient := deployer
	if params.Recipient != nil {
		recipient = *params.Recipient
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageMinting, Message: tokenURI, Spinner: true})

	pending, err := session.Transact(ctx, deployed.Address, factory.ABI, method, recipient, tokenURI)
	if err != nil {
		return nil, err
	}
	receipt, err := session.WaitMined(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("mint failed: %w", err)
	}

	token := &domain.MintedToken{
		Contract: deployed.Address,
		TokenID:  MintedTokenID(receipt, deployed.Address),
		TokenURI: tokenURI,
		TxHash:   receipt.TxHash,
		Owner:    recipient,
	}
	uc.log.Debug("minted", "contract", token.Contract.Hex(), "token_id", token.TokenID, "tx", token.TxHash.Hex())

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageMinted, Message: tokenURI, Metadata: token})

	return &DeployAndMintResult{
		Network:        network,
		Deployment:     deployed,
		Token:          token,
		MarketplaceURL: network.TokenURL(deployed.Address.Hex(), token.TokenID.String()),
	}, nil
}

// MintedTokenID reads the token ID from the ERC-721 Transfer log emitted by
// contract. Without such a log it returns 0, the first ID of a fresh collection.
func MintedTokenID(receipt *domain.Receipt, contract common.Address) *big.Int {
	for _, l := range receipt.Logs {
		if l == nil || l.Address != contract || len(l.Topics) != 4 {
			continue
		}
		if l.Topics[0] == transferEventSig {
			return new(big.Int).SetBytes(l.Topics[3].Bytes())
		}
	}
	return big.NewInt(0)
}
