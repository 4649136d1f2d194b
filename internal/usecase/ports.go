package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// NetworkResolver resolves configured network profiles
type NetworkResolver interface {
	ResolveNetwork(ctx context.Context, name string) (*domain.NetworkProfile, error)
	GetNetworks(ctx context.Context) []string
	// MissingEnv lists ${VAR} references of a network that were unset at load time
	MissingEnv(ctx context.Context, name string) []string
}

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	GetFactory(ctx context.Context, name string) (*domain.ContractFactory, error)
	ListContracts(ctx context.Context) ([]domain.ContractInfo, error)
	GetVerificationSource(ctx context.Context, name string) (*domain.VerificationSource, error)
}

// ChainConnector opens signing sessions against a network
type ChainConnector interface {
	Connect(ctx context.Context, network *domain.NetworkProfile) (ChainSession, error)
}

// ChainSession is a connected RPC client bound to one signing account.
// Wait methods block until the transaction is mined or ctx is done.
type ChainSession interface {
	Deployer() common.Address
	ChainID() uint64
	Deploy(ctx context.Context, factory *domain.ContractFactory, args ...any) (*domain.PendingTransaction, error)
	WaitForDeployment(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error)
	Transact(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...any) (*domain.PendingTransaction, error)
	WaitMined(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error)
	Close()
}

// NetworkChecker probes a network's RPC endpoint without signing
type NetworkChecker interface {
	CheckNetwork(ctx context.Context, network *domain.NetworkProfile) (*domain.NetworkHealth, error)
}

// ContractVerifier submits source verification to a block explorer
type ContractVerifier interface {
	Verify(ctx context.Context, req VerificationRequest) (*VerificationResult, error)
}

// ContractSelector lets the user pick a contract interactively
type ContractSelector interface {
	SelectContract(ctx context.Context, contracts []domain.ContractInfo, prompt string) (*domain.ContractInfo, error)
}

// LocalConfigStore persists per-project defaults
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// Stages emitted by the deployment use cases
const (
	StageConnected = "connected" // Metadata: common.Address of the deployer
	StageDeploying = "deploying" // Message: contract name
	StageDeployed  = "deployed"  // Metadata: *domain.DeployedContract
	StageMinting   = "minting"   // Message: token URI
	StageMinted    = "minted"    // Metadata: *domain.MintedToken
	StageVerifying = "verifying" // Message: explorer status
	StageVerified  = "verified"
)

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// VerificationRequest describes one explorer verification
type VerificationRequest struct {
	Network         *domain.NetworkProfile
	Address         common.Address
	Source          *domain.VerificationSource
	ConstructorArgs string // hex without 0x
}

// VerificationResult is the final explorer answer
type VerificationResult struct {
	GUID            string `json:"guid,omitempty" yaml:"guid,omitempty"`
	Status          string `json:"status" yaml:"status"`
	AlreadyVerified bool   `json:"alreadyVerified" yaml:"alreadyVerified"`
	ExplorerURL     string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
}
