package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

func newDeployContract(network *domain.NetworkProfile, repo *mockArtifactRepository, conn *mockConnector, progress ProgressSink) *DeployContract {
	cfg := &config.RuntimeConfig{NetworkName: "sepolia", Network: network}
	return NewDeployContract(cfg, newMockNetworkResolver(network), repo, conn, progress, discardLogger())
}

func TestDeployContract_Run(t *testing.T) {
	session := &mockSession{}
	conn := &mockConnector{session: session}
	progress := &recordingProgress{}
	uc := newDeployContract(testNetwork(), &mockArtifactRepository{}, conn, progress)

	result, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken"})
	require.NoError(t, err)

	assert.Equal(t, mockAddress, result.Deployment.Address)
	assert.Equal(t, "0xABc0000000000000000000000000000000000123", result.Deployment.Address.Hex())
	assert.Equal(t, mockDeployer, result.Deployment.Deployer)
	assert.Equal(t, "MyToken", result.Deployment.Name)
	assert.Equal(t, uint64(42), result.Deployment.BlockNumber.Uint64())
	assert.Equal(t, "sepolia", result.Network.Name)

	assert.Equal(t, []string{"deploy:MyToken", "wait-deploy", "close"}, session.calls)
	assert.Equal(t, []string{StageConnected, StageDeploying, StageDeployed}, progress.stages())
}

func TestDeployContract_InvalidNetworkNeverDials(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(n *domain.NetworkProfile)
		wantErr string
	}{
		{"empty rpc url", func(n *domain.NetworkProfile) { n.RPCURL = "" }, "invalid url"},
		{"zero chain id", func(n *domain.NetworkProfile) { n.ChainID = 0 }, "invalid chain_id"},
		{"bad scheme", func(n *domain.NetworkProfile) { n.RPCURL = "ftp://rpc.example.org" }, "unsupported scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network := testNetwork()
			tt.mutate(network)
			session := &mockSession{}
			conn := &mockConnector{session: session}
			uc := newDeployContract(network, &mockArtifactRepository{}, conn, NopProgress{})

			_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidNetworkConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, conn.connectedTo)
			assert.Empty(t, session.calls)
		})
	}
}

func TestDeployContract_MissingEnvIsReported(t *testing.T) {
	network := testNetwork()
	network.RPCURL = ""
	resolver := newMockNetworkResolver(network)
	resolver.missingEnv["sepolia"] = []string{"SEPOLIA_RPC_URL"}

	uc := NewDeployContract(&config.RuntimeConfig{NetworkName: "sepolia"}, resolver, &mockArtifactRepository{}, &mockConnector{session: &mockSession{}}, NopProgress{}, discardLogger())

	_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEPOLIA_RPC_URL")
}

func TestDeployContract_Errors(t *testing.T) {
	t.Run("unknown network", func(t *testing.T) {
		uc := newDeployContract(testNetwork(), &mockArtifactRepository{}, &mockConnector{session: &mockSession{}}, NopProgress{})
		_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken", Network: "mainnet"})
		assert.True(t, errors.Is(err, domain.ErrUnknownNetwork))
	})

	t.Run("contract not found", func(t *testing.T) {
		repo := &mockArtifactRepository{getFactoryFunc: func(ctx context.Context, name string) (*domain.ContractFactory, error) {
			return nil, &domain.ContractNotFoundError{Name: name}
		}}
		conn := &mockConnector{session: &mockSession{}}
		uc := newDeployContract(testNetwork(), repo, conn, NopProgress{})

		_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken"})
		assert.True(t, errors.Is(err, domain.ErrContractNotFound))
		assert.Empty(t, conn.connectedTo)
	})

	t.Run("constructor args mismatch", func(t *testing.T) {
		conn := &mockConnector{session: &mockSession{}}
		uc := newDeployContract(testNetwork(), &mockArtifactRepository{}, conn, NopProgress{})

		_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken", Args: []string{"1"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid constructor arguments")
		assert.Empty(t, conn.connectedTo)
	})

	t.Run("connect failure", func(t *testing.T) {
		conn := &mockConnector{connectErr: fmt.Errorf("%w: expects 11155111", domain.ErrChainIDMismatch)}
		uc := newDeployContract(testNetwork(), &mockArtifactRepository{}, conn, NopProgress{})

		_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken"})
		assert.True(t, errors.Is(err, domain.ErrChainIDMismatch))
	})

	t.Run("submission failure closes the session", func(t *testing.T) {
		session := &mockSession{deployFunc: func(ctx context.Context, f *domain.ContractFactory, args ...any) (*domain.PendingTransaction, error) {
			return nil, errors.New("insufficient funds for gas * price + value")
		}}
		uc := newDeployContract(testNetwork(), &mockArtifactRepository{}, &mockConnector{session: session}, NopProgress{})

		_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient funds")
		assert.Equal(t, []string{"deploy:MyToken", "close"}, session.calls)
	})

	t.Run("reverted deployment", func(t *testing.T) {
		session := &mockSession{waitDeployFn: func(ctx context.Context, p *domain.PendingTransaction) (*domain.Receipt, error) {
			return nil, domain.ErrTransactionReverted
		}}
		progress := &recordingProgress{}
		uc := newDeployContract(testNetwork(), &mockArtifactRepository{}, &mockConnector{session: session}, progress)

		_, err := uc.Run(context.Background(), DeployContractParams{ContractName: "MyToken"})
		assert.True(t, errors.Is(err, domain.ErrTransactionReverted))
		assert.NotContains(t, progress.stages(), StageDeployed)
	})
}
