package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/catapult/internal/domain"
)

const nftABI = `[
	{"type":"function","name":"mintNFT","inputs":[{"name":"recipient","type":"address"},{"name":"tokenURI","type":"string"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}],"anonymous":false}
]`

var (
	mockDeployer = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	mockAddress  = common.HexToAddress("0xABc0000000000000000000000000000000000123")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNetwork() *domain.NetworkProfile {
	return &domain.NetworkProfile{
		Name:               "sepolia",
		RPCURL:             "https://sepolia.infura.io/v3/secret",
		Accounts:           []string{"0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"},
		ChainID:            11155111,
		ExplorerAPIURL:     "https://api-sepolia.etherscan.io/api",
		ExplorerBrowserURL: "https://sepolia.etherscan.io",
		ExplorerAPIKey:     "ETHERSCANKEY123",
		MarketplaceURL:     "https://testnet.rarible.com",
	}
}

func testFactory(name string) *domain.ContractFactory {
	parsed, err := abi.JSON(strings.NewReader(nftABI))
	if err != nil {
		panic(err)
	}
	return &domain.ContractFactory{
		Name:       name,
		SourceName: "contracts/" + name + ".sol",
		ABI:        parsed,
		Bytecode:   []byte{0x60, 0x00},
	}
}

// mockNetworkResolver is a mock implementation of NetworkResolver
type mockNetworkResolver struct {
	networks   map[string]*domain.NetworkProfile
	missingEnv map[string][]string
}

func newMockNetworkResolver(networks ...*domain.NetworkProfile) *mockNetworkResolver {
	m := &mockNetworkResolver{networks: map[string]*domain.NetworkProfile{}, missingEnv: map[string][]string{}}
	for _, n := range networks {
		m.networks[n.Name] = n
	}
	return m
}

func (m *mockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*domain.NetworkProfile, error) {
	if n, ok := m.networks[name]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNetwork, name)
}

func (m *mockNetworkResolver) GetNetworks(ctx context.Context) []string {
	var names []string
	for name := range m.networks {
		names = append(names, name)
	}
	return names
}

func (m *mockNetworkResolver) MissingEnv(ctx context.Context, name string) []string {
	return m.missingEnv[name]
}

// mockArtifactRepository is a mock implementation of ArtifactRepository
type mockArtifactRepository struct {
	getFactoryFunc func(ctx context.Context, name string) (*domain.ContractFactory, error)
	listFunc       func(ctx context.Context) ([]domain.ContractInfo, error)
	sourceFunc     func(ctx context.Context, name string) (*domain.VerificationSource, error)
}

func (m *mockArtifactRepository) GetFactory(ctx context.Context, name string) (*domain.ContractFactory, error) {
	if m.getFactoryFunc != nil {
		return m.getFactoryFunc(ctx, name)
	}
	return testFactory(name), nil
}

func (m *mockArtifactRepository) ListContracts(ctx context.Context) ([]domain.ContractInfo, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockArtifactRepository) GetVerificationSource(ctx context.Context, name string) (*domain.VerificationSource, error) {
	if m.sourceFunc != nil {
		return m.sourceFunc(ctx, name)
	}
	return &domain.VerificationSource{
		ContractName:      "contracts/" + name + ".sol:" + name,
		CompilerVersion:   "0.8.28+commit.7893614a",
		StandardJSONInput: []byte(`{"language":"Solidity"}`),
	}, nil
}

// mockSession records every call so tests can assert ordering
type mockSession struct {
	mu    sync.Mutex
	calls []string

	deployFunc   func(ctx context.Context, factory *domain.ContractFactory, args ...any) (*domain.PendingTransaction, error)
	waitDeployFn func(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error)
	transactFunc func(ctx context.Context, contract common.Address, method string, args ...any) (*domain.PendingTransaction, error)
	waitMinedFn  func(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error)

	closed bool
}

func (m *mockSession) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockSession) Deployer() common.Address { return mockDeployer }
func (m *mockSession) ChainID() uint64           { return 11155111 }

func (m *mockSession) Deploy(ctx context.Context, factory *domain.ContractFactory, args ...any) (*domain.PendingTransaction, error) {
	m.record("deploy:" + factory.Name)
	if m.deployFunc != nil {
		return m.deployFunc(ctx, factory, args...)
	}
	return &domain.PendingTransaction{Hash: common.HexToHash("0x01"), From: mockDeployer, ContractAddress: mockAddress}, nil
}

func (m *mockSession) WaitForDeployment(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error) {
	m.record("wait-deploy")
	if m.waitDeployFn != nil {
		return m.waitDeployFn(ctx, pending)
	}
	return &domain.Receipt{
		TxHash:          pending.Hash,
		BlockNumber:     big.NewInt(42),
		GasUsed:         21000,
		Status:          1,
		ContractAddress: mockAddress,
	}, nil
}

func (m *mockSession) Transact(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...any) (*domain.PendingTransaction, error) {
	m.record("transact:" + method)
	if m.transactFunc != nil {
		return m.transactFunc(ctx, contract, method, args...)
	}
	return &domain.PendingTransaction{Hash: common.HexToHash("0x02"), From: mockDeployer, To: &contract}, nil
}

func (m *mockSession) WaitMined(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error) {
	m.record("wait-mined")
	if m.waitMinedFn != nil {
		return m.waitMinedFn(ctx, pending)
	}
	return &domain.Receipt{TxHash: pending.Hash, BlockNumber: big.NewInt(43), Status: 1}, nil
}

func (m *mockSession) Close() {
	m.record("close")
	m.closed = true
}

// mockConnector is a mock implementation of ChainConnector
type mockConnector struct {
	session     *mockSession
	connectErr  error
	connectedTo []*domain.NetworkProfile
}

func (m *mockConnector) Connect(ctx context.Context, network *domain.NetworkProfile) (ChainSession, error) {
	m.connectedTo = append(m.connectedTo, network)
	if m.connectErr != nil {
		return nil, m.connectErr
	}
	return m.session, nil
}

// recordingProgress keeps every emitted stage in order
type recordingProgress struct {
	NopProgress
	events []ProgressEvent
}

func (r *recordingProgress) OnProgress(ctx context.Context, event ProgressEvent) {
	r.events = append(r.events, event)
}

func (r *recordingProgress) stages() []string {
	stages := make([]string, 0, len(r.events))
	for _, e := range r.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

// mockVerifier is a mock implementation of ContractVerifier
type mockVerifier struct {
	verifyFunc func(ctx context.Context, req VerificationRequest) (*VerificationResult, error)
	requests   []VerificationRequest
}

func (m *mockVerifier) Verify(ctx context.Context, req VerificationRequest) (*VerificationResult, error) {
	m.requests = append(m.requests, req)
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, req)
	}
	return &VerificationResult{GUID: "guid-1", Status: "Pass - Verified"}, nil
}

// mockChecker is a mock implementation of NetworkChecker
type mockChecker struct {
	checkFunc func(ctx context.Context, network *domain.NetworkProfile) (*domain.NetworkHealth, error)
	checked   []string
}

func (m *mockChecker) CheckNetwork(ctx context.Context, network *domain.NetworkProfile) (*domain.NetworkHealth, error) {
	m.checked = append(m.checked, network.Name)
	if m.checkFunc != nil {
		return m.checkFunc(ctx, network)
	}
	return &domain.NetworkHealth{ChainID: network.ChainID, BlockNumber: 1}, nil
}
