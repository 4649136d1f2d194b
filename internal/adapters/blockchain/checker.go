package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// DefaultCheckTimeout bounds each network probe
const DefaultCheckTimeout = 5 * time.Second

// CheckerAdapter implements the NetworkChecker interface over go-ethereum.
// It never signs anything.
type CheckerAdapter struct {
	dial    DialFunc
	timeout time.Duration
	log     *slog.Logger
}

// NewCheckerAdapter creates a new network checker that dials with ethclient
func NewCheckerAdapter(log *slog.Logger) *CheckerAdapter {
	return &CheckerAdapter{dial: dialEthclient, timeout: DefaultCheckTimeout, log: log}
}

// NewCheckerWithDialer creates a network checker with a custom dialer
func NewCheckerWithDialer(dial DialFunc, timeout time.Duration, log *slog.Logger) *CheckerAdapter {
	return &CheckerAdapter{dial: dial, timeout: timeout, log: log}
}

// CheckNetwork dials the RPC endpoint, verifies the chain ID and reads the
// latest block. The deployer balance is included when a key is configured.
func (c *CheckerAdapter) CheckNetwork(ctx context.Context, network *domain.NetworkProfile) (*domain.NetworkHealth, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	backend, closeFn, err := c.dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer closeFn()

	remote, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if remote.Uint64() != network.ChainID {
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, network.ChainID, remote.Uint64())
	}

	header, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block: %w", err)
	}

	health := &domain.NetworkHealth{
		ChainID:     remote.Uint64(),
		BlockNumber: header.Number.Uint64(),
	}

	// A bad key is reported by the signer column, not as an RPC failure
	if raw, err := network.PrimaryAccount(); err == nil {
		if key, err := ParsePrivateKey(raw); err == nil {
			health.Deployer = crypto.PubkeyToAddress(key.PublicKey)
			balance, err := backend.BalanceAt(ctx, health.Deployer, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to get deployer balance: %w", err)
			}
			health.Balance = balance
		}
	}

	c.log.Debug("network checked", "network", network.Name, "chain_id", health.ChainID, "block", health.BlockNumber)
	return health, nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkChecker = (*CheckerAdapter)(nil)
