package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// Backend is the RPC surface a session needs. *ethclient.Client and the
// simulated backend client both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// DialFunc opens a backend for an RPC URL. The returned func releases it.
type DialFunc func(ctx context.Context, rpcURL string) (Backend, func(), error)

// Connector implements usecase.ChainConnector over go-ethereum
type Connector struct {
	dial DialFunc
	log  *slog.Logger
}

// NewConnector creates a connector that dials with ethclient
func NewConnector(log *slog.Logger) *Connector {
	return &Connector{dial: dialEthclient, log: log}
}

// NewConnectorWithDialer creates a connector with a custom dialer
func NewConnectorWithDialer(dial DialFunc, log *slog.Logger) *Connector {
	return &Connector{dial: dial, log: log}
}

func dialEthclient(ctx context.Context, rpcURL string) (Backend, func(), error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// Connect parses the signing key, dials the RPC endpoint and checks the
// remote chain ID against the profile.
func (c *Connector) Connect(ctx context.Context, network *domain.NetworkProfile) (usecase.ChainSession, error) {
	// Key problems are reported before any network traffic
	rawKey, err := network.PrimaryAccount()
	if err != nil {
		return nil, err
	}
	key, err := ParsePrivateKey(rawKey)
	if err != nil {
		return nil, fmt.Errorf("network %q: %w", network.Name, err)
	}

	backend, closeFn, err := c.dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC for %s: %w", network.Name, err)
	}

	remote, err := backend.ChainID(ctx)
	if err != nil {
		closeFn()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if remote.Uint64() != network.ChainID {
		closeFn()
		return nil, fmt.Errorf("%w: network %q expects %d, RPC reports %d",
			domain.ErrChainIDMismatch, network.Name, network.ChainID, remote.Uint64())
	}

	session, err := NewSession(backend, key, remote, c.log, closeFn)
	if err != nil {
		closeFn()
		return nil, err
	}

	c.log.Info("connected", "network", network.Name, "chain_id", network.ChainID, "deployer", session.Deployer().Hex())
	return session, nil
}

// ParsePrivateKey accepts a hex private key with or without 0x prefix.
// The key material never appears in the returned error.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	hexKey := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if hexKey == "" {
		return nil, domain.ErrNoSigner
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: private key is not a valid secp256k1 hex key", domain.ErrNoSigner)
	}
	return key, nil
}

var _ usecase.ChainConnector = (*Connector)(nil)
