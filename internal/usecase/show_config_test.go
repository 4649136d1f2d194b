package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

func TestShowConfig_Run(t *testing.T) {
	network := testNetwork()
	uc := NewShowConfig(&config.RuntimeConfig{
		ProjectRoot: "/work/nft",
		NetworkName: "sepolia",
		Network:     network,
		TokenURI:    "ipfs://x",
		Output:      "text",
		Timeout:     2 * time.Minute,
	})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Configured)
	assert.Equal(t, uint64(11155111), result.ChainID)
	assert.Equal(t, "https://sepolia.infura.io/***", result.RPCURL)
	assert.Equal(t, "***Y123", result.ExplorerAPIKey)
	// Address of the well-known second anvil key
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", result.Deployer)
	assert.Equal(t, "2m0s", result.Timeout)
	assert.NotContains(t, result.Deployer, network.Accounts[0][2:])
}

func TestShowConfig_NoSecretsLeak(t *testing.T) {
	network := testNetwork()
	network.Accounts = []string{"not-a-key"}
	uc := NewShowConfig(&config.RuntimeConfig{NetworkName: "sepolia", Network: network})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "invalid key", result.Deployer)
	assert.Equal(t, "none", result.Timeout)
}

func TestShowConfig_UnknownNetwork(t *testing.T) {
	uc := NewShowConfig(&config.RuntimeConfig{
		NetworkName: "nowhere",
		MissingEnv:  map[string][]string{"nowhere": {"NOWHERE_RPC_URL"}},
		Networks:    map[string]*domain.NetworkProfile{},
	})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Configured)
	assert.Equal(t, "nowhere", result.Network)
	assert.Equal(t, []string{"NOWHERE_RPC_URL"}, result.MissingEnv)
}
