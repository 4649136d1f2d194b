package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
}

func TestLoadNetworks_BuiltinSepolia(t *testing.T) {
	t.Setenv("SEPOLIA_RPC_URL", "https://sepolia.infura.io/v3/key")
	t.Setenv("PRIVATE_KEY", "0xdeadbeef")
	t.Setenv("ETHERSCAN_API_KEY", "EKEY")

	set, err := LoadNetworks(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sepolia", set.DefaultNetwork)
	assert.Empty(t, set.ConfigFile)

	sepolia, err := set.Get("sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint64(11155111), sepolia.ChainID)
	assert.Equal(t, "https://sepolia.infura.io/v3/key", sepolia.RPCURL)
	assert.Equal(t, []string{"0xdeadbeef"}, sepolia.Accounts)
	assert.Equal(t, "EKEY", sepolia.ExplorerAPIKey)
	assert.Equal(t, "https://api-sepolia.etherscan.io/api", sepolia.ExplorerAPIURL)
	assert.Equal(t, "https://sepolia.etherscan.io", sepolia.ExplorerBrowserURL)
	assert.Equal(t, "https://testnet.rarible.com", sepolia.MarketplaceURL)
	assert.Empty(t, set.MissingEnv)
}

func TestLoadNetworks_MissingEnvDefaultsToEmpty(t *testing.T) {
	t.Setenv("SEPOLIA_RPC_URL", "")
	t.Setenv("PRIVATE_KEY", "")
	t.Setenv("ETHERSCAN_API_KEY", "")

	set, err := LoadNetworks(t.TempDir())
	require.NoError(t, err)

	sepolia, err := set.Get("sepolia")
	require.NoError(t, err)
	assert.Equal(t, "", sepolia.RPCURL)
	assert.Equal(t, []string{""}, sepolia.Accounts)
	assert.Equal(t, "", sepolia.ExplorerAPIKey)
	assert.ElementsMatch(t, []string{"SEPOLIA_RPC_URL", "PRIVATE_KEY"}, set.MissingEnv["sepolia"])

	// Loading never validates; the empty URL is rejected by Validate
	err = sepolia.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidNetworkConfig))
}

func TestLoadNetworks_BuiltinProfilesAreValid(t *testing.T) {
	t.Setenv("SEPOLIA_RPC_URL", "https://rpc.sepolia.org")

	set, err := LoadNetworks(t.TempDir())
	require.NoError(t, err)

	for _, name := range set.Names() {
		t.Run(name, func(t *testing.T) {
			profile := set.Profiles[name]
			assert.NotZero(t, profile.ChainID)
			assert.NoError(t, profile.Validate())
		})
	}
}

func TestLoadNetworks_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CATAPULT_TEST_LOCAL_KEY", "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d")
	writeConfigFile(t, dir, `
default_network = "local"

[networks.local]
url = "http://127.0.0.1:8545"
accounts = ["${CATAPULT_TEST_LOCAL_KEY}"]
chain_id = 31337

[networks.sepolia]
marketplace_url = "https://rarible.example"

[etherscan]
api_key = "FILEKEY"

[[etherscan.custom_chains]]
network = "local"
chain_id = 31337
api_url = "http://127.0.0.1:4000/api"
browser_url = "http://127.0.0.1:4000"
`)

	set, err := LoadNetworks(dir)
	require.NoError(t, err)

	assert.Equal(t, "local", set.DefaultNetwork)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), set.ConfigFile)
	assert.Equal(t, []string{"local", "sepolia"}, set.Names())

	local, err := set.Get("local")
	require.NoError(t, err)
	assert.Equal(t, uint64(31337), local.ChainID)
	assert.Equal(t, "http://127.0.0.1:8545", local.RPCURL)
	assert.True(t, local.HasSigner())
	assert.Equal(t, "FILEKEY", local.ExplorerAPIKey)
	assert.Equal(t, "http://127.0.0.1:4000/api", local.ExplorerAPIURL)
	assert.Equal(t, "http://127.0.0.1:4000", local.ExplorerBrowserURL)

	// Partial override keeps the built-in chain id and explorer
	sepolia, err := set.Get("sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint64(11155111), sepolia.ChainID)
	assert.Equal(t, "https://rarible.example", sepolia.MarketplaceURL)
	assert.Equal(t, "https://sepolia.etherscan.io", sepolia.ExplorerBrowserURL)
}

func TestLoadNetworks_KnownExplorerFallback(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
[networks.base]
url = "https://mainnet.base.org"
chain_id = 8453
`)

	set, err := LoadNetworks(dir)
	require.NoError(t, err)

	base, err := set.Get("base")
	require.NoError(t, err)
	assert.Equal(t, "https://api.basescan.org/api", base.ExplorerAPIURL)
	assert.Equal(t, "https://basescan.org", base.ExplorerBrowserURL)
	assert.False(t, base.HasSigner())
}

func TestLoadNetworks_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "[networks.local\nurl=")

	_, err := LoadNetworks(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catapult.toml")
}

func TestNetworkSet_GetUnknown(t *testing.T) {
	set, err := LoadNetworks(t.TempDir())
	require.NoError(t, err)

	_, err = set.Get("mainnet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownNetwork))
	assert.Contains(t, err.Error(), "sepolia")
}
