package config

import (
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// RuntimeConfig is re-exported so adapters only import this package
type RuntimeConfig = config.RuntimeConfig

// FileConfig represents the raw catapult.toml structure
type FileConfig struct {
	DefaultNetwork string                  `toml:"default_network"`
	Networks       map[string]NetworkEntry `toml:"networks"`
	Etherscan      EtherscanConfig         `toml:"etherscan"`
}

// NetworkEntry is one [networks.<name>] table. Empty fields keep the
// built-in value when the name matches a built-in network.
type NetworkEntry struct {
	URL            string   `toml:"url"`
	Accounts       []string `toml:"accounts"`
	ChainID        uint64   `toml:"chain_id"`
	MarketplaceURL string   `toml:"marketplace_url"`
}

// EtherscanConfig mirrors the etherscan section of hardhat-verify
type EtherscanConfig struct {
	APIKey       string        `toml:"api_key"`
	CustomChains []CustomChain `toml:"custom_chains"`
}

// CustomChain maps a network to an Etherscan-compatible explorer
type CustomChain struct {
	Network    string `toml:"network"`
	ChainID    uint64 `toml:"chain_id"`
	APIURL     string `toml:"api_url"`
	BrowserURL string `toml:"browser_url"`
}
