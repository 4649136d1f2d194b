package config

// FoundryConfig is the subset of foundry.toml that describes networks
type FoundryConfig struct {
	RpcEndpoints map[string]string          `toml:"rpc_endpoints"`
	Etherscan    map[string]EtherscanConfig `toml:"etherscan,omitempty"`
}

// EtherscanConfig represents Etherscan configuration for a network
// This matches Foundry's expected structure
type EtherscanConfig struct {
	Key string `toml:"key,omitempty"` // API key for verification
	URL string `toml:"url,omitempty"` // API URL (for custom explorers)
	// Chain is a chain id or a chain name such as "sepolia"
	Chain any `toml:"chain,omitempty"`
}
