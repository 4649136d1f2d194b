package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// FoundryFileName is read for rpc_endpoints and etherscan entries
const FoundryFileName = "foundry.toml"

// chainsByName maps the chain aliases Foundry accepts to chain ids
var chainsByName = map[string]uint64{
	"mainnet":          1,
	"sepolia":          11155111,
	"holesky":          17000,
	"optimism":         10,
	"polygon":          137,
	"base":             8453,
	"base-sepolia":     84532,
	"arbitrum":         42161,
	"arbitrum-sepolia": 421614,
}

// foundryNetworks is what foundry.toml contributes to the network set
type foundryNetworks struct {
	entries map[string]NetworkEntry
	chains  []CustomChain
	apiKeys map[string]string // raw per-network explorer keys
}

// loadFoundryNetworks turns foundry.toml rpc_endpoints into network
// entries. An endpoint becomes a network when its chain id is known from
// the matching etherscan entry or from the endpoint name itself. Endpoints
// whose etherscan chain cannot be read are skipped with a warning.
func loadFoundryNetworks(projectRoot string) (*foundryNetworks, error) {
	result := &foundryNetworks{
		entries: make(map[string]NetworkEntry),
		apiKeys: make(map[string]string),
	}

	foundryPath := filepath.Join(projectRoot, FoundryFileName)
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return result, nil
	}

	var cfg config.FoundryConfig
	if _, err := toml.DecodeFile(foundryPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FoundryFileName, err)
	}

	for name, url := range cfg.RpcEndpoints {
		ethConfig, hasExplorer := cfg.Etherscan[name]

		chainID, err := foundryChainID(ethConfig.Chain)
		if err != nil {
			slog.Warn("skipping foundry endpoint", "network", name, "file", FoundryFileName, "error", err)
			continue
		}
		if chainID == 0 {
			chainID = chainsByName[name]
		}
		if chainID == 0 {
			continue
		}

		result.entries[name] = NetworkEntry{URL: url, ChainID: chainID}
		if !hasExplorer {
			continue
		}
		if ethConfig.Key != "" {
			result.apiKeys[name] = ethConfig.Key
		}
		if ethConfig.URL != "" {
			result.chains = append(result.chains, CustomChain{Network: name, ChainID: chainID, APIURL: ethConfig.URL})
		}
	}

	return result, nil
}

func foundryChainID(raw any) (uint64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case int64:
		if v <= 0 {
			return 0, fmt.Errorf("invalid chain %d", v)
		}
		return uint64(v), nil
	case string:
		id, ok := chainsByName[strings.ToLower(v)]
		if !ok {
			return 0, fmt.Errorf("unknown chain %q", v)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("unsupported chain value %v", raw)
	}
}
