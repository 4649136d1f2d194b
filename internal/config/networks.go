package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/domain"
)

// ConfigFileName is the optional network file at the project root
const ConfigFileName = "catapult.toml"

// DefaultNetwork is used when neither the environment nor catapult.toml names one
const DefaultNetwork = "sepolia"

// builtinNetworks mirrors the networks the original Hardhat project ships with.
// Values are raw and go through the same ${VAR} expansion as catapult.toml.
var builtinNetworks = map[string]NetworkEntry{
	"sepolia": {
		URL:            "${SEPOLIA_RPC_URL}",
		Accounts:       []string{"${PRIVATE_KEY}"},
		ChainID:        11155111,
		MarketplaceURL: "https://testnet.rarible.com",
	},
}

var builtinEtherscan = EtherscanConfig{
	APIKey: "${ETHERSCAN_API_KEY}",
	CustomChains: []CustomChain{
		{
			Network:    "sepolia",
			ChainID:    11155111,
			APIURL:     "https://api-sepolia.etherscan.io/api",
			BrowserURL: "https://sepolia.etherscan.io",
		},
	},
}

// NetworkSet is the result of loading all configured networks.
type NetworkSet struct {
	Profiles       map[string]*domain.NetworkProfile
	DefaultNetwork string
	ConfigFile     string
	// MissingEnv lists, per network, ${VAR} references that were unset
	MissingEnv map[string][]string
}

// Names returns the configured network names in sorted order.
func (s *NetworkSet) Names() []string {
	names := lo.Keys(s.Profiles)
	sort.Strings(names)
	return names
}

// Get returns the profile for a network name.
func (s *NetworkSet) Get(name string) (*domain.NetworkProfile, error) {
	profile, ok := s.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (configured: %v)", domain.ErrUnknownNetwork, name, s.Names())
	}
	return profile, nil
}

// LoadNetworks builds network profiles from the built-ins, foundry.toml
// rpc_endpoints and an optional catapult.toml, in increasing precedence.
// It never validates: a profile with empty values is returned
// as is and rejected later by NetworkProfile.Validate.
func LoadNetworks(projectRoot string) (*NetworkSet, error) {
	file, configPath, err := loadFileConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	foundry, err := loadFoundryNetworks(projectRoot)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]NetworkEntry, len(builtinNetworks))
	for name, entry := range builtinNetworks {
		entries[name] = entry
	}
	for name, entry := range foundry.entries {
		entries[name] = mergeEntry(entries[name], entry)
	}
	for name, entry := range file.Networks {
		entries[name] = mergeEntry(entries[name], entry)
	}

	etherscan := builtinEtherscan
	if file.Etherscan.APIKey != "" {
		etherscan.APIKey = file.Etherscan.APIKey
	}
	chains := make(map[string]CustomChain)
	for _, c := range builtinEtherscan.CustomChains {
		chains[c.Network] = c
	}
	for _, c := range foundry.chains {
		chains[c.Network] = c
	}
	for _, c := range file.Etherscan.CustomChains {
		chains[c.Network] = c
	}

	set := &NetworkSet{
		Profiles:       make(map[string]*domain.NetworkProfile, len(entries)),
		DefaultNetwork: DefaultNetwork,
		ConfigFile:     configPath,
		MissingEnv:     make(map[string][]string),
	}
	if file.DefaultNetwork != "" {
		set.DefaultNetwork = file.DefaultNetwork
	}

	for name, entry := range entries {
		apiKey := etherscan.APIKey
		if key, ok := foundry.apiKeys[name]; ok && file.Etherscan.APIKey == "" {
			apiKey = key
		}

		profile := &domain.NetworkProfile{
			Name:           name,
			RPCURL:         ExpandValue(entry.URL),
			ChainID:        entry.ChainID,
			MarketplaceURL: ExpandValue(entry.MarketplaceURL),
			ExplorerAPIKey: ExpandValue(apiKey),
		}
		for _, acct := range entry.Accounts {
			profile.Accounts = append(profile.Accounts, ExpandValue(acct))
		}

		knownAPI, knownBrowser := knownExplorer(entry.ChainID)
		if chain, ok := chains[name]; ok {
			profile.ExplorerAPIURL = ExpandValue(chain.APIURL)
			profile.ExplorerBrowserURL = ExpandValue(chain.BrowserURL)
			if profile.ExplorerBrowserURL == "" {
				profile.ExplorerBrowserURL = knownBrowser
			}
		} else {
			profile.ExplorerAPIURL, profile.ExplorerBrowserURL = knownAPI, knownBrowser
		}

		raw := append([]string{entry.URL}, entry.Accounts...)
		if missing := MissingEnvVars(raw...); len(missing) > 0 {
			set.MissingEnv[name] = missing
		}

		set.Profiles[name] = profile
	}

	return set, nil
}

func loadFileConfig(projectRoot string) (*FileConfig, string, error) {
	path := filepath.Join(projectRoot, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &FileConfig{}, "", nil
	}

	var file FileConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return &file, path, nil
}

func mergeEntry(base, override NetworkEntry) NetworkEntry {
	if override.URL != "" {
		base.URL = override.URL
	}
	if len(override.Accounts) > 0 {
		base.Accounts = override.Accounts
	}
	if override.ChainID != 0 {
		base.ChainID = override.ChainID
	}
	if override.MarketplaceURL != "" {
		base.MarketplaceURL = override.MarketplaceURL
	}
	return base
}

// knownExplorer returns Etherscan-family API and browser URLs for common chains
func knownExplorer(chainID uint64) (apiURL, browserURL string) {
	switch chainID {
	case 1:
		return "https://api.etherscan.io/api", "https://etherscan.io"
	case 11155111:
		return "https://api-sepolia.etherscan.io/api", "https://sepolia.etherscan.io"
	case 17000:
		return "https://api-holesky.etherscan.io/api", "https://holesky.etherscan.io"
	case 10:
		return "https://api-optimistic.etherscan.io/api", "https://optimistic.etherscan.io"
	case 137:
		return "https://api.polygonscan.com/api", "https://polygonscan.com"
	case 8453:
		return "https://api.basescan.org/api", "https://basescan.org"
	case 84532:
		return "https://api-sepolia.basescan.org/api", "https://sepolia.basescan.org"
	case 42161:
		return "https://api.arbiscan.io/api", "https://arbiscan.io"
	default:
		return "", ""
	}
}
