package usecase

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// ShowConfigResult contains the resolved configuration with secrets masked
type ShowConfigResult struct {
	ProjectRoot    string   `json:"projectRoot" yaml:"projectRoot"`
	ConfigFile     string   `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	Network        string   `json:"network" yaml:"network"`
	Configured     bool     `json:"configured" yaml:"configured"`
	ChainID        uint64   `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	RPCURL         string   `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty"`
	Deployer       string   `json:"deployer,omitempty" yaml:"deployer,omitempty"`
	ExplorerAPIURL string   `json:"explorerApiUrl,omitempty" yaml:"explorerApiUrl,omitempty"`
	ExplorerAPIKey string   `json:"explorerApiKey,omitempty" yaml:"explorerApiKey,omitempty"`
	MarketplaceURL string   `json:"marketplaceUrl,omitempty" yaml:"marketplaceUrl,omitempty"`
	MissingEnv     []string `json:"missingEnv,omitempty" yaml:"missingEnv,omitempty"`
	TokenURI       string   `json:"tokenUri" yaml:"tokenUri"`
	Timeout        string   `json:"timeout" yaml:"timeout"`
	Output         string   `json:"output" yaml:"output"`
	Debug          bool     `json:"debug" yaml:"debug"`
	NonInteractive bool     `json:"nonInteractive" yaml:"nonInteractive"`
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	result := &ShowConfigResult{
		ProjectRoot:    uc.cfg.ProjectRoot,
		ConfigFile:     uc.cfg.ConfigFile,
		Network:        uc.cfg.NetworkName,
		TokenURI:       uc.cfg.TokenURI,
		Timeout:        "none",
		Output:         uc.cfg.Output,
		Debug:          uc.cfg.Debug,
		NonInteractive: uc.cfg.NonInteractive,
		MissingEnv:     uc.cfg.MissingEnv[uc.cfg.NetworkName],
	}
	if uc.cfg.Timeout > 0 {
		result.Timeout = uc.cfg.Timeout.String()
	}

	network := uc.cfg.Network
	if network == nil {
		return result, nil
	}

	result.Configured = true
	result.ChainID = network.ChainID
	result.RPCURL = domain.MaskURL(network.RPCURL)
	result.ExplorerAPIURL = network.ExplorerAPIURL
	result.ExplorerAPIKey = MaskSecret(network.ExplorerAPIKey)
	result.MarketplaceURL = network.MarketplaceURL

	// Only the derived address is shown, never the key
	if raw, err := network.PrimaryAccount(); err == nil {
		if key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x")); err == nil {
			result.Deployer = crypto.PubkeyToAddress(key.PublicKey).Hex()
		} else {
			result.Deployer = "invalid key"
		}
	}

	return result, nil
}
