package domain

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkProfile is the resolved configuration for one target network.
// It is built once at startup and never mutated afterwards.
type NetworkProfile struct {
	Name               string   `json:"name" yaml:"name"`
	RPCURL             string   `json:"rpcUrl" yaml:"rpcUrl"`
	Accounts           []string `json:"-" yaml:"-"`
	ChainID            uint64   `json:"chainId" yaml:"chainId"`
	ExplorerAPIURL     string   `json:"explorerApiUrl,omitempty" yaml:"explorerApiUrl,omitempty"`
	ExplorerBrowserURL string   `json:"explorerBrowserUrl,omitempty" yaml:"explorerBrowserUrl,omitempty"`
	ExplorerAPIKey     string   `json:"-" yaml:"-"`
	MarketplaceURL     string   `json:"marketplaceUrl,omitempty" yaml:"marketplaceUrl,omitempty"`
}

// String never includes signing credentials or API keys.
func (n *NetworkProfile) String() string {
	return fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)
}

// HasSigner reports whether at least one non-empty account is configured.
func (n *NetworkProfile) HasSigner() bool {
	for _, acct := range n.Accounts {
		if strings.TrimSpace(acct) != "" {
			return true
		}
	}
	return false
}

// PrimaryAccount returns the first configured signing credential.
func (n *NetworkProfile) PrimaryAccount() (string, error) {
	if len(n.Accounts) == 0 || strings.TrimSpace(n.Accounts[0]) == "" {
		return "", fmt.Errorf("network %q: %w", n.Name, ErrNoSigner)
	}
	return strings.TrimSpace(n.Accounts[0]), nil
}

// Validate checks that the profile can be used to reach a network.
// It is called before any dial so misconfiguration surfaces without
// touching the network.
func (n *NetworkProfile) Validate() error {
	if n.ChainID == 0 {
		return &ConfigError{Network: n.Name, Field: "chain_id", Reason: "must be non-zero"}
	}
	if err := checkURL(n.RPCURL, "http", "https", "ws", "wss"); err != nil {
		return &ConfigError{Network: n.Name, Field: "url", Reason: err.Error()}
	}
	if n.ExplorerAPIURL != "" {
		if err := checkURL(n.ExplorerAPIURL, "http", "https"); err != nil {
			return &ConfigError{Network: n.Name, Field: "explorer api url", Reason: err.Error()}
		}
	}
	if n.ExplorerBrowserURL != "" {
		if err := checkURL(n.ExplorerBrowserURL, "http", "https"); err != nil {
			return &ConfigError{Network: n.Name, Field: "explorer browser url", Reason: err.Error()}
		}
	}
	if n.MarketplaceURL != "" {
		if err := checkURL(n.MarketplaceURL, "http", "https"); err != nil {
			return &ConfigError{Network: n.Name, Field: "marketplace url", Reason: err.Error()}
		}
	}
	return nil
}

// AddressURL returns the explorer page for an address, or "" when the
// profile has no browser URL.
func (n *NetworkProfile) AddressURL(address string) string {
	if n.ExplorerBrowserURL == "" {
		return ""
	}
	return strings.TrimSuffix(n.ExplorerBrowserURL, "/") + "/address/" + address
}

// TxURL returns the explorer page for a transaction hash.
func (n *NetworkProfile) TxURL(hash string) string {
	if n.ExplorerBrowserURL == "" {
		return ""
	}
	return strings.TrimSuffix(n.ExplorerBrowserURL, "/") + "/tx/" + hash
}

// TokenURL returns the marketplace page for a minted token.
func (n *NetworkProfile) TokenURL(contract string, tokenID string) string {
	if n.MarketplaceURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/token/%s:%s", strings.TrimSuffix(n.MarketplaceURL, "/"), contract, tokenID)
}

func checkURL(raw string, schemes ...string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("cannot parse %s: %v", MaskURL(raw), err)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %s", MaskURL(raw))
	}
	for _, s := range schemes {
		if strings.EqualFold(u.Scheme, s) {
			return nil
		}
	}
	return fmt.Errorf("unsupported scheme %q", u.Scheme)
}

// MaskURL keeps only scheme and host. RPC providers embed API keys in the
// path or query.
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	masked := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		masked += "/***"
	}
	return masked
}

// NetworkHealth is the live state of a network as seen through its RPC
// endpoint. Balance is only set when the profile has a usable signer.
type NetworkHealth struct {
	ChainID     uint64         `json:"chainId" yaml:"chainId"`
	BlockNumber uint64         `json:"blockNumber" yaml:"blockNumber"`
	Deployer    common.Address `json:"deployer,omitempty" yaml:"deployer,omitempty"`
	Balance     *big.Int       `json:"balance,omitempty" yaml:"balance,omitempty"`
}

// FormatEther renders a wei amount in ether with four decimals.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return ""
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, big.NewFloat(1e18))
	return f.Text('f', 4)
}
