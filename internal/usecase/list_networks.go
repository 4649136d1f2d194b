package usecase

import (
	"context"

	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check dials every valid network and reports its live state
	Check bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus `json:"networks" yaml:"networks"`
	Current  string          `json:"current" yaml:"current"`
}

// NetworkStatus represents the configuration status of a network
type NetworkStatus struct {
	Name        string   `json:"name" yaml:"name"`
	ChainID     uint64   `json:"chainId" yaml:"chainId"`
	RPCHost     string   `json:"rpcHost,omitempty" yaml:"rpcHost,omitempty"`
	Explorer    string   `json:"explorer,omitempty" yaml:"explorer,omitempty"`
	HasSigner   bool     `json:"hasSigner" yaml:"hasSigner"`
	CanVerify   bool     `json:"canVerify" yaml:"canVerify"`
	MissingEnv  []string `json:"missingEnv,omitempty" yaml:"missingEnv,omitempty"`
	Error       error    `json:"-" yaml:"-"`
	ErrorString string   `json:"error,omitempty" yaml:"error,omitempty"`

	// Set only when the network was checked
	Checked     bool   `json:"checked,omitempty" yaml:"checked,omitempty"`
	Reachable   bool   `json:"reachable,omitempty" yaml:"reachable,omitempty"`
	LatestBlock uint64 `json:"latestBlock,omitempty" yaml:"latestBlock,omitempty"`
	Balance     string `json:"balance,omitempty" yaml:"balance,omitempty"`
	CheckError  string `json:"checkError,omitempty" yaml:"checkError,omitempty"`
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	checker  NetworkChecker
	current  string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, checker NetworkChecker, cfg *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		checker:  checker,
		current:  cfg.NetworkName,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	// Get all configured networks
	networkNames := uc.resolver.GetNetworks(ctx)

	// Check each network's status
	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name:       name,
			MissingEnv: uc.resolver.MissingEnv(ctx, name),
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err == nil {
			status.ChainID = info.ChainID
			status.RPCHost = domain.MaskURL(info.RPCURL)
			status.Explorer = info.ExplorerBrowserURL
			status.HasSigner = info.HasSigner()
			status.CanVerify = info.ExplorerAPIURL != "" && info.ExplorerAPIKey != ""
			err = info.Validate()
		}
		if err != nil {
			status.Error = err
			status.ErrorString = err.Error()
		} else if params.Check {
			uc.check(ctx, info, &status)
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.current,
	}, nil
}

// check probes one valid network. Failures are recorded on the status so
// one unreachable endpoint does not hide the others.
func (uc *ListNetworks) check(ctx context.Context, network *domain.NetworkProfile, status *NetworkStatus) {
	status.Checked = true
	health, err := uc.checker.CheckNetwork(ctx, network)
	if err != nil {
		status.CheckError = err.Error()
		return
	}
	status.Reachable = true
	status.LatestBlock = health.BlockNumber
	if health.Balance != nil {
		status.Balance = domain.FormatEther(health.Balance) + " ETH"
	}
}
