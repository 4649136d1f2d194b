package network

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/config"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// Resolver handles network profile resolution over the loaded configuration
type Resolver struct {
	networks      map[string]*domain.NetworkProfile
	chainIDLookup map[uint64]string // chainID -> network name
	missingEnv    map[string][]string
}

// NewResolver creates a new network resolver
func NewResolver(cfg *config.RuntimeConfig) *Resolver {
	r := &Resolver{
		networks:      make(map[string]*domain.NetworkProfile),
		chainIDLookup: make(map[uint64]string),
		missingEnv:    cfg.MissingEnv,
	}

	// Sorted so the chain ID lookup is stable when names share a chain
	names := lo.Keys(cfg.Networks)
	sort.Strings(names)
	for _, name := range names {
		r.addNetwork(cfg.Networks[name])
	}

	return r
}

// addNetwork adds a network profile
func (r *Resolver) addNetwork(network *domain.NetworkProfile) {
	r.networks[network.Name] = network
	if _, taken := r.networks[strings.ToLower(network.Name)]; !taken {
		r.networks[strings.ToLower(network.Name)] = network // Case-insensitive lookup
	}
	if _, taken := r.chainIDLookup[network.ChainID]; !taken && network.ChainID != 0 {
		r.chainIDLookup[network.ChainID] = network.Name
	}
}

// ResolveNetwork resolves a network by name or chain ID
func (r *Resolver) ResolveNetwork(ctx context.Context, input string) (*domain.NetworkProfile, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: network not specified", domain.ErrUnknownNetwork)
	}

	// Direct name lookup
	if network, ok := r.networks[input]; ok {
		return network, nil
	}

	// Case-insensitive name lookup
	if network, ok := r.networks[strings.ToLower(input)]; ok {
		return network, nil
	}

	// Try to parse as chain ID
	if chainID, err := strconv.ParseUint(input, 10, 64); err == nil {
		if name, ok := r.chainIDLookup[chainID]; ok {
			return r.networks[name], nil
		}
	}

	return nil, fmt.Errorf("%w: %s (configured: %s)", domain.ErrUnknownNetwork, input, strings.Join(r.GetNetworks(ctx), ", "))
}

// GetNetworks returns the configured network names in sorted order
func (r *Resolver) GetNetworks(ctx context.Context) []string {
	names := lo.Uniq(lo.MapToSlice(r.networks, func(_ string, n *domain.NetworkProfile) string {
		return n.Name
	}))
	sort.Strings(names)
	return names
}

// MissingEnv lists the unset ${VAR} references of a network
func (r *Resolver) MissingEnv(ctx context.Context, name string) []string {
	return r.missingEnv[name]
}

var _ usecase.NetworkResolver = (*Resolver)(nil)
