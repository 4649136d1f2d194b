package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// ResolveContract turns a user contract reference into a fully qualified
// name, prompting when the reference is empty or ambiguous
type ResolveContract struct {
	config    *config.RuntimeConfig
	artifacts ArtifactRepository
	selector  ContractSelector
}

// NewResolveContract creates a new ResolveContract use case
func NewResolveContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactRepository,
	selector ContractSelector,
) *ResolveContract {
	return &ResolveContract{
		config:    cfg,
		artifacts: artifacts,
		selector:  selector,
	}
}

// Run returns the fully qualified name of the contract to deploy
func (uc *ResolveContract) Run(ctx context.Context, contractRef string) (string, error) {
	if contractRef == "" {
		return uc.pickDeployable(ctx)
	}

	_, err := uc.artifacts.GetFactory(ctx, contractRef)
	if err == nil {
		return contractRef, nil
	}

	var ambiguous *domain.AmbiguousContractError
	if !errors.As(err, &ambiguous) || !uc.canPrompt() {
		return "", err
	}

	all, listErr := uc.artifacts.ListContracts(ctx)
	if listErr != nil {
		return "", listErr
	}
	candidates := lo.Filter(all, func(c domain.ContractInfo, _ int) bool {
		return lo.Contains(ambiguous.Matches, c.FullyQualifiedName())
	})
	if len(candidates) == 0 {
		return "", err
	}

	selected, selErr := uc.selector.SelectContract(ctx, candidates, fmt.Sprintf("Multiple contracts found for '%s'. Select one:", contractRef))
	if selErr != nil {
		return "", fmt.Errorf("contract selection failed: %w", selErr)
	}
	return selected.FullyQualifiedName(), nil
}

func (uc *ResolveContract) pickDeployable(ctx context.Context) (string, error) {
	if !uc.canPrompt() {
		return "", fmt.Errorf("contract name is required in non-interactive mode")
	}

	all, err := uc.artifacts.ListContracts(ctx)
	if err != nil {
		return "", err
	}
	deployable := lo.Filter(all, func(c domain.ContractInfo, _ int) bool { return c.Deployable })
	if len(deployable) == 0 {
		return "", fmt.Errorf("no deployable contracts found (did you compile?)")
	}

	selected, err := uc.selector.SelectContract(ctx, deployable, "Select a contract to deploy:")
	if err != nil {
		return "", fmt.Errorf("contract selection failed: %w", err)
	}
	return selected.FullyQualifiedName(), nil
}

func (uc *ResolveContract) canPrompt() bool {
	return uc.selector != nil && !uc.config.NonInteractive
}
