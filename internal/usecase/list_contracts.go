package usecase

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/domain"
)

// ListContractsParams contains parameters for listing contracts
type ListContractsParams struct {
	// Filter keeps contracts whose name or source contains it (case-insensitive)
	Filter string
	// DeployableOnly hides interfaces, abstract and unlinked contracts
	DeployableOnly bool
}

// ListContractsResult contains the indexed contracts
type ListContractsResult struct {
	Contracts []domain.ContractInfo `json:"contracts" yaml:"contracts"`
}

// ListContracts lists compiled artifacts
type ListContracts struct {
	artifacts ArtifactRepository
}

// NewListContracts creates a new ListContracts use case
func NewListContracts(artifacts ArtifactRepository) *ListContracts {
	return &ListContracts{artifacts: artifacts}
}

// Run executes the use case
func (uc *ListContracts) Run(ctx context.Context, params ListContractsParams) (*ListContractsResult, error) {
	all, err := uc.artifacts.ListContracts(ctx)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(params.Filter)
	contracts := lo.Filter(all, func(c domain.ContractInfo, _ int) bool {
		if params.DeployableOnly && !c.Deployable {
			return false
		}
		if filter == "" {
			return true
		}
		return strings.Contains(strings.ToLower(c.FullyQualifiedName()), filter)
	})

	return &ListContractsResult{Contracts: contracts}, nil
}
