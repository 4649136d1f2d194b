package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// DeploymentOutput is the structured form of a deployment
type DeploymentOutput struct {
	Network     string `json:"network" yaml:"network"`
	ChainID     uint64 `json:"chainId" yaml:"chainId"`
	Contract    string `json:"contract" yaml:"contract"`
	Address     string `json:"address" yaml:"address"`
	TxHash      string `json:"txHash" yaml:"txHash"`
	BlockNumber string `json:"blockNumber,omitempty" yaml:"blockNumber,omitempty"`
	GasUsed     uint64 `json:"gasUsed" yaml:"gasUsed"`
	Deployer    string `json:"deployer" yaml:"deployer"`
	ExplorerURL string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
}

// MintOutput is the structured form of a deploy-and-mint run
type MintOutput struct {
	Deployment     DeploymentOutput `json:"deployment" yaml:"deployment"`
	TokenID        string           `json:"tokenId" yaml:"tokenId"`
	TokenURI       string           `json:"tokenUri" yaml:"tokenUri"`
	Owner          string           `json:"owner" yaml:"owner"`
	MintTxHash     string           `json:"mintTxHash" yaml:"mintTxHash"`
	MarketplaceURL string           `json:"marketplaceUrl,omitempty" yaml:"marketplaceUrl,omitempty"`
}

// NewDeploymentOutput flattens a deployment for structured output
func NewDeploymentOutput(network *domain.NetworkProfile, d *domain.DeployedContract) DeploymentOutput {
	out := DeploymentOutput{
		Network:     network.Name,
		ChainID:     network.ChainID,
		Contract:    d.Name,
		Address:     d.Address.Hex(),
		TxHash:      d.TxHash.Hex(),
		GasUsed:     d.GasUsed,
		Deployer:    d.Deployer.Hex(),
		ExplorerURL: network.AddressURL(d.Address.Hex()),
	}
	if d.BlockNumber != nil {
		out.BlockNumber = d.BlockNumber.String()
	}
	return out
}

// NewMintOutput flattens a deploy-and-mint result for structured output
func NewMintOutput(result *usecase.DeployAndMintResult) MintOutput {
	return MintOutput{
		Deployment:     NewDeploymentOutput(result.Network, result.Deployment),
		TokenID:        result.Token.TokenID.String(),
		TokenURI:       result.Token.TokenURI,
		Owner:          result.Token.Owner.Hex(),
		MintTxHash:     result.Token.TxHash.Hex(),
		MarketplaceURL: result.MarketplaceURL,
	}
}

// DeploymentRenderer renders deploy and mint results
type DeploymentRenderer struct {
	out    io.Writer
	format string
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer, format string) *DeploymentRenderer {
	return &DeploymentRenderer{out: out, format: format}
}

// RenderDeployment renders a single deployment
func (r *DeploymentRenderer) RenderDeployment(result *usecase.DeployContractResult) error {
	output := NewDeploymentOutput(result.Network, result.Deployment)
	if r.format != FormatText {
		return Structured(r.out, r.format, output)
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s deployed to: %s", output.Contract, output.Address)))
	r.renderDeploymentDetails(output)
	return nil
}

// RenderMint renders a deployment followed by the minted token
func (r *DeploymentRenderer) RenderMint(result *usecase.DeployAndMintResult) error {
	output := NewMintOutput(result)
	if r.format != FormatText {
		return Structured(r.out, r.format, output)
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s deployed to: %s", output.Deployment.Contract, output.Deployment.Address)))
	r.renderDeploymentDetails(output.Deployment)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Minted token #%s", output.TokenID)))
	fmt.Fprintln(r.out, keyValues([][2]string{
		{"Token URI", output.TokenURI},
		{"Owner", output.Owner},
		{"Transaction", output.MintTxHash},
		{"Marketplace", link(output.MarketplaceURL)},
	}))
	return nil
}

func (r *DeploymentRenderer) renderDeploymentDetails(d DeploymentOutput) {
	fmt.Fprintln(r.out, keyValues([][2]string{
		{"Network", fmt.Sprintf("%s (%d)", d.Network, d.ChainID)},
		{"Deployer", d.Deployer},
		{"Transaction", d.TxHash},
		{"Block", d.BlockNumber},
		{"Gas used", fmt.Sprintf("%d", d.GasUsed)},
		{"Explorer", link(d.ExplorerURL)},
	}))
}
