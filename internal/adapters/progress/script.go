package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// ScriptReporter prints the plain console lines of the deploy scripts.
// Lines are written as each stage completes, so the deployed address is
// visible before a mint is attempted.
type ScriptReporter struct {
	out            io.Writer
	errOut         io.Writer
	announceSigner bool
	marketplace    func(contract common.Address, tokenID string) string
}

// ScriptOption configures a ScriptReporter
type ScriptOption func(*ScriptReporter)

// WithSignerAnnouncement prints "Deploying with: <address>" once connected
func WithSignerAnnouncement() ScriptOption {
	return func(r *ScriptReporter) { r.announceSigner = true }
}

// WithMarketplace prints a marketplace link after a mint
func WithMarketplace(network *domain.NetworkProfile) ScriptOption {
	return func(r *ScriptReporter) {
		if network == nil || network.MarketplaceURL == "" {
			return
		}
		r.marketplace = func(contract common.Address, tokenID string) string {
			return network.TokenURL(contract.Hex(), tokenID)
		}
	}
}

// NewScriptReporter creates a reporter writing progress to out and
// diagnostics to errOut
func NewScriptReporter(out, errOut io.Writer, opts ...ScriptOption) *ScriptReporter {
	r := &ScriptReporter{out: out, errOut: errOut}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnProgress prints the line for each completed stage
func (r *ScriptReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	switch event.Stage {
	case usecase.StageConnected:
		if deployer, ok := event.Metadata.(common.Address); ok && r.announceSigner {
			fmt.Fprintf(r.out, "Deploying with: %s\n", deployer.Hex())
		}
	case usecase.StageDeploying:
		fmt.Fprintf(r.out, "Deploying %s...\n", event.Message)
	case usecase.StageDeployed:
		if deployed, ok := event.Metadata.(*domain.DeployedContract); ok {
			fmt.Fprintf(r.out, "%s deployed to: %s\n", deployed.Name, deployed.Address.Hex())
		}
	case usecase.StageMinted:
		token, ok := event.Metadata.(*domain.MintedToken)
		if !ok {
			return
		}
		fmt.Fprintf(r.out, "Minted! Token URI: %s\n", token.TokenURI)
		if r.marketplace != nil {
			fmt.Fprintf(r.out, "View on Rarible: %s\n", r.marketplace(token.Contract, token.TokenID.String()))
		}
	}
}

// Info prints to stdout
func (r *ScriptReporter) Info(message string) {
	fmt.Fprintln(r.out, message)
}

// Error prints to stderr
func (r *ScriptReporter) Error(message string) {
	fmt.Fprintln(r.errOut, message)
}

var _ usecase.ProgressSink = (*ScriptReporter)(nil)
