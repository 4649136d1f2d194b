package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/adapters/progress"
	"github.com/trebuchet-org/catapult/internal/app"
	"github.com/trebuchet-org/catapult/internal/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// Contracts deployed by the standalone scripts
const (
	ScriptTokenContract = "MyToken"
	ScriptNFTContract   = "MyNFT"
)

// NewDeployScriptCmd creates the standalone MyToken deployment script
func NewDeployScriptCmd() *cobra.Command {
	return newScriptCmd(
		"deploy",
		"Deploy MyToken to the configured network",
		nil,
		func(cmd *cobra.Command, a *app.App) error {
			_, err := a.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{ContractName: ScriptTokenContract})
			return err
		},
	)
}

// NewDeployMyNFTScriptCmd creates the standalone MyNFT deploy and mint script
func NewDeployMyNFTScriptCmd() *cobra.Command {
	return newScriptCmd(
		"deploy_mynft",
		"Deploy MyNFT and mint one token to the deployer",
		func(cfg *config.RuntimeConfig) []progress.ScriptOption {
			return []progress.ScriptOption{
				progress.WithSignerAnnouncement(),
				progress.WithMarketplace(cfg.Network),
			}
		},
		func(cmd *cobra.Command, a *app.App) error {
			_, err := a.DeployAndMint.Run(cmd.Context(), usecase.DeployAndMintParams{ContractName: ScriptNFTContract})
			return err
		},
	)
}

// newScriptCmd builds a flagless command that prints plain progress lines
func newScriptCmd(
	use, short string,
	options func(cfg *config.RuntimeConfig) []progress.ScriptOption,
	run func(cmd *cobra.Command, a *app.App) error,
) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd, func(cfg *config.RuntimeConfig) usecase.ProgressSink {
				var opts []progress.ScriptOption
				if options != nil {
					opts = options(cfg)
				}
				return progress.NewScriptReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts...)
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			return run(cmd, a)
		},
	}
}
