package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var params usecase.ListNetworksParams

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List all networks from catapult.toml and the built-in profiles.

Each network shows its chain id, the RPC host with credentials masked,
and whether a signer and explorer verification are configured.
With --check every valid network is dialed to confirm its chain id and
report the latest block and the deployer balance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.Output).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&params.Check, "check", false, "Dial each network and report its live state")

	return cmd
}
