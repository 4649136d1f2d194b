package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var constructorArgs string

	cmd := &cobra.Command{
		Use:   "verify <address> <contract>",
		Short: "Verify a deployed contract on the network's explorer",
		Long: `Submit the compiler input of a deployed contract to the network's
Etherscan-compatible explorer and wait for the result.

Requires ETHERSCAN_API_KEY (or etherscan.api_key in catapult.toml) and
the build info produced by the compiler.

Examples:
  catapult verify 0x1234...abcd MyToken
  catapult verify 0x1234...abcd MyNFT --network sepolia
  catapult verify 0x1234...abcd Registry --constructor-args 0x00000000...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(cmd)

			result, err := app.VerifyContract.Run(cmd.Context(), usecase.VerifyContractParams{
				Address:         args[0],
				ContractName:    args[1],
				ConstructorArgs: constructorArgs,
			})
			if err != nil {
				return err
			}

			stopProgress(cmd)
			return render.NewVerifyRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result)
		},
	}

	cmd.Flags().StringVar(&constructorArgs, "constructor-args", "", "ABI-encoded constructor arguments (hex)")

	return cmd
}
