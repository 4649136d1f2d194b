package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var constructorArgs []string

	cmd := &cobra.Command{
		Use:   "deploy [contract]",
		Short: "Deploy a compiled contract",
		Long: `Deploy a compiled contract and wait for the deployment to be confirmed.

The contract is looked up by name (MyToken) or fully qualified name
(contracts/ERC20/MyToken.sol:MyToken) in Hardhat artifacts/ and Foundry out/.
Without a name, and on an interactive terminal, a deployable contract is
picked from a list.

Examples:
  catapult deploy MyToken
  catapult deploy MyToken --network sepolia
  catapult deploy Registry --args 0x70997970C51812dc3A010C7d01b50e0d17dc79C8,42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(cmd)

			contractRef := ""
			if len(args) > 0 {
				contractRef = args[0]
			}
			contractName, err := app.ResolveContract.Run(cmd.Context(), contractRef)
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				ContractName: contractName,
				Args:         constructorArgs,
			})
			if err != nil {
				return err
			}

			stopProgress(cmd)
			return render.NewDeploymentRenderer(cmd.OutOrStdout(), app.Config.Output).RenderDeployment(result)
		},
	}

	cmd.Flags().StringSliceVar(&constructorArgs, "args", nil, "Constructor arguments, comma separated")

	return cmd
}
