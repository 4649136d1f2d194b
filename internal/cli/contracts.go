package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NewContractsCmd creates the contracts command
func NewContractsCmd() *cobra.Command {
	var params usecase.ListContractsParams

	cmd := &cobra.Command{
		Use:     "contracts [filter]",
		Aliases: []string{"ls"},
		Short:   "List compiled contracts",
		Long: `List contracts found in Hardhat artifacts/ and Foundry out/.

An optional filter matches the contract name or source path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				params.Filter = args[0]
			}
			result, err := app.ListContracts.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewContractsRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result)
		},
	}

	cmd.Flags().BoolVar(&params.DeployableOnly, "deployable", false, "Only show contracts with creation bytecode")

	return cmd
}
