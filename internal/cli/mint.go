package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NewMintCmd creates the mint command
func NewMintCmd() *cobra.Command {
	var (
		contract  string
		tokenURI  string
		method    string
		recipient string
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Deploy an ERC-721 contract and mint one token",
		Long: `Deploy an ERC-721 contract, wait for confirmation, then call
mintNFT(recipient, tokenURI) on it and wait for the mint to be mined.

The token URI defaults to MINT_TOKEN_URI and the recipient to the deployer.

Examples:
  catapult mint
  catapult mint --token-uri ipfs://bafy.../metadata.json
  catapult mint --contract MyNFT --to 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(cmd)

			params := usecase.DeployAndMintParams{
				ContractName: contract,
				TokenURI:     tokenURI,
				Method:       method,
			}
			if recipient != "" {
				if !common.IsHexAddress(recipient) {
					return fmt.Errorf("invalid recipient address %q", recipient)
				}
				to := common.HexToAddress(recipient)
				params.Recipient = &to
			}

			result, err := app.DeployAndMint.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			stopProgress(cmd)
			return render.NewDeploymentRenderer(cmd.OutOrStdout(), app.Config.Output).RenderMint(result)
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "MyNFT", "ERC-721 contract to deploy")
	cmd.Flags().StringVar(&tokenURI, "token-uri", "", "Token metadata URI (default $MINT_TOKEN_URI)")
	cmd.Flags().StringVar(&method, "method", usecase.DefaultMintMethod, "Mint method taking (address, string)")
	cmd.Flags().StringVar(&recipient, "to", "", "Token recipient (default deployer)")

	return cmd
}
