package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/adapters/progress"
	"github.com/trebuchet-org/catapult/internal/app"
	"github.com/trebuchet-org/catapult/internal/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// progressKey is the context key for the command's progress sink
	progressKey contextKey = "progress"
)

// NewRootCmd creates the root command for the catapult CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catapult",
		Short: "Deploy and mint compiled contracts on EVM networks",
		Long: `Catapult deploys Hardhat or Foundry artifacts to a configured EVM network,
mints tokens on freshly deployed ERC-721 contracts and verifies sources on
Etherscan-compatible explorers.

Networks come from catapult.toml (or the built-in sepolia profile) with
${VAR} references filled from the environment and .env.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return initApp(cmd, func(cfg *config.RuntimeConfig) usecase.ProgressSink {
				return commandProgress(cmd, cfg)
			})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (default from catapult.toml, else sepolia)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort after this long (0 waits indefinitely)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	mintCmd := NewMintCmd()
	mintCmd.GroupID = "main"
	rootCmd.AddCommand(mintCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "main"
	rootCmd.AddCommand(verifyCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	contractsCmd := NewContractsCmd()
	contractsCmd.GroupID = "management"
	rootCmd.AddCommand(contractsCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initApp loads configuration, wires the app and stores it in the command context
func initApp(cmd *cobra.Command, newSink func(cfg *config.RuntimeConfig) usecase.ProgressSink) error {
	projectRoot := config.FindProjectRoot()
	v := config.SetupViper(projectRoot, cmd)

	cfg, err := config.Provider(v)
	if err != nil {
		return err
	}
	if !isTerminal(cmd.InOrStdin()) {
		cfg.NonInteractive = true
	}

	sink := newSink(cfg)
	appInstance, err := app.InitApp(cfg, sink)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	appInstance.Log.Debug("configuration loaded", "project_root", cfg.ProjectRoot, "network", cfg.NetworkName, "config_file", cfg.ConfigFile)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, appKey, appInstance)
	ctx = context.WithValue(ctx, progressKey, sink)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		cmd.PostRun = func(cmd *cobra.Command, args []string) {
			cancel()
		}
	}

	cmd.SetContext(ctx)
	return nil
}

// commandProgress picks the progress sink for CLI commands
func commandProgress(cmd *cobra.Command, cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.Output != "text" {
		return usecase.NopProgress{}
	}
	errOut := cmd.ErrOrStderr()
	return progress.NewSpinnerProgress(errOut, !cfg.NonInteractive && isTerminal(errOut))
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// stopProgress clears a running spinner before output is rendered
func stopProgress(cmd *cobra.Command) {
	if cmd.Context() == nil {
		return
	}
	if s, ok := cmd.Context().Value(progressKey).(interface{ Stop() }); ok {
		s.Stop()
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

