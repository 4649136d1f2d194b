package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultTokenURI is the metadata URI minted when MINT_TOKEN_URI is unset
const DefaultTokenURI = "ipfs://bafkreiaok2xuspb5cnjajjaqa3n7qvr3maudvaryrj6fx72p5hqa5ybhzi"

// projectMarkers identify a project root, checked in order
var projectMarkers = []string{
	ConfigFileName,
	"hardhat.config.ts",
	"hardhat.config.js",
	"foundry.toml",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	if err := LoadDotEnv(projectRoot); err != nil {
		return nil, err
	}

	networks, err := LoadNetworks(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load networks: %w", err)
	}

	output := strings.ToLower(v.GetString("output"))
	switch output {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported output format %q (want text, json or yaml)", output)
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		ConfigFile:     networks.ConfigFile,
		Networks:       networks.Profiles,
		MissingEnv:     networks.MissingEnv,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Output:         output,
		LogLevel:       v.GetString("log_level"),
		Timeout:        v.GetDuration("timeout"),
		TokenURI:       v.GetString("token_uri"),
	}

	cfg.NetworkName = v.GetString("network")
	if cfg.NetworkName == "" {
		cfg.NetworkName = networks.DefaultNetwork
	}

	// An unknown name is reported by the use case that needs a network
	if profile, ok := networks.Profiles[cfg.NetworkName]; ok {
		cfg.Network = profile
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a
// project marker file and falls back to the current directory.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance. cmd may be nil.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".catapult"))

	// Set up environment variables
	v.SetEnvPrefix("CATAPULT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	_ = v.BindEnv("token_uri", "MINT_TOKEN_URI")

	// Set defaults
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("output", "text")
	v.SetDefault("log_level", "")
	v.SetDefault("token_uri", DefaultTokenURI)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd == nil {
		return v
	}

	bind := func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)

	return v
}
