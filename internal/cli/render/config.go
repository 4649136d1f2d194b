package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/catapult/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out    io.Writer
	format string
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, format string) *ConfigRenderer {
	return &ConfigRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the resolved configuration
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	if r.format != FormatText {
		return Structured(r.out, r.format, result)
	}

	fmt.Fprintln(r.out, "📋 Current config:")
	configFile := result.ConfigFile
	if configFile == "" {
		configFile = "(built-in defaults)"
	}
	fmt.Fprintln(r.out, keyValues([][2]string{
		{"Project", result.ProjectRoot},
		{"Config file", configFile},
		{"Network", result.Network},
	}))

	if !result.Configured {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("network %q is not configured", result.Network)))
		return nil
	}

	fmt.Fprintln(r.out, keyValues([][2]string{
		{"Chain ID", fmt.Sprintf("%d", result.ChainID)},
		{"RPC URL", result.RPCURL},
		{"Deployer", result.Deployer},
		{"Explorer API", result.ExplorerAPIURL},
		{"Explorer key", result.ExplorerAPIKey},
		{"Marketplace", result.MarketplaceURL},
		{"Token URI", result.TokenURI},
		{"Timeout", result.Timeout},
	}))

	if len(result.MissingEnv) > 0 {
		fmt.Fprintln(r.out, FormatWarning("Unset environment variables: "+strings.Join(result.MissingEnv, ", ")))
	}
	return nil
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	if r.format != FormatText {
		return Structured(r.out, r.format, result)
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, result.Value)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	if r.format != FormatText {
		return Structured(r.out, r.format, result)
	}
	if result.RemovedValue == "" {
		fmt.Fprintf(r.out, "%s was not set\n", result.Key)
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s (was: %s)", result.Key, result.RemovedValue)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}

// relativePath returns path relative to the working directory when possible
func relativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}
