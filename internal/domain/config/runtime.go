package config

import (
	"time"

	"github.com/trebuchet-org/catapult/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot"`
	ConfigFile  string `json:"configFile,omitempty" yaml:"configFile,omitempty"` // catapult.toml path, "" when absent

	// Context settings
	NetworkName string                            `json:"networkName" yaml:"networkName"`
	Network     *domain.NetworkProfile            `json:"network,omitempty" yaml:"network,omitempty"` // nil if the name is unknown
	Networks    map[string]*domain.NetworkProfile `json:"-" yaml:"-"`
	MissingEnv  map[string][]string               `json:"-" yaml:"-"` // network -> unset ${VAR} references

	// Execution settings
	Debug          bool          `json:"debug" yaml:"debug"`
	NonInteractive bool          `json:"nonInteractive" yaml:"nonInteractive"`
	Output         string        `json:"output" yaml:"output"`
	LogLevel       string        `json:"logLevel" yaml:"logLevel"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`

	// Mint settings
	TokenURI string `json:"tokenUri" yaml:"tokenUri"`
}
