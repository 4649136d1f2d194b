package config

import "strings"

// LocalConfig holds per-project defaults stored in .catapult/config.local.json
type LocalConfig struct {
	Network  string `json:"network,omitempty"`
	Output   string `json:"output,omitempty"`
	Timeout  string `json:"timeout,omitempty"`
	TokenURI string `json:"token_uri,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork  ConfigKey = "network"
	ConfigKeyOutput   ConfigKey = "output"
	ConfigKeyTimeout  ConfigKey = "timeout"
	ConfigKeyTokenURI ConfigKey = "token_uri"
)

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyOutput,
		ConfigKeyTimeout,
		ConfigKeyTokenURI,
	}
}

// NormalizeConfigKey lowercases a key and accepts dashes for underscores
func NormalizeConfigKey(key string) ConfigKey {
	return ConfigKey(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_"))
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	normalized := NormalizeConfigKey(key)
	for _, validKey := range ValidConfigKeys() {
		if validKey == normalized {
			return true
		}
	}
	return false
}

// Get returns the value stored under key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyNetwork:
		return c.Network
	case ConfigKeyOutput:
		return c.Output
	case ConfigKeyTimeout:
		return c.Timeout
	case ConfigKeyTokenURI:
		return c.TokenURI
	}
	return ""
}

// Set stores value under key; an empty value clears it
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyNetwork:
		c.Network = value
	case ConfigKeyOutput:
		c.Output = value
	case ConfigKeyTimeout:
		c.Timeout = value
	case ConfigKeyTokenURI:
		c.TokenURI = value
	}
}
