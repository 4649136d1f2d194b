package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig `json:"config" yaml:"config"`
	ConfigPath    string              `json:"configPath" yaml:"configPath"`
	Key           config.ConfigKey    `json:"key" yaml:"key"`
	Value         string              `json:"value" yaml:"value"`
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store LocalConfigStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigStore) *SetConfig {
	return &SetConfig{
		store: store,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := validConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(params.Value)
	if err := validateConfigValue(key, value); err != nil {
		return nil, err
	}

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Set(key, value)

	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: cfg,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         value,
	}, nil
}

func validConfigKey(raw string) (config.ConfigKey, error) {
	if !config.IsValidConfigKey(raw) {
		keys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(keys, ", "))
	}
	return config.NormalizeConfigKey(raw), nil
}

func validateConfigValue(key config.ConfigKey, value string) error {
	if value == "" {
		return fmt.Errorf("value for %s must not be empty (use config remove)", key)
	}
	switch key {
	case config.ConfigKeyOutput:
		if !lo.Contains([]string{"text", "json", "yaml"}, strings.ToLower(value)) {
			return fmt.Errorf("invalid output %q (want text, json or yaml)", value)
		}
	case config.ConfigKeyTimeout:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
	}
	return nil
}
