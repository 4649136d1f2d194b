package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// LocalConfigDir is the per-project directory holding local settings
const LocalConfigDir = ".catapult"

// LocalConfigFile is read by viper as well, so it may carry keys such as
// debug or log_level that LocalConfig does not model.
const LocalConfigFile = "config.local.json"

// LocalConfigStoreAdapter implements LocalConfigStore on top of
// .catapult/config.local.json
type LocalConfigStoreAdapter struct {
	path string
}

// NewLocalConfigStoreAdapter creates a store rooted at the project directory
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{
		path: filepath.Join(cfg.ProjectRoot, LocalConfigDir, LocalConfigFile),
	}
}

// Exists reports whether the file is present
func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load returns an empty config when the file is absent
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return &config.LocalConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", LocalConfigFile, err)
	}

	var local config.LocalConfig
	if err := json.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", LocalConfigFile, err)
	}
	return &local, nil
}

// Save rewrites the modelled keys and keeps every other key in the file.
// The new content replaces the old file in a single rename.
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, local *config.LocalConfig) error {
	doc, err := s.readRaw()
	if err != nil {
		return err
	}

	for _, key := range config.ValidConfigKeys() {
		value := local.Get(key)
		if value == "" {
			delete(doc, string(key))
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		doc[string(key)] = encoded
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, LocalConfigFile+".*")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// GetPath returns the path to the config file
func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.path
}

func (s *LocalConfigStoreAdapter) readRaw() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", LocalConfigFile, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", LocalConfigFile, err)
	}
	return doc, nil
}

var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
