package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

type memoryConfigStore struct {
	cfg   *config.LocalConfig
	saved int
}

func (m *memoryConfigStore) Exists() bool { return m.cfg != nil }

func (m *memoryConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	if m.cfg == nil {
		return &config.LocalConfig{}, nil
	}
	copied := *m.cfg
	return &copied, nil
}

func (m *memoryConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	m.cfg = cfg
	m.saved++
	return nil
}

func (m *memoryConfigStore) GetPath() string { return "/project/.catapult/config.local.json" }

func TestSetConfig_Run(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantKey config.ConfigKey
		wantErr string
	}{
		{name: "network", key: "network", value: "sepolia", wantKey: config.ConfigKeyNetwork},
		{name: "dashed key", key: "Token-URI", value: "ipfs://x", wantKey: config.ConfigKeyTokenURI},
		{name: "timeout", key: "timeout", value: "90s", wantKey: config.ConfigKeyTimeout},
		{name: "bad timeout", key: "timeout", value: "soon", wantErr: "invalid timeout"},
		{name: "bad output", key: "output", value: "xml", wantErr: "invalid output"},
		{name: "empty value", key: "network", value: " ", wantErr: "must not be empty"},
		{name: "unknown key", key: "namespace", value: "x", wantErr: "unknown config key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryConfigStore{}
			result, err := NewSetConfig(store).Run(context.Background(), SetConfigParams{Key: tt.key, Value: tt.value})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Zero(t, store.saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, result.Key)
			assert.Equal(t, tt.value, store.cfg.Get(tt.wantKey))
		})
	}
}

func TestRemoveConfig_Run(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		_, err := NewRemoveConfig(&memoryConfigStore{}).Run(context.Background(), RemoveConfigParams{Key: "network"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no config file found")
	})

	t.Run("removes value", func(t *testing.T) {
		store := &memoryConfigStore{cfg: &config.LocalConfig{Network: "sepolia", Timeout: "1m"}}
		result, err := NewRemoveConfig(store).Run(context.Background(), RemoveConfigParams{Key: "network"})
		require.NoError(t, err)
		assert.Equal(t, "sepolia", result.RemovedValue)
		assert.Empty(t, store.cfg.Network)
		assert.Equal(t, "1m", store.cfg.Timeout)
	})
}
