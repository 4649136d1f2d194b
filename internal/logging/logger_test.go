package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name string
		env  string
		cfg  *config.RuntimeConfig
		want slog.Level
	}{
		{"default is warn", "", &config.RuntimeConfig{}, slog.LevelWarn},
		{"nil config", "", nil, slog.LevelWarn},
		{"debug flag wins", "error", &config.RuntimeConfig{Debug: true}, slog.LevelDebug},
		{"env level", "info", &config.RuntimeConfig{LogLevel: "error"}, slog.LevelInfo},
		{"configured level", "", &config.RuntimeConfig{LogLevel: "ERROR"}, slog.LevelError},
		{"unknown falls back", "loud", &config.RuntimeConfig{}, slog.LevelWarn},
		{"warning alias", "warning", nil, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LogLevelEnv, tt.env)
			assert.Equal(t, tt.want, ResolveLevel(tt.cfg))
		})
	}
}

func TestNew_OmitsTime(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Info("deployed", "address", "0xabc")
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "msg=deployed")
	assert.Contains(t, out, "address=0xabc")
	assert.NotContains(t, out, "time=")
	assert.NotContains(t, out, "hidden")
}
