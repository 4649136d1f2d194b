package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandValue(t *testing.T) {
	t.Setenv("CATAPULT_TEST_HOST", "rpc.example.org")
	t.Setenv("CATAPULT_TEST_KEY", "abc123")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"whole value", "${CATAPULT_TEST_HOST}", "rpc.example.org"},
		{"embedded", "https://${CATAPULT_TEST_HOST}/v3/${CATAPULT_TEST_KEY}", "https://rpc.example.org/v3/abc123"},
		{"unset expands to empty", "${CATAPULT_TEST_UNSET_VAR}", ""},
		{"plain dollar untouched", "$CATAPULT_TEST_HOST", "$CATAPULT_TEST_HOST"},
		{"literal", "https://sepolia.etherscan.io", "https://sepolia.etherscan.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandValue(tt.raw))
		})
	}
}

func TestMissingEnvVars(t *testing.T) {
	t.Setenv("CATAPULT_TEST_SET", "1")
	t.Setenv("CATAPULT_TEST_EMPTY", "")

	missing := MissingEnvVars("${CATAPULT_TEST_SET}", "${CATAPULT_TEST_EMPTY}", "x/${CATAPULT_TEST_EMPTY}")
	assert.Equal(t, []string{"CATAPULT_TEST_EMPTY"}, missing)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("CATAPULT_DOTENV_A=from-env\nCATAPULT_DOTENV_B=from-env\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("CATAPULT_DOTENV_C=from-local\n"), 0644))

	// Already exported values win over .env files
	t.Setenv("CATAPULT_DOTENV_B", "from-process")
	t.Cleanup(func() {
		os.Unsetenv("CATAPULT_DOTENV_A")
		os.Unsetenv("CATAPULT_DOTENV_C")
	})

	require.NoError(t, LoadDotEnv(dir))

	assert.Equal(t, "from-env", os.Getenv("CATAPULT_DOTENV_A"))
	assert.Equal(t, "from-process", os.Getenv("CATAPULT_DOTENV_B"))
	assert.Equal(t, "from-local", os.Getenv("CATAPULT_DOTENV_C"))
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	assert.NoError(t, LoadDotEnv(t.TempDir()))
}
