package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.True(t, isTerminal(tty))
	assert.False(t, isTerminal(r))
	assert.False(t, isTerminal(&bytes.Buffer{}))
	assert.False(t, isTerminal(nil))
}

func TestRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	want := map[string]string{
		"deploy":    "main",
		"mint":      "main",
		"verify":    "main",
		"networks":  "management",
		"contracts": "management",
		"config":    "management",
		"version":   "",
	}
	for name, group := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
		assert.Equal(t, group, cmd.GroupID, name)
	}

	for _, flag := range []string{"network", "debug", "non-interactive", "output", "timeout"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}
