package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
)

const (
	// First anvil development key, never funded outside local chains
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	mintABI  = `[{"type":"function","name":"mintNFT","inputs":[{"name":"recipient","type":"address"},{"name":"tokenURI","type":"string"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable"}]`
	initCode = "0x6001600c60003960016000f300"
)

func init() {
	color.NoColor = true
}

// setupProject creates a Hardhat-style project, makes it the working
// directory and clears the variables the built-in sepolia profile reads.
func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hardhat.config.ts"), []byte("export default {}\n"), 0644))

	for _, name := range []string{"MyNFT", "MyToken"} {
		dir := filepath.Join(root, "artifacts", "contracts", name+".sol")
		require.NoError(t, os.MkdirAll(dir, 0755))
		artifact := `{"_format":"hh-sol-artifact-1","contractName":"` + name + `","sourceName":"contracts/` + name +
			`.sol","abi":` + mintABI + `,"bytecode":"` + initCode + `","deployedBytecode":"0x00","linkReferences":{},"deployedLinkReferences":{}}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(artifact), 0644))
	}

	t.Chdir(root)
	for _, key := range []string{"SEPOLIA_RPC_URL", "PRIVATE_KEY", "ETHERSCAN_API_KEY", "MINT_TOKEN_URI", "CATAPULT_NETWORK", "CATAPULT_OUTPUT", "CATAPULT_TIMEOUT"} {
		t.Setenv(key, "")
	}
	return root
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(bytes.NewReader(nil))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestDeployScript_MissingRPCURL(t *testing.T) {
	setupProject(t)
	t.Setenv("PRIVATE_KEY", testPrivateKey)

	stdout, _, err := executeCommand(t, NewDeployScriptCmd())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidNetworkConfig))
	assert.Contains(t, err.Error(), "invalid url")
	assert.Contains(t, err.Error(), "SEPOLIA_RPC_URL")
	assert.NotContains(t, stdout, "deployed to")
}

func TestDeployMyNFTScript_MissingPrivateKey(t *testing.T) {
	setupProject(t)
	// Nothing listens here; the key check must fail before any dial
	t.Setenv("SEPOLIA_RPC_URL", "http://127.0.0.1:1")

	stdout, _, err := executeCommand(t, NewDeployMyNFTScriptCmd())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSigner))
	assert.Empty(t, stdout)
}

func TestScripts_RejectArguments(t *testing.T) {
	setupProject(t)

	for _, cmd := range []*cobra.Command{NewDeployScriptCmd(), NewDeployMyNFTScriptCmd()} {
		t.Run(cmd.Name(), func(t *testing.T) {
			_, _, err := executeCommand(t, cmd, "extra")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown command")
		})
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "catapult version")
}

func TestDeployCmd_NonInteractiveNeedsContract(t *testing.T) {
	setupProject(t)
	t.Setenv("SEPOLIA_RPC_URL", "http://127.0.0.1:1")
	t.Setenv("PRIVATE_KEY", testPrivateKey)

	_, _, err := executeCommand(t, NewRootCmd(), "deploy", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract name is required")
}

func TestConfigCmd_SetShowRemove(t *testing.T) {
	root := setupProject(t)

	showNetwork := func(t *testing.T) string {
		t.Helper()
		stdout, _, err := executeCommand(t, NewRootCmd(), "config", "-o", "json")
		require.NoError(t, err)
		var shown struct {
			Network string `json:"network"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
		return shown.Network
	}

	assert.Equal(t, "sepolia", showNetwork(t))

	stdout, _, err := executeCommand(t, NewRootCmd(), "config", "set", "network", "localhost")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Set network to: localhost")
	assert.FileExists(t, filepath.Join(root, ".catapult", "config.local.json"))
	assert.Equal(t, "localhost", showNetwork(t))

	_, _, err = executeCommand(t, NewRootCmd(), "config", "set", "output", "xml")
	require.Error(t, err)

	stdout, _, err = executeCommand(t, NewRootCmd(), "config", "remove", "network")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed network (was: localhost)")
	assert.Equal(t, "sepolia", showNetwork(t))
}

func TestNetworksCmd_JSON(t *testing.T) {
	setupProject(t)
	t.Setenv("SEPOLIA_RPC_URL", "https://sepolia.infura.io/v3/secret")

	stdout, _, err := executeCommand(t, NewRootCmd(), "networks", "-o", "json")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "secret")
	assert.Contains(t, stdout, `"sepolia"`)
}

func TestContractsCmd_Filter(t *testing.T) {
	setupProject(t)

	stdout, _, err := executeCommand(t, NewRootCmd(), "contracts", "nft")
	require.NoError(t, err)
	assert.Contains(t, stdout, "MyNFT")
	assert.NotContains(t, stdout, "MyToken")
}

func TestRootCmd_RejectsUnknownOutput(t *testing.T) {
	setupProject(t)

	_, _, err := executeCommand(t, NewRootCmd(), "networks", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
