package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
)

const testFoundryToml = `
[profile.default]
src = "src"
out = "artifacts"

[profile.default.treb.senders.deployer]
type = "private_key"
private_key = "${TEST_DEPLOYER_KEY}"

[profile.live.treb.senders.deployer]
type = "ledger"
derivation_path = "m/44'/60'/0'/0/0"

[rpc_endpoints]
sepolia = "${TEST_SEPOLIA_RPC_URL}"
local = "http://127.0.0.1:8545"

[etherscan]
sepolia = { key = "abc", url = "https://api-sepolia.etherscan.io/api" }
`

func writeProject(t *testing.T, foundryToml string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foundry.toml"), []byte(foundryToml), 0644))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestLoadFoundryConfig(t *testing.T) {
	dir := writeProject(t, testFoundryToml, map[string]string{
		".env": "TEST_SEPOLIA_RPC_URL=https://sepolia.example.org\n",
	})
	// godotenv.Load doesn't override variables that are already set
	require.NoError(t, os.Unsetenv("TEST_SEPOLIA_RPC_URL"))
	t.Cleanup(func() { os.Unsetenv("TEST_SEPOLIA_RPC_URL") })

	cfg, err := LoadFoundryConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://sepolia.example.org", cfg.RpcEndpoints["sepolia"])
	assert.Equal(t, "http://127.0.0.1:8545", cfg.RpcEndpoints["local"])
	assert.Equal(t, "https://api-sepolia.etherscan.io/api", cfg.Etherscan["sepolia"].URL)
	assert.Equal(t, "artifacts", cfg.OutDir("default"))
	assert.Equal(t, "artifacts", cfg.OutDir("live"))

	require.NotNil(t, cfg.Profile["default"].Treb)
	deployer := cfg.Profile["default"].Treb.Senders["deployer"]
	assert.Equal(t, config.SenderTypePrivateKey, deployer.Type)
	// sender keys stay unexpanded until resolution
	assert.Equal(t, "${TEST_DEPLOYER_KEY}", deployer.PrivateKey)
}

func TestLoadFoundryConfigMissingFile(t *testing.T) {
	_, err := LoadFoundryConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse foundry.toml")
}

func TestProvider(t *testing.T) {
	dir := writeProject(t, testFoundryToml, nil)

	t.Run("defaults", func(t *testing.T) {
		v := SetupViper(dir)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(dir, ".treb"), cfg.DataDir)
		assert.Equal(t, config.DefaultProfile, cfg.Profile)
		assert.Equal(t, config.DefaultSender, cfg.Sender)
		assert.Equal(t, config.DefaultContract, cfg.Contract)
		assert.Equal(t, time.Duration(0), cfg.Timeout)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "localhost", cfg.Network.Name)
		assert.Equal(t, "http://localhost:8545", cfg.Network.RPCURL)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("network", "", "")
		cmd.Flags().String("contract", "", "")
		cmd.Flags().String("timeout", "", "")
		cmd.Flags().Bool("skip-build", false, "")
		require.NoError(t, cmd.ParseFlags([]string{"--network", "local", "--contract", "Token", "--timeout", "2m", "--skip-build"}))

		v := SetupViper(dir)
		BindFlags(v, cmd)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Network.Name)
		assert.Equal(t, "http://127.0.0.1:8545", cfg.Network.RPCURL)
		assert.Equal(t, "Token", cfg.Contract)
		assert.Equal(t, 2*time.Minute, cfg.Timeout)
		assert.True(t, cfg.SkipBuild)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		t.Setenv("TREB_DEPLOY_SENDER", "ops")
		v := SetupViper(dir)
		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "ops", cfg.Sender)
	})

	t.Run("local config file", func(t *testing.T) {
		local := writeProject(t, testFoundryToml, map[string]string{
			".treb/config.local.json": `{"network": "local", "contract": "Registry"}`,
		})
		cfg, err := Provider(SetupViper(local))
		require.NoError(t, err)
		assert.Equal(t, "local", cfg.Network.Name)
		assert.Equal(t, "Registry", cfg.Contract)
	})

	t.Run("unknown network", func(t *testing.T) {
		v := SetupViper(dir)
		v.Set("network", "nowhere")
		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve network nowhere")
	})
}
