package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mainnet", config.Network)

	profile, err := config.Active()
	require.NoError(t, err)
	assert.Equal(t, "XRP", profile.NativeAsset)
	assert.Equal(t, uint32(0), profile.NetworkID)

	xahau, ok := config.Profiles["xahau"]
	require.True(t, ok)
	assert.Equal(t, "XAH", xahau.NativeAsset)
	assert.Equal(t, uint32(21337), xahau.NetworkID)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledgerlens.toml")
	content := `network = "xahau"

[profiles.testnet]
name = "testnet"
network_id = 1
native_asset = "XRP"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := Load(path)
	require.NoError(t, err)

	profile, err := config.Active()
	require.NoError(t, err)
	assert.Equal(t, "XAH", profile.NativeAsset)

	testnet, ok := config.Profiles["testnet"]
	require.True(t, ok)
	assert.Equal(t, uint32(1), testnet.NetworkID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadUnknownNetworkSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledgerlens.toml")
	require.NoError(t, os.WriteFile(path, []byte(`network = "devnet"`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "devnet")
}

func TestActiveUnknownProfile(t *testing.T) {
	config := &Config{Network: "missing", Profiles: map[string]Profile{}}
	_, err := config.Active()
	assert.Error(t, err)
}
