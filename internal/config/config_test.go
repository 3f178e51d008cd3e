package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("/tmp/accounts-data")
	cfg.Display.Currency = "USD"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Storage.Dir, got.Storage.Dir)
	assert.Equal(t, cfg.Storage.Key, got.Storage.Key)
	assert.Equal(t, "USD", got.Display.Currency)
	assert.Equal(t, cfg.Server.Addr, got.Server.Addr)
}

func TestDefaults(t *testing.T) {
	cfg := Default("/data")

	assert.Equal(t, "/data", cfg.Storage.Dir)
	assert.Equal(t, "accounts", cfg.Storage.Key)
	assert.Equal(t, "BDT", cfg.Display.Currency)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ACCOUNTS_DATA_DIR", "/override")
	t.Setenv("ACCOUNTS_CURRENCY", "EUR")

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("/data")))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/override", got.Storage.Dir)
	assert.Equal(t, "EUR", got.Display.Currency)
	assert.Equal(t, "accounts", got.Storage.Key, "untouched fields keep file values")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("storage: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
