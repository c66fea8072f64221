package iofs_test

import (
	"os"
	"testing"

	"github.com/redbuttegarden/brahmsync/internal/iofs"
	"github.com/redbuttegarden/brahmsync/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{config.ConfigDir(home), config.LogDir(home)} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// idempotent
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	data, err := os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "redbuttegarden.org", cfg.API.Host)
	assert.Equal(t, "|", cfg.Files.Delimiter)

	// credentials never end up on disk
	assert.NotContains(t, string(data), "username")
	assert.NotContains(t, string(data), "password")
}

func TestEnsureConfigFileKeepsExisting(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	path := config.ConfigFilePath(home)
	require.NoError(t, os.WriteFile(path, []byte("api:\n  host: edited\n"), 0644))

	require.NoError(t, iofs.EnsureConfigFile(home))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "edited")
}
