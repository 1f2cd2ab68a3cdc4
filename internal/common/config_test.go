package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "./data/lineage", config.Storage.Badger.Path)
	assert.Equal(t, "info", config.Logging.Level)
	assert.False(t, config.IsProduction())
}

func TestLoadFromFilesMergesInOrder(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.toml")
	require.NoError(t, os.WriteFile(first, []byte(`
environment = "production"

[storage.badger]
path = "/tmp/first"
`), 0644))

	second := filepath.Join(dir, "second.toml")
	require.NoError(t, os.WriteFile(second, []byte(`
[storage.badger]
path = "/tmp/second"
reset_on_startup = true
`), 0644))

	config, err := LoadFromFiles(first, second)
	require.NoError(t, err)

	// Later files override earlier files; untouched keys keep defaults.
	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "/tmp/second", config.Storage.Badger.Path)
	assert.True(t, config.Storage.Badger.ResetOnStartup)
	assert.Equal(t, "info", config.Logging.Level)
	assert.True(t, config.IsProduction())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/lineage.toml")
	assert.Error(t, err)
}

func TestLoadFromFilesInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "verbose"
`), 0644))

	_, err := LoadFromFiles(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LINEAGE_STORAGE_PATH", "/tmp/env-storage")
	t.Setenv("LINEAGE_LOG_LEVEL", "debug")
	t.Setenv("LINEAGE_LOG_OUTPUT", "stdout, file")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-storage", config.Storage.Badger.Path)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
}

func TestEntityIDPrefixes(t *testing.T) {
	assert.Contains(t, NewPersonID(), "person_")
	assert.Contains(t, NewRelationshipID(), "rel_")
	assert.Contains(t, NewEventID(), "event_")
	assert.Contains(t, NewMediaID(), "media_")
	assert.NotEqual(t, NewPersonID(), NewPersonID())
}
