package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catein/episodemap/pkg/errors"
	"github.com/catein/episodemap/pkg/sync"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "episode_names.txt", config.MappingFile)
	assert.Equal(t, "Adventures in Odyssey", config.Community)
	assert.Equal(t, 500*time.Millisecond, config.RequestDelay)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
	assert.Equal(t, sync.DefaultCategories(), config.Categories)
	assert.NotEmpty(t, config.LogFormat)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MAPPING_FILE", "/tmp/names.txt")
	t.Setenv("VIEWER_ID", "viewer-42")
	t.Setenv("REQUEST_DELAY", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/names.txt", config.MappingFile)
	assert.Equal(t, "viewer-42", config.ViewerID)
	assert.Equal(t, 2*time.Second, config.RequestDelay)
	assert.Equal(t, "debug", config.EnvLogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episodemap.yaml")
	content := `mapping_file: data/names.txt
request_delay: 0s
categories:
  - name: Album
    page_size: 100
  - name: Episode Home
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, "data/names.txt", config.MappingFile)
	assert.Zero(t, config.RequestDelay)
	assert.Equal(t, []sync.Category{
		{Name: "Album", PageSize: 100},
		{Name: "Episode Home", PageSize: 500},
	}, config.Categories)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	var configErr *errors.ConfigError
	assert.True(t, errors.As(err, &configErr), "missing explicit file: %v", err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("request_delay: -1s\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.True(t, errors.As(err, &configErr), "negative delay: %v", err)

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("categories:\n  - name: Album\n  - name: Album\n"), 0o644))
	_, err = LoadConfig(dup)
	assert.True(t, errors.As(err, &configErr), "duplicate category: %v", err)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{MappingFile: "episode_names.txt", Format: "yaml"}

	config.UpdateFromFlags(true, false, true, "", "warn", "out/./names.txt")

	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "out/names.txt", config.MappingFile)
}
