package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MYTH_API_BASE_URL", "MYTH_API_TIMEOUT", "MYTH_SNAPSHOT_DIR", "MYTH_ASSETS_DIR", "MYTH_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBaseURL, cfg.Upstream.BaseURL)
	assert.Zero(t, cfg.Upstream.Timeout)
	assert.Empty(t, cfg.Upstream.SnapshotDir)
	assert.Equal(t, "assets", cfg.Assets.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
}

func TestConfigDir(t *testing.T) {
	result := ConfigDir("/home/user/project")
	assert.Equal(t, "/home/user/project/.myth", result)
}

func TestConfigFilePath(t *testing.T) {
	result := ConfigFilePath("/home/user/project")
	assert.Equal(t, "/home/user/project/.myth/config.yaml", result)
}

func TestLoad_Missing(t *testing.T) {
	clearEnv(t)

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "myth init")
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	content := `upstream:
  base_url: https://myths.example.org/v1
  timeout: 5s
assets:
  dir: /srv/images
log:
  level: debug
  json: true
`
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://myths.example.org/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "/srv/images", cfg.Assets.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("log:\n  level: info\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Upstream.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("upstream: [unclosed"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadOrDefault_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYTH_API_BASE_URL", "http://mirror.local/api")
	t.Setenv("MYTH_API_TIMEOUT", "2s")
	t.Setenv("MYTH_SNAPSHOT_DIR", "/tmp/snapshots")
	t.Setenv("MYTH_ASSETS_DIR", "/tmp/assets")
	t.Setenv("MYTH_LOG_LEVEL", "debug")

	cfg, err := LoadOrDefault(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "http://mirror.local/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "/tmp/snapshots", cfg.Upstream.SnapshotDir)
	assert.Equal(t, "/tmp/assets", cfg.Assets.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadOrDefault_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))
	t.Setenv("MYTH_API_BASE_URL", "http://override/api")

	cfg, err := LoadOrDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://override/api", cfg.Upstream.BaseURL)
}

func TestLoadOrDefault_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYTH_API_TIMEOUT", "soon")

	_, err := LoadOrDefault(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing environment")
}

func TestWriteDefault(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWrite_PreservesTimeout(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg := Default()
	cfg.Upstream.Timeout = 1500 * time.Millisecond
	cfg.Upstream.SnapshotDir = filepath.Join(dir, "snap")

	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
