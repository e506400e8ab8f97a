package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, 8556, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 256, cfg.QR.Size)
	assert.Equal(t, "medium", cfg.QR.RecoveryLevel)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout.Duration)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	yml := `
port: 9000
data_dir: /tmp/qrgen
theme: dark
qr:
  size: 512
  recovery_level: high
history:
  enabled: false
shutdown_timeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/qrgen", cfg.DataDir)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 512, cfg.QR.Size)
	assert.Equal(t, "high", cfg.QR.RecoveryLevel)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 50, cfg.History.Limit, "unset keys keep defaults")
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout.Duration)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shutdown_timeout: soon\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QRGEN_PORT", "7000")
	t.Setenv("QRGEN_LOG_LEVEL", "debug")
	t.Setenv("QRGEN_QR_SIZE", "128")
	t.Setenv("QRGEN_HISTORY", "no")
	t.Setenv("QRGEN_THEME", "dark")
	t.Setenv("QRGEN_SHUTDOWN_TIMEOUT", "1m")

	cfg, err := Load("missing.yaml")
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 128, cfg.QR.Size)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout.Duration)
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QRGEN_OUTPUT_DIR=/srv/qr\n"), 0o644))
	t.Setenv("QRGEN_OUTPUT_DIR", "")
	os.Unsetenv("QRGEN_OUTPUT_DIR")

	cfg, err := Load("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/qr", cfg.OutputDir)
}

func TestEnsureDataDir(t *testing.T) {
	cfg := defaults()
	cfg.DataDir = filepath.Join(t.TempDir(), "nested", "data")

	require.NoError(t, cfg.EnsureDataDir())
	info, err := os.Stat(cfg.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(cfg.DataDir, "history.db"), cfg.HistoryPath())
}

func TestLoadExpandsHome(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("QRGEN_DATA_DIR", "~/.qrgen")

	cfg, err := Load("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".qrgen"), cfg.DataDir)
}
