package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "sqlite", c.Driver)
	assert.Equal(t, "adatasks.db", c.DSN)
	assert.Equal(t, "ada_", c.Namespace)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 30*time.Second, c.BackupTimeout)
	assert.False(t, c.Seed)
	assert.False(t, c.BackupEnabled())
}

func TestLoadConfig_NoSources(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	want := defaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"driver":    "postgres",
		"dsn":       "postgres://json",
		"namespace": "json_",
		"log_level": "warn",
	})
	t.Setenv("ADATASKS_DSN", "env-dsn")
	t.Setenv("ADATASKS_LIST", "estudos")
	t.Setenv("ADATASKS_LOG_LEVEL", "debug")

	cfg, err := LoadConfig([]string{"-c", path, "-dsn", "flag-dsn", "-seed"})
	require.NoError(t, err)

	want := defaults()
	want.Driver = "postgres"
	want.DSN = "flag-dsn"
	want.Namespace = "json_"
	want.CurrentList = "estudos"
	want.LogLevel = "warn"
	want.Seed = true
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("bad flag", func(t *testing.T) {
		_, err := LoadConfig([]string{"-seed=maybe"})
		require.Error(t, err)
	})
	t.Run("bad env bool", func(t *testing.T) {
		t.Setenv("ADATASKS_HARDENED", "sure")
		_, err := LoadConfig(nil)
		require.ErrorContains(t, err, "ADATASKS_HARDENED")
	})
	t.Run("missing json", func(t *testing.T) {
		_, err := LoadConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
	})
	t.Run("missing env file", func(t *testing.T) {
		_, err := LoadConfig([]string{"-env", filepath.Join(t.TempDir(), "nope.env")})
		require.Error(t, err)
	})
}
