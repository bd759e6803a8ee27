package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	t.Setenv("ADATASKS_DRIVER", "mysql")
	t.Setenv("ADATASKS_SEED", "true")
	t.Setenv("ADATASKS_HARDENED", "1")
	t.Setenv("ADATASKS_S3_ACCESS_KEY", "minio")
	t.Setenv("ADATASKS_S3_SECRET_KEY", "minio123")
	t.Setenv("ADATASKS_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("ADATASKS_BACKUP_TIMEOUT", "5s")

	cfg := defaults()
	require.NoError(t, parseEnv(&cfg, nil))

	assert.Equal(t, "mysql", cfg.Driver)
	assert.True(t, cfg.Seed)
	assert.True(t, cfg.Hardened)
	assert.Equal(t, "http://localhost:9000", cfg.S3BaseEndpoint)
	assert.Equal(t, 5*time.Second, cfg.BackupTimeout)
	assert.True(t, cfg.BackupEnabled())
}

func TestParseEnv_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ADATASKS_NAMESPACE=file_\nADATASKS_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("ADATASKS_NAMESPACE")
		os.Unsetenv("ADATASKS_LOG_FORMAT")
	})
	t.Setenv("ADATASKS_LOG_FORMAT", "text")

	cfg := defaults()
	require.NoError(t, parseEnv(&cfg, []string{"-env", path}))

	assert.Equal(t, "file_", cfg.Namespace)
	assert.Equal(t, "text", cfg.LogFormat, "process environment wins over the file")
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("ADATASKS_BACKUP_TIMEOUT", "later")
	cfg := defaults()
	require.ErrorContains(t, parseEnv(&cfg, nil), "ADATASKS_BACKUP_TIMEOUT")
}
