package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), cfg)
}

func TestLoadServerConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	yaml := `
host: 127.0.0.1
port: "9090"
environment: production
job_ttl: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 30*time.Minute, cfg.JobTTL)

	// Fields not set in the file keep their defaults.
	assert.Equal(t, int64(512), cfg.MaxUploadSizeMB)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
}

func TestLoadServerConfig_MissingFile(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadServerConfig_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("job_ttl: soon\n"), 0o644))

	_, err := LoadServerConfig(path)
	assert.ErrorContains(t, err, "job_ttl")
}

func TestLoadServerConfig_RejectsNonPositiveUploadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_upload_size_mb: 0\n"), 0o644))

	_, err := LoadServerConfig(path)
	assert.ErrorContains(t, err, "max_upload_size_mb")
}
