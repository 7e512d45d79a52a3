package config_test

import (
	"os"
	"path/filepath"
	"portal/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Empty(t, cfg.LogLevel)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	require.EqualValues(t, 10<<20, cfg.HTTP.MaxUploadBytes)
	require.Equal(t, "portal", cfg.Database.DatabaseName)
	require.Equal(t, "portal", cfg.Database.ApplicationName)
	require.Equal(t, 30*time.Second, cfg.Database.StatementTimeout)
	require.Equal(t, "en", cfg.Extraction.Language)
	require.InDelta(t, 0.6, cfg.Extraction.MinConfidence, 1e-9)
	require.Equal(t, 10*time.Second, cfg.Extraction.Timeout)
	require.Empty(t, cfg.Extraction.Token)
	require.Equal(t, 10, cfg.Worker.MaxWorkers)
	require.Equal(t, time.Minute, cfg.Worker.JobTimeout)
	require.Equal(t, 5, cfg.Worker.MaxAttempts)
	require.Equal(t, time.Minute, cfg.Worker.UniquePeriod)
}

func TestLoad_fileAndEnv(t *testing.T) {
	path := writeConfig(t, `
environment: production
http:
  addr: ":9090"
  corsOrigins: ["https://portal.example.edu"]
extraction:
  minConfidence: 0.7
  taxonomyPath: /etc/portal/taxonomy.yml
worker:
  maxWorkers: 3
`)
	t.Setenv("EXTRACTION_TOKEN", "secret")
	t.Setenv("WORKER_MAX_ATTEMPTS", "2")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://portal.example.edu"}, cfg.HTTP.CORSOrigins)
	require.InDelta(t, 0.7, cfg.Extraction.MinConfidence, 1e-9)
	require.Equal(t, "/etc/portal/taxonomy.yml", cfg.Extraction.TaxonomyPath)
	require.Equal(t, "secret", cfg.Extraction.Token)
	require.Equal(t, 3, cfg.Worker.MaxWorkers)
	require.Equal(t, 2, cfg.Worker.MaxAttempts)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
