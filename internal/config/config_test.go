package config_test

import (
	"os"
	"passportmrz/internal/config"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 3, cfg.Verification.MaxAttempts)
	require.Equal(t, 10, cfg.Verification.Workers)
	require.False(t, cfg.Verification.AllowExpired)
	require.Empty(t, cfg.Countries.Path)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
logLevel: debug
http:
  addr: ":9090"
  allowedOrigins: ["https://review.example.com"]
countries:
  path: /etc/passportmrz/countries.csv
verification:
  maxAttempts: 5
  workers: 2
  jobTimeout: 1m
  allowExpired: true
`))
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://review.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "/etc/passportmrz/countries.csv", cfg.Countries.Path)
	require.Equal(t, 5, cfg.Verification.MaxAttempts)
	require.Equal(t, 2, cfg.Verification.Workers)
	require.Equal(t, time.Minute, cfg.Verification.JobTimeout)
	require.True(t, cfg.Verification.AllowExpired)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("VERIFICATION_WORKERS", "7")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(writeConfig(t, "verification:\n  workers: 2\n"))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Verification.Workers)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, "development", cfg.Environment)
}
