package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "Cebu", cfg.Forecast.DefaultCity)
	assert.Equal(t, 7, cfg.Forecast.Days)
	assert.Equal(t, time.Second, cfg.Forecast.Debounce.Duration)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.API.APIKey = "secret"
	cfg.Forecast.DefaultCity = "Manila"
	cfg.Forecast.Debounce = Duration{750 * time.Millisecond}
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "Manila")
	assert.Contains(t, string(data), "750ms")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
api_key = "k"
base_url = "http://localhost:9999/v1/"

[forecast]
days = 0
`), 0600))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "k", cfg.API.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.API.BaseURL)
	assert.Equal(t, DefaultDays, cfg.Forecast.Days)
	assert.Equal(t, DefaultCity, cfg.Forecast.DefaultCity)
	assert.Equal(t, DefaultDebounce, cfg.Forecast.Debounce.Duration)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[forecast]\ndebounce = \"soon\"\n"), 0600))

	_, err := NewConfigServiceAt(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "a.toml"))

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "from-env")
	t.Setenv("WEATHER_API_BASE_URL", "http://example.test/v1")
	t.Setenv("SKYGLANCE_DEFAULT_CITY", "Davao")
	t.Setenv("SKYGLANCE_DEBOUNCE", "250ms")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, "from-env", cfg.API.APIKey)
	assert.Equal(t, "http://example.test/v1", cfg.API.BaseURL)
	assert.Equal(t, "Davao", cfg.Forecast.DefaultCity)
	assert.Equal(t, 250*time.Millisecond, cfg.Forecast.Debounce.Duration)
}

func TestApplyEnvReadsDotenvFile(t *testing.T) {
	// Registered with t.Setenv so the value set by the .env file is restored.
	t.Setenv("WEATHER_API_KEY", "")
	require.NoError(t, os.Unsetenv("WEATHER_API_KEY"))

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("WEATHER_API_KEY=dotenv-key\n"), 0600))

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, dotenv))
	assert.Equal(t, "dotenv-key", cfg.API.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate())

	cfg.API.APIKey = "k"
	require.NoError(t, cfg.Validate())
}
