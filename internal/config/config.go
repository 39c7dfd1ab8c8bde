package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultBaseURL  = "https://api.weatherapi.com/v1"
	DefaultCity     = "Cebu"
	DefaultDays     = 7
	DefaultDebounce = 1000 * time.Millisecond
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	API      APISettings    `toml:"api"`
	Forecast ForecastConfig `toml:"forecast"`
	UI       UISettings     `toml:"ui"`
}

// APISettings configures the weather API client
type APISettings struct {
	BaseURL           string   `toml:"base_url"`
	APIKey            string   `toml:"api_key"`
	Timeout           Duration `toml:"timeout"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
}

// ForecastConfig configures the search and forecast flow
type ForecastConfig struct {
	DefaultCity string   `toml:"default_city"`
	Days        int      `toml:"days"`
	Debounce    Duration `toml:"debounce"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"`
}

// Duration is a time.Duration stored as a string such as "1s" or "750ms"
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// envOverrides are read from the process environment after .env is loaded
type envOverrides struct {
	APIKey      string        `env:"WEATHER_API_KEY"`
	BaseURL     string        `env:"WEATHER_API_BASE_URL"`
	DefaultCity string        `env:"SKYGLANCE_DEFAULT_CITY"`
	Debounce    time.Duration `env:"SKYGLANCE_DEBOUNCE"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "skyglance", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file can hold an API key.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv loads the given .env files (missing ones are skipped) and then
// overrides cfg with any WEATHER_API_* / SKYGLANCE_* variables that are set.
func ApplyEnv(cfg *Config, dotenvFiles ...string) error {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	overrides, err := env.ParseAs[envOverrides]()
	if err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	if overrides.APIKey != "" {
		cfg.API.APIKey = overrides.APIKey
	}
	if overrides.BaseURL != "" {
		cfg.API.BaseURL = overrides.BaseURL
	}
	if overrides.DefaultCity != "" {
		cfg.Forecast.DefaultCity = overrides.DefaultCity
	}
	if overrides.Debounce > 0 {
		cfg.Forecast.Debounce = Duration{overrides.Debounce}
	}
	cfg.normalize()

	return nil
}

// Validate reports configuration that would prevent the app from working
func (c *Config) Validate() error {
	if c.API.APIKey == "" {
		return errors.New("no API key configured: set WEATHER_API_KEY or api.api_key")
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	return nil
}

// normalize replaces zero or invalid values with defaults
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if strings.TrimSpace(c.API.BaseURL) == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.Timeout.Duration <= 0 {
		c.API.Timeout = d.API.Timeout
	}
	if c.API.RequestsPerSecond <= 0 {
		c.API.RequestsPerSecond = d.API.RequestsPerSecond
	}
	if c.API.Burst <= 0 {
		c.API.Burst = d.API.Burst
	}
	if strings.TrimSpace(c.Forecast.DefaultCity) == "" {
		c.Forecast.DefaultCity = d.Forecast.DefaultCity
	}
	if c.Forecast.Days <= 0 {
		c.Forecast.Days = d.Forecast.Days
	}
	if c.Forecast.Debounce.Duration <= 0 {
		c.Forecast.Debounce = d.Forecast.Debounce
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:           DefaultBaseURL,
			Timeout:           Duration{10 * time.Second},
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Forecast: ForecastConfig{
			DefaultCity: DefaultCity,
			Days:        DefaultDays,
			Debounce:    Duration{DefaultDebounce},
		},
		UI: UISettings{
			ShowHelp: true,
		},
	}
}
