package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"orgdir/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version             int          `toml:"version"`
	DataSource          string       `toml:"data_source"` // file path or http(s) URL
	Locale              string       `toml:"locale"`      // BCP 47 tag used to collate names
	FetchTimeoutSeconds int          `toml:"fetch_timeout_seconds"`
	LogFile             string       `toml:"log_file"`
	LogLevel            string       `toml:"log_level"`
	UI                  UISettings   `toml:"ui"`
	Zones               []ZoneConfig `toml:"zones"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowClocks   bool   `toml:"show_clocks"`
	ClockRadius  int    `toml:"clock_radius"`
	AbsentMarker string `toml:"absent_marker"`
	Disclaimer   string `toml:"disclaimer"`
	FooterText   string `toml:"footer_text"`
}

// ZoneConfig names one analog clock
type ZoneConfig struct {
	Label string `toml:"label"`
	TZ    string `toml:"tz"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config location under the user's config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "orgdir", "config.toml")
}

// NewConfigService creates a config service reading path, or DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that announces loads on the bus
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's config file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			DataSource: cfg.DataSource,
		})
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Unset keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Zones = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:             1,
		DataSource:          "companies.json",
		Locale:              "en",
		FetchTimeoutSeconds: 10,
		LogFile:             "orgdir.log",
		LogLevel:            "info",
		UI: UISettings{
			ShowClocks:   true,
			ClockRadius:  4,
			AbsentMarker: "—",
			Disclaimer:   "Contact details are provided as a convenience. Always confirm them on the organization's own website.",
			FooterText:   "orgdir · directory data is read-only",
		},
		Zones: DefaultZones(),
	}
}

// DefaultZones returns the clocks shown when the config names none
func DefaultZones() []ZoneConfig {
	return []ZoneConfig{
		{Label: "New York", TZ: "America/New_York"},
		{Label: "London", TZ: "Europe/London"},
		{Label: "Sydney", TZ: "Australia/Sydney"},
		{Label: "India", TZ: "Asia/Kolkata"},
	}
}

// applyDefaults repairs values a partial config file may have zeroed
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = def.FetchTimeoutSeconds
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.UI.ClockRadius < 2 {
		c.UI.ClockRadius = def.UI.ClockRadius
	}
	if c.UI.AbsentMarker == "" {
		c.UI.AbsentMarker = def.UI.AbsentMarker
	}
	if len(c.Zones) == 0 {
		c.Zones = def.Zones
	}
}
