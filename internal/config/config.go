package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jgoulah/energytracker/internal/storage"
)

// Keys accepted by Set, matching the yaml field names
const (
	KeyDataFile    = "data_file"
	KeyCurrency    = "currency"
	KeyPricePerKWh = "price_per_kwh"
	KeyLogLevel    = "log_level"
)

// Config holds the application configuration
type Config struct {
	DataFile    string  `yaml:"data_file,omitempty"`     // CSV file holding the appliance list
	Currency    string  `yaml:"currency,omitempty"`      // Symbol printed before costs (default: $)
	PricePerKWh float64 `yaml:"price_per_kwh,omitempty"` // Used by `report` when --price is not given
	LogLevel    string  `yaml:"log_level,omitempty"`     // debug, info, warn, error (default: silent)
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.PricePerKWh < 0 {
		return nil, fmt.Errorf("price_per_kwh must not be negative, got %v", cfg.PricePerKWh)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetDataFile returns the appliance data file, defaulting to storage.DefaultPath
func (c *Config) GetDataFile() string {
	if c.DataFile == "" {
		return storage.DefaultPath
	}
	return c.DataFile
}

// GetCurrency returns the currency symbol, defaulting to $
func (c *Config) GetCurrency() string {
	if c.Currency == "" {
		return "$"
	}
	return c.Currency
}

// GetRate returns the configured cost per kWh, or 0 if not set
func (c *Config) GetRate() float64 {
	return c.PricePerKWh
}

// Set updates a single setting from its text form. An empty value clears
// the setting back to its default.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyDataFile:
		c.DataFile = value
	case KeyCurrency:
		c.Currency = value
	case KeyPricePerKWh:
		if value == "" {
			c.PricePerKWh = 0
			return nil
		}
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || !(price >= 0) || math.IsInf(price, 0) {
			return fmt.Errorf("price_per_kwh must be a non-negative number, got %q", value)
		}
		c.PricePerKWh = price
	case KeyLogLevel:
		switch strings.ToLower(value) {
		case "", "debug", "info", "warn", "warning", "error":
			c.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("unknown log level %q (use debug, info, warn or error)", value)
		}
	default:
		return fmt.Errorf("unknown setting %q (available: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Keys lists the settings Set accepts
func Keys() []string {
	return []string{KeyDataFile, KeyCurrency, KeyPricePerKWh, KeyLogLevel}
}
