// Package config loads the dashboard configuration from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFinderURL is the export address of the regional visits workbook.
const DefaultFinderURL = "https://docs.google.com/spreadsheets/d/1RzAMfJvg7OQmVITHw0rAeHPAnn34qocMzVa6qvARMAQ/export?format=xlsx"

// Config holds all visitdash configuration.
type Config struct {
	// Listen is the HTTP listen address for `serve`.
	Listen string `yaml:"listen"`
	// HTTPTimeout bounds remote workbook fetches, e.g. "30s".
	HTTPTimeout string `yaml:"http_timeout"`

	Logging LoggingConfig `yaml:"logging"`
	Finder  FinderConfig  `yaml:"finder"`
	Visits  VisitsConfig  `yaml:"visits"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// FinderConfig configures the regional address finder.
type FinderConfig struct {
	URL             string `yaml:"url"`
	Path            string `yaml:"path"` // local copy, used when URL is empty
	AddressColumn   string `yaml:"address_column"`
	TimestampColumn string `yaml:"timestamp_column"`
	SheetColumn     string `yaml:"sheet_column"`
	Range           string `yaml:"range"`
}

// VisitsConfig configures the commercial visits dashboard.
type VisitsConfig struct {
	Path              string   `yaml:"path"`
	URL               string   `yaml:"url"`
	Sheet             string   `yaml:"sheet"`
	Range             string   `yaml:"range"`
	DateColumns       []string `yaml:"date_columns"`
	SalespersonColumn string   `yaml:"salesperson_column"`
	CustomerColumn    string   `yaml:"customer_column"`
	StatusColumn      string   `yaml:"status_column"`
	DateColumn        string   `yaml:"date_column"`
	DefaultColumns    int      `yaml:"default_columns"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:      ":8501",
		HTTPTimeout: "30s",
		Logging: LoggingConfig{
			Level: "info",
		},
		Finder: FinderConfig{
			URL:             DefaultFinderURL,
			AddressColumn:   "Dirección",
			TimestampColumn: "Marca temporal",
			SheetColumn:     "Provincia_origen",
		},
		Visits: VisitsConfig{
			Path:              "visitas.xlsx",
			DateColumns:       []string{"fecha", "fecha_visita", "fecha_creacion"},
			SalespersonColumn: "comercial",
			CustomerColumn:    "cliente",
			StatusColumn:      "estado",
			DateColumn:        "fecha",
			DefaultColumns:    6,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.Timeout(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if c.Finder.AddressColumn == "" {
		return errors.New("finder.address_column must not be empty")
	}
	if c.Finder.TimestampColumn == "" {
		return errors.New("finder.timestamp_column must not be empty")
	}
	if c.Visits.DefaultColumns < 0 {
		return errors.New("visits.default_columns must not be negative")
	}
	return nil
}

// Timeout returns the parsed HTTP timeout. An empty value means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.HTTPTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 0, fmt.Errorf("http_timeout: %w", err)
	}
	return d, nil
}
