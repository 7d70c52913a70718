package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultTopN     = 10
	DefaultWorkers  = 4
	DefaultCacheTTL = 24 * time.Hour
)

// Config holds runtime configuration.
// Values come from an optional YAML file; CLI flags override them.
type Config struct {
	TopN           int           `yaml:"top_n"`
	Workers        int           `yaml:"workers"`
	DBPath         string        `yaml:"db_path"`
	CacheDir       string        `yaml:"cache_dir"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	StripHTML      bool          `yaml:"strip_html"`
	DetectLanguage bool          `yaml:"detect_language"`
	Format         string        `yaml:"format"` // json, yaml, table
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		TopN:           DefaultTopN,
		Workers:        DefaultWorkers,
		CacheTTL:       DefaultCacheTTL,
		DetectLanguage: true,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the analyzer cannot run with.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config top_n %d: %w", c.TopN, ErrInvalidTopN)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config workers must be >= 0, got %d", c.Workers)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config cache_ttl must be >= 0, got %s", c.CacheTTL)
	}
	switch c.Format {
	case "", "json", "yaml", "table":
	default:
		return fmt.Errorf("config format %q not supported (json, yaml, table)", c.Format)
	}
	return nil
}
