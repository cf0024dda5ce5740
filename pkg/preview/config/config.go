// Package config loads the preview server configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheConfig bounds the preview cache.
type CacheConfig struct {
	MaxEntries int           `yaml:"maxEntries"`
	MaxBytes   int64         `yaml:"maxBytes"`
	TTL        time.Duration `yaml:"ttl"`
}

// LimitsConfig bounds the rendered window.
type LimitsConfig struct {
	DefaultRows int `yaml:"defaultRows"`
	DefaultCols int `yaml:"defaultCols"`
	MaxRows     int `yaml:"maxRows"`
	MaxCols     int `yaml:"maxCols"`
}

// Config is the server configuration.
type Config struct {
	Listen     string       `yaml:"listen"`
	Root       string       `yaml:"root"`
	Locale     string       `yaml:"locale"`
	DateLayout string       `yaml:"dateLayout"`
	LogLevel   string       `yaml:"logLevel"`
	Cache      CacheConfig  `yaml:"cache"`
	Limits     LimitsConfig `yaml:"limits"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:     ":8080",
		Root:       ".",
		Locale:     "en-US",
		DateLayout: "1/2/2006",
		LogLevel:   "info",
		Cache: CacheConfig{
			MaxEntries: 100,
			MaxBytes:   50 << 20,
			TTL:        5 * time.Minute,
		},
		Limits: LimitsConfig{
			DefaultRows: 100,
			DefaultCols: 30,
			MaxRows:     1000,
			MaxCols:     100,
		},
	}
}

// Load reads the YAML file at path on top of Default and applies
// SHEETPREVIEW_* environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SHEETPREVIEW_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("SHEETPREVIEW_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("SHEETPREVIEW_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("SHEETPREVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SHEETPREVIEW_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHEETPREVIEW_CACHE_TTL: %w", err)
		}
		cfg.Cache.TTL = d
	}
	if v := os.Getenv("SHEETPREVIEW_CACHE_MAX_ENTRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SHEETPREVIEW_CACHE_MAX_ENTRIES: %w", err)
		}
		cfg.Cache.MaxEntries = n
	}
	if v := os.Getenv("SHEETPREVIEW_CACHE_MAX_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SHEETPREVIEW_CACHE_MAX_BYTES: %w", err)
		}
		cfg.Cache.MaxBytes = n
	}
	return nil
}

// Validate checks that limits are usable.
func (c Config) Validate() error {
	if c.Cache.MaxEntries <= 0 || c.Cache.MaxBytes <= 0 || c.Cache.TTL <= 0 {
		return fmt.Errorf("cache limits must be positive (maxEntries=%d maxBytes=%d ttl=%s)",
			c.Cache.MaxEntries, c.Cache.MaxBytes, c.Cache.TTL)
	}
	l := c.Limits
	if l.DefaultRows <= 0 || l.DefaultCols <= 0 || l.MaxRows < l.DefaultRows || l.MaxCols < l.DefaultCols {
		return fmt.Errorf("invalid limits: default %dx%d, max %dx%d", l.DefaultRows, l.DefaultCols, l.MaxRows, l.MaxCols)
	}
	return nil
}
