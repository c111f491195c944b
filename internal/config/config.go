// Package config loads the service configuration from YAML with
// documented defaults for every field.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nlaakso/agentpulse/internal/risk"
	"github.com/nlaakso/agentpulse/internal/trust"
)

// Config is the full service configuration.
type Config struct {
	Port      int   `yaml:"port"`
	Seed      int64 `yaml:"seed"`
	BatchSize int   `yaml:"batch_size"`
	// WindowHours bounds generated timestamps to the recent window.
	WindowHours int `yaml:"window_hours"`

	Trust trust.Config `yaml:"trust"`
	Risk  risk.Weights `yaml:"risk_weights"`

	CacheTTLSeconds   int `yaml:"cache_ttl_seconds"`
	CacheStaleSeconds int `yaml:"cache_stale_seconds"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Port:              8080,
		Seed:              1337,
		BatchSize:         60,
		WindowHours:       6,
		Trust:             trust.DefaultConfig(),
		Risk:              risk.DefaultWeights(),
		CacheTTLSeconds:   30,
		CacheStaleSeconds: 300,
	}
}

// Load reads a YAML config file. An empty path returns pure defaults;
// a missing or unparsable file is an error. Zero-valued fields in the
// file fall back to their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot honor.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.BatchSize <= 0 || c.BatchSize > 500 {
		return fmt.Errorf("batch_size %d out of range (1-500)", c.BatchSize)
	}
	if c.WindowHours <= 0 {
		return fmt.Errorf("window_hours must be positive")
	}
	if err := c.Trust.Validate(); err != nil {
		return err
	}
	if err := c.Risk.Validate(); err != nil {
		return err
	}
	return nil
}

// Window returns the generation window as a duration.
func (c Config) Window() time.Duration {
	return time.Duration(c.WindowHours) * time.Hour
}

// CacheTTL returns the page TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// CacheStale returns the sweep horizon as a duration.
func (c Config) CacheStale() time.Duration {
	return time.Duration(c.CacheStaleSeconds) * time.Second
}

func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Port == 0 {
		cfg.Port = d.Port
	}
	if cfg.Seed == 0 {
		cfg.Seed = d.Seed
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = d.BatchSize
	}
	if cfg.WindowHours == 0 {
		cfg.WindowHours = d.WindowHours
	}
	if cfg.Trust == (trust.Config{}) {
		cfg.Trust = d.Trust
	}
	if cfg.Risk == (risk.Weights{}) {
		cfg.Risk = d.Risk
	}
	if cfg.CacheTTLSeconds == 0 {
		cfg.CacheTTLSeconds = d.CacheTTLSeconds
	}
	if cfg.CacheStaleSeconds == 0 {
		cfg.CacheStaleSeconds = d.CacheStaleSeconds
	}
}
