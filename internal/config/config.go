package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"logsweep/internal/patterns"

	"gopkg.in/yaml.v3"
)

type PrometheusCfg struct {
	Port int `yaml:"port" json:"port"`
}

type Config struct {
	Root            string        `yaml:"root" json:"root"`                         // Workspace root override; empty = derive from executable location
	ExtraPatterns   []string      `yaml:"extra_patterns" json:"extra_patterns"`     // Appended after the built-in pattern list
	HistoryDB       string        `yaml:"history_db" json:"history_db"`             // Path to SQLite removal history; empty = no history recorded
	IntervalMinutes int           `yaml:"interval_minutes" json:"interval_minutes"` // > 0 enables watch mode
	Prometheus      PrometheusCfg `yaml:"prometheus" json:"prometheus"`             // Metrics endpoint, served in watch mode only
}

var (
	errInvalidRoot      = errors.New("root must be an absolute path")
	errNegativeInterval = errors.New("interval_minutes cannot be negative")
)

// Default returns the configuration used when no config file is given:
// built-in patterns only, one-shot mode, no history, no metrics server.
func Default() *Config {
	return &Config{}
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	if c.Root != "" {
		cp := filepath.Clean(c.Root)
		if !filepath.IsAbs(cp) {
			return fmt.Errorf("%w: %s", errInvalidRoot, c.Root)
		}
		c.Root = cp
	}

	if err := patterns.Validate(c.ExtraPatterns); err != nil {
		return fmt.Errorf("extra_patterns: %w", err)
	}

	if c.IntervalMinutes < 0 {
		return errNegativeInterval
	}

	if c.IntervalMinutes > 0 && c.Prometheus.Port == 0 {
		c.Prometheus.Port = 9091
	}

	return nil
}

// Patterns returns the effective pattern list: the built-in eight in
// their fixed order, then any extras from the config file.
func (c *Config) Patterns() []string {
	out := make([]string, 0, len(patterns.Default)+len(c.ExtraPatterns))
	out = append(out, patterns.Default...)
	out = append(out, c.ExtraPatterns...)
	return out
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

func (c *Config) PrometheusAddress() string {
	return fmt.Sprintf(":%d", c.Prometheus.Port)
}
