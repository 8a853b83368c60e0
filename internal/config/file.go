// Package config handles domsettle configuration from YAML files or
// SQLite.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level domsettle configuration.
type Config struct {
	Browser  BrowserConfig  `yaml:"browser"`
	Defaults WaitConfig     `yaml:"defaults"`
	Targets  []TargetConfig `yaml:"targets"`
}

// BrowserConfig controls Chrome lifecycle.
type BrowserConfig struct {
	Remote  string `yaml:"remote"`
	Headful bool   `yaml:"headful"`
}

// WaitConfig carries the tuning knobs for waits. The defaults match the
// behaviour the heuristic was tuned against; change them with care.
type WaitConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Settle  time.Duration `yaml:"settle"`
	Cadence time.Duration `yaml:"cadence"`
	Debug   bool          `yaml:"debug"`
}

// TargetConfig defines one element to wait on.
type TargetConfig struct {
	ID       string        `yaml:"id"`
	URL      string        `yaml:"url"`
	Selector string        `yaml:"selector"`
	Timeout  time.Duration `yaml:"timeout"`
	Debug    bool          `yaml:"debug"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields with the tuned defaults.
func (c *Config) ApplyDefaults() {
	if c.Defaults.Timeout <= 0 {
		c.Defaults.Timeout = 30 * time.Second
	}
	if c.Defaults.Settle <= 0 {
		c.Defaults.Settle = 50 * time.Millisecond
	}
	if c.Defaults.Cadence <= 0 {
		c.Defaults.Cadence = 100 * time.Millisecond
	}
	for i := range c.Targets {
		if c.Targets[i].Timeout <= 0 {
			c.Targets[i].Timeout = c.Defaults.Timeout
		}
	}
}
