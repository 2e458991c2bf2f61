// internal/config/config.go

// Package config loads the optional YAML run profile shared by the ghost
// tools: resource hints, mapping parameters, and logging settings. Flags
// override whatever the profile says.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nceglia/ghost/core/index"
)

// Config is the top-level run profile.
type Config struct {
	Resources ResourcesConfig `yaml:"resources"`
	Mapping   MappingConfig   `yaml:"mapping"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ResourcesConfig holds sizing hints. MemoryGB is advisory only — it is
// logged for pipeline bookkeeping and drives no behavior.
type ResourcesConfig struct {
	Threads  int `yaml:"threads"`
	MemoryGB int `yaml:"memoryGb"`
}

// MappingConfig controls the read-mapping pipeline.
type MappingConfig struct {
	CoverageThreshold int `yaml:"coverageThreshold"`
	ProgressEvery     int `yaml:"progressEvery"`
}

// LoggingConfig controls log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the profile used when no file is given.
func Default() *Config {
	return &Config{
		Resources: ResourcesConfig{
			Threads:  0, // all CPUs
			MemoryGB: 4,
		},
		Mapping: MappingConfig{
			CoverageThreshold: index.ReadCoverageThreshold,
			ProgressEvery:     1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML profile over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Resources.Threads < 0 {
		return fmt.Errorf("resources.threads must be ≥ 0")
	}
	if c.Mapping.CoverageThreshold < 0 {
		return fmt.Errorf("mapping.coverageThreshold must be ≥ 0")
	}
	if c.Mapping.ProgressEvery < 0 {
		return fmt.Errorf("mapping.progressEvery must be ≥ 0")
	}
	return nil
}
