// Package config provides configuration loading and management for soclist.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete soclist configuration
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Filter  FilterConfig  `yaml:"filter"`
}

// CatalogConfig selects the vendor catalog to list
type CatalogConfig struct {
	// Vendor is the vendor key to resolve (default: "qualcomm")
	Vendor string `yaml:"vendor"`
}

// FilterConfig configures candidate selection
type FilterConfig struct {
	// Match is the list of case-insensitive substring patterns; a name
	// matching any pattern is a candidate
	Match []string `yaml:"match"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Vendor: "qualcomm",
		},
		Filter: FilterConfig{
			Match: []string{"canoe", "660", "gen"},
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Catalog.Vendor == "" {
		return fmt.Errorf("catalog.vendor is required")
	}
	for i, pat := range c.Filter.Match {
		if pat == "" {
			return fmt.Errorf("filter.match[%d] is empty", i)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Catalog.Vendor != "" {
		c.Catalog.Vendor = other.Catalog.Vendor
	}
	if len(other.Filter.Match) > 0 {
		c.Filter.Match = append([]string(nil), other.Filter.Match...)
	}
}
