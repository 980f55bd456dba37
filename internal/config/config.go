// Package config loads the YAML configuration used by the listen and
// monitor commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects what the listen and monitor commands subscribe to.
type Config struct {
	// Listen is the UDP address to bind, e.g. ":8000".
	Listen string `yaml:"listen"`
	// Addresses restricts output to these exact OSC addresses. Empty
	// means every address.
	Addresses []string `yaml:"addresses"`
	// Verbose enables debug logging, including dropped malformed
	// datagrams.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Listen: ":8000"}
}

// Load reads a YAML configuration file. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Wants reports whether addr passes the address filter.
func (c *Config) Wants(addr string) bool {
	if len(c.Addresses) == 0 {
		return true
	}
	for _, a := range c.Addresses {
		if a == addr {
			return true
		}
	}
	return false
}
