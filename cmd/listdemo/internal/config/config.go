// Package config loads the listdemo.yaml demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// HostKind selects which converter the demo drives.
type HostKind string

const (
	// HostLegacy drives the legacy recycling list widget.
	HostLegacy HostKind = "legacy"
	// HostRecycler drives the virtualized list widget.
	HostRecycler HostKind = "recycler"
)

// Config represents the optional listdemo.yaml configuration.
type Config struct {
	// Host selects the converter: "legacy" or "recycler".
	Host HostKind `yaml:"host,omitempty"`
	// Items is the initial item list.
	Items []string `yaml:"items,omitempty"`
	// Header, when non-empty, adds a header row (recycler host only).
	Header string `yaml:"header,omitempty"`
	// Footer, when non-empty, adds a footer row (recycler host only).
	Footer string `yaml:"footer,omitempty"`
}

// LoadOptional reads the given config file if present, falling back to
// defaults when it does not exist.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return resolve(&cfg)
}

func defaults() *Config {
	return &Config{
		Host:  HostRecycler,
		Items: []string{"alpha", "beta", "gamma"},
	}
}

func resolve(cfg *Config) (*Config, error) {
	host := HostKind(strings.TrimSpace(string(cfg.Host)))
	if host == "" {
		host = HostRecycler
	}
	if host != HostLegacy && host != HostRecycler {
		return nil, fmt.Errorf("unknown host %q: want %q or %q", host, HostLegacy, HostRecycler)
	}
	cfg.Host = host
	if len(cfg.Items) == 0 {
		cfg.Items = defaults().Items
	}
	return cfg, nil
}
