// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the optional checkout-ago config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Git is the git executable name or path.
	Git string `yaml:"git,omitempty"`

	// Print makes dry-run mode the default.
	Print bool `yaml:"print,omitempty"`

	// Ref is the default ref the lookup walks back from.
	Ref string `yaml:"ref,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Git: "git", Ref: "HEAD"}
}

// Load reads and parses the config file at path. A missing or
// unreadable file is an error; use LoadDefault for the tolerant
// default-location lookup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's own flag
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// LoadDefault loads the config from the default location, returning
// the built-in defaults when no file exists there.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		// No resolvable home directory; run on defaults.
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns $XDG_CONFIG_HOME/checkout-ago/config.yaml,
// falling back to ~/.config/checkout-ago/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "checkout-ago", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "checkout-ago", "config.yaml"), nil
}

// withDefaults refills fields an explicit empty yaml value blanked out.
func (c Config) withDefaults() Config {
	if c.Git == "" {
		c.Git = "git"
	}
	if c.Ref == "" {
		c.Ref = "HEAD"
	}
	return c
}
