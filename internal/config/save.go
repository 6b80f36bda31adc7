package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), FileName))
}

// SaveEffective writes c to the explicit -config path, or to the user config
// directory when none was given, and returns the path written.
func (c *Config) SaveEffective() (string, error) {
	path := ConfigPath()
	save := func() error { return c.SaveTo(path) }
	if path == "" {
		path = filepath.Join(ConfigDir(), FileName)
		save = c.Save
	}
	if err := save(); err != nil {
		return "", fmt.Errorf("saving config to %s: %w", path, err)
	}
	return path, nil
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
