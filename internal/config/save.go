package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SavePath is where Save writes. Load falls back to this file when there is
// no -config flag and no pinhole.yaml in the working directory.
func SavePath() string {
	return filepath.Join(ConfigDir(), FileName)
}

// Save writes the config to the user's config directory, so later runs
// start from it.
func (c *Config) Save() error {
	return c.SaveTo(SavePath())
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
