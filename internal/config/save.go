package config

import (
	"os"
	"path/filepath"
)

// SaveTo writes the config to a specific path, as TOML when the path ends in .toml.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := encode(c, FormatOf(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
