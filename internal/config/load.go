package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	return LoadPath(ResolvedPath())
}

// ResolvedPath is the config file Load reads: the --config flag, else the
// first file found in the working or config directory. Empty when none exists.
func ResolvedPath() string {
	if path := ConfigPath(); path != "" {
		return path
	}
	return findConfigFile()
}

// LoadPath is Load with an explicit file; an empty path skips the file layer.
func LoadPath(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var configNames = []string{"config.yaml", "config.yml", "config.toml"}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	for _, dir := range []string{".", ConfigDir()} {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Learn3D")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Learn3D")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "learn3d")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "learn3d")
	}
}

// Format is a config file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatOf picks the syntax from the file extension; unknown extensions are YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// loadFromFile loads config from a file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decode(cfg, data, FormatOf(path))
}

func decode(cfg *Config, data []byte, f Format) error {
	if f == FormatTOML {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func encode(cfg *Config, f Format) ([]byte, error) {
	if f == FormatTOML {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}
