// Package config loads the crumb configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	// JarPath is the Netscape cookie file the CLI operates on.
	JarPath string `yaml:"jar_path"`
	// DefaultDomain is applied to parsed cookies carrying an empty
	// domain attribute.
	DefaultDomain string `yaml:"default_domain"`
	// DBPath is the SQLite database used by archive and restore.
	DBPath string `yaml:"db_path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dir := baseDir()
	return &Config{
		JarPath: filepath.Join(dir, "cookies.txt"),
		DBPath:  filepath.Join(dir, "cookies.db"),
	}
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(baseDir(), "config.yaml")
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".crumb")
}

// Load reads the config at path, filling unset fields with defaults.
// A missing file is not an error; defaults are returned.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := &Config{}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := Default()
	if cfg.JarPath == "" {
		cfg.JarPath = defaults.JarPath
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaults.DBPath
	}
	return cfg, nil
}
