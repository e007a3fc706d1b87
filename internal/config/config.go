// Package config loads the TOML configuration from ~/.riftmetrics/config.toml.
// A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Data     DataConfig     `toml:"data"`
	Database DatabaseConfig `toml:"database"`
	Charts   ChartsConfig   `toml:"charts"`
	Player   PlayerConfig   `toml:"player"`
}

// DataConfig locates the match data directory.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// DatabaseConfig locates the preset database.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ChartsConfig controls dashboard rendering.
type ChartsConfig struct {
	OutputDir string `toml:"output_dir"`
	Theme     string `toml:"theme"`
}

// PlayerConfig optionally pins the tracked player instead of relying on the
// majority vote across match files.
type PlayerConfig struct {
	PUUID string `toml:"puuid"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Data:     DataConfig{Dir: "data"},
		Database: DatabaseConfig{Path: defaultUnderHome("riftmetrics.db")},
		Charts:   ChartsConfig{OutputDir: "charts", Theme: "light"},
	}
}

func defaultUnderHome(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".riftmetrics", name)
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".riftmetrics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from disk, returning defaults when the file
// does not exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a configuration file at an explicit path. Unset fields fall
// back to their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultUnderHome("riftmetrics.db")
	}
	if cfg.Charts.OutputDir == "" {
		cfg.Charts.OutputDir = "charts"
	}
	if cfg.Charts.Theme == "" {
		cfg.Charts.Theme = "light"
	}
	return cfg, nil
}

// Save writes the configuration back to its standard location.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
