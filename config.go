package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional fourth.toml configuration file.
type Config struct {
	Prompt    string `toml:"prompt"`
	Color     *bool  `toml:"color"`
	HeapLimit int    `toml:"heap-limit"`
	Trace     bool   `toml:"trace"`
	History   string `toml:"history"`
}

const configName = "fourth.toml"

// loadConfig parses a fourth.toml file from the given path.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// resolveConfig loads an explicitly given config file, or discovers
// fourth.toml in the working directory; with neither, defaults apply.
func resolveConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfig(path)
	}
	if cfg, err := loadConfig(configName); err == nil {
		return cfg, nil
	}
	var cfg Config
	cfg.fillDefaults()
	return &cfg, nil
}

func (cfg *Config) fillDefaults() {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.History == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.History = filepath.Join(home, ".fourth_history")
		}
	}
}
