// Package config loads the optional YAML configuration file that supplies
// defaults for the CLI and HTTP server.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-configurable defaults. Every field has a working
// zero-config default; the file only overrides.
type Config struct {
	Method           string `yaml:"method"`            // bfs, ida, twophase
	Heuristic        string `yaml:"heuristic"`         // misplaced, wrong_face
	DBPath           string `yaml:"db_path"`           // empty means the default location
	HTTPAddr         string `yaml:"http_addr"`         // serve listen address
	TwoPhaseCommand  string `yaml:"twophase_command"`  // external solver binary
	TwoPhaseFallback bool   `yaml:"twophase_fallback"` // fall back to IDA* on failure
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:           "ida",
		Heuristic:        "misplaced",
		HTTPAddr:         ":8080",
		TwoPhaseFallback: true,
	}
}

// DefaultPath returns the default config file location in the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesolver", "config.yaml"), nil
}

// Load reads the config file at path, applying defaults for anything the
// file leaves unset. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
