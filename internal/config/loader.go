package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "ecocatch.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.ecocatch/configs/ecocatch.yaml -> ./configs/ecocatch.yaml -> embedded default.
// A custom path must exist, parse and validate. Discovered files that fail
// to parse or validate are skipped.
func Load(customPath string) (EcoConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", configFileName)); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultEcoYAML)
	if err != nil {
		return DefaultEcoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single configuration file.
func LoadFile(path string) (EcoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EcoConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return EcoConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the built-in defaults, so a file
// only needs the keys it changes, and validates the result.
func Parse(data []byte) (EcoConfig, error) {
	cfg := DefaultEcoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EcoConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return EcoConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ecocatch", "configs", filename)
}
