package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "eel.yaml"

// LoadEel loads the eel configuration.
// Search order: customPath -> ~/.eel/configs/eel.yaml -> ./configs/eel.yaml -> embedded default
//
// Values missing from a file keep their defaults, so a config that only sets
// timing.speed is valid.
func LoadEel(customPath string) (EelConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EelConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseEel(data)
		if err != nil {
			return EelConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseEel(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseEel(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseEel(defaultEelYAML)
	if err != nil {
		return DefaultEelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseEel decodes YAML over the hardcoded defaults and validates the result.
func parseEel(data []byte) (EelConfig, error) {
	cfg := DefaultEelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EelConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return EelConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c EelConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eel", "configs", filename)
}
