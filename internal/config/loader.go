package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHotdog loads Hotdog configuration.
// Search order: customPath -> ~/.arcade/configs/hotdog.yaml -> ./configs/hotdog.yaml -> embedded default
func LoadHotdog(customPath string) (HotdogConfig, error) {
	var cfg HotdogConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hotdog.yaml"); userCfgPath != "" {
		if cfg, ok := readValid(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readValid(filepath.Join("configs", "hotdog.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHotdogYAML, &cfg); err != nil {
		return DefaultHotdogConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readValid reads and validates a config file, reporting false on any failure.
func readValid(path string) (HotdogConfig, bool) {
	var cfg HotdogConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders a config as YAML, as printed by the config command.
func Marshal(cfg HotdogConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
