package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "linetiles.yaml"

// Load loads the linetiles configuration.
// Search order: customPath -> ~/.linetiles/configs/linetiles.yaml ->
// ./configs/linetiles.yaml -> embedded default -> hardcoded default.
// A file that fails to parse is skipped, except for customPath which must
// be valid. The result is validated before it is returned.
func Load(customPath string) (LineTilesConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LineTilesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LineTilesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultLineTilesYAML); err == nil {
		return cfg, nil
	}
	return DefaultLineTilesConfig(), nil
}

// Parse decodes a YAML document on top of the hardcoded defaults, so a
// file only needs the keys it changes.
func Parse(data []byte) (LineTilesConfig, error) {
	cfg := DefaultLineTilesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LineTilesConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LineTilesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linetiles", "configs", filename)
}
