package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCubePop loads CubePop configuration.
// Search order: customPath -> ~/.cubepop/configs/cubepop.yaml -> ./configs/cubepop.yaml -> embedded default.
// Files are decoded over the defaults, so keys they omit keep their default value.
func LoadCubePop(customPath string) (CubePopConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCubePopConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCubePop(data)
		if err != nil {
			return DefaultCubePopConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cubepop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCubePop(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "cubepop.yaml")); err == nil {
		if cfg, err := parseCubePop(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCubePop(defaultCubePopYAML)
	if err != nil {
		return DefaultCubePopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseCubePop(data []byte) (CubePopConfig, error) {
	cfg := DefaultCubePopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Rotation.Ticks < 0 {
		return cfg, fmt.Errorf("rotation.ticks must not be negative, got %d", cfg.Rotation.Ticks)
	}
	if cfg.Scoring.PointsPerBlock < 0 || cfg.Scoring.RegionBonus < 0 {
		return cfg, fmt.Errorf("scoring values must not be negative")
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubepop", "configs", filename)
}

// ApplyCubePopPreset adjusts grid size, palette size and move limit for a preset.
// DifficultyFixed leaves the config unchanged.
func ApplyCubePopPreset(cfg *CubePopConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Size = 3
		cfg.Grid.Colors = 3
		cfg.Grid.MoveLimit = 30
	case DifficultyNormal:
		cfg.Grid.Size = 5
		cfg.Grid.Colors = 5
		cfg.Grid.MoveLimit = 60
	case DifficultyHard:
		cfg.Grid.Size = 6
		cfg.Grid.Colors = 7
		cfg.Grid.MoveLimit = 80
	}
}
