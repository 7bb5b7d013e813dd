package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.ttrys/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ttrys", "configs", filename)
}

// normalize fills in any zero-valued fields from the defaults so a partial
// user config still produces a playable game.
func normalize(cfg TetrisConfig) TetrisConfig {
	def := DefaultTetrisConfig()

	if cfg.Well.Width <= 0 {
		cfg.Well.Width = def.Well.Width
	}
	if cfg.Well.Height <= 0 {
		cfg.Well.Height = def.Well.Height
	}
	if cfg.Gravity.MinIntervalMs <= 0 {
		cfg.Gravity.MinIntervalMs = def.Gravity.MinIntervalMs
	}
	if cfg.Gravity.MaxIntervalMs <= 0 {
		cfg.Gravity.MaxIntervalMs = def.Gravity.MaxIntervalMs
	}
	if cfg.Gravity.TopLevel <= 0 {
		cfg.Gravity.TopLevel = def.Gravity.TopLevel
	}
	if cfg.Gravity.Exponent <= 0 {
		cfg.Gravity.Exponent = def.Gravity.Exponent
	}
	if cfg.Lock.DelayMs <= 0 {
		cfg.Lock.DelayMs = def.Lock.DelayMs
	}
	if cfg.Scoring.LevelStep <= 0 {
		cfg.Scoring.LevelStep = def.Scoring.LevelStep
	}
	if len(cfg.Scoring.StreakRewards) == 0 {
		cfg.Scoring.StreakRewards = def.Scoring.StreakRewards
	}
	return cfg
}
