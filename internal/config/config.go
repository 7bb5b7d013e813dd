// Package config provides YAML-based game configuration loading and
// difficulty presets for the platform.
package config

// TetrisConfig contains all tunable parameters for the game.
type TetrisConfig struct {
	Well    WellConfig    `yaml:"well"`
	Gravity GravityConfig `yaml:"gravity"`
	Lock    LockConfig    `yaml:"lock"`
	Clear   ClearConfig   `yaml:"clear"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// WellConfig defines the playfield dimensions.
type WellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the level-dependent fall speed model.
// The fall interval follows a power curve from MaxIntervalMs at level 0
// down to MinIntervalMs at TopLevel and beyond.
type GravityConfig struct {
	MinIntervalMs int     `yaml:"min_interval_ms"`
	MaxIntervalMs int     `yaml:"max_interval_ms"`
	TopLevel      int     `yaml:"top_level"`
	Exponent      float64 `yaml:"exponent"`
	Fixed         bool    `yaml:"fixed"` // no speedup; interval stays at MaxIntervalMs
}

// LockConfig defines the lock-delay behavior.
type LockConfig struct {
	DelayMs  int `yaml:"delay_ms"`  // grace period once a piece lands
	ResetCap int `yaml:"reset_cap"` // max delay resets per piece; 0 = unlimited
}

// ClearConfig defines the line-clear flash.
type ClearConfig struct {
	FlashMs int `yaml:"flash_ms"` // how long full rows flash before removal; 0 = instant
}

// ScoringConfig defines rewards for cleared rows.
// StreakRewards is indexed by streak size: a streak of n consecutive
// cleared rows awards StreakRewards[min(n, len)-1] points.
type ScoringConfig struct {
	StreakRewards []int `yaml:"streak_rewards"`
	LevelStep     int   `yaml:"level_step"` // points per level
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ApplyPreset adjusts the gravity model for a difficulty preset.
// Easy and hard stretch or compress the starting fall interval; fixed
// disables level progression entirely.
func ApplyPreset(cfg *TetrisConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gravity.MaxIntervalMs = cfg.Gravity.MaxIntervalMs * 4 / 3
		cfg.Gravity.Fixed = false
	case PresetNormal:
		cfg.Gravity.Fixed = false
	case PresetHard:
		cfg.Gravity.MaxIntervalMs = cfg.Gravity.MaxIntervalMs * 2 / 3
		if cfg.Gravity.MaxIntervalMs < cfg.Gravity.MinIntervalMs {
			cfg.Gravity.MaxIntervalMs = cfg.Gravity.MinIntervalMs
		}
		cfg.Gravity.Fixed = false
	case PresetFixed:
		cfg.Gravity.Fixed = true
	}
}
