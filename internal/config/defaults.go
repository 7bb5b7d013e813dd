package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
// Values mirror the embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Well: WellConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			MinIntervalMs: 150,
			MaxIntervalMs: 600,
			TopLevel:      10,
			Exponent:      0.7,
			Fixed:         false,
		},
		Lock: LockConfig{
			DelayMs:  500,
			ResetCap: 15,
		},
		Clear: ClearConfig{
			FlashMs: 300,
		},
		Scoring: ScoringConfig{
			StreakRewards: []int{100, 250, 500, 1000},
			LevelStep:     1000,
		},
	}
}
