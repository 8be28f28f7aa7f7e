package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bugsmash.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/bugsmash.yaml and is used if the embedded file fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Levels: LevelsConfig{
			MaxLevel:   4,
			BaseTime:   15,
			TimeDecay:  2,
			MinTime:    10,
			BaseCount:  8,
			CountStep:  2,
			CountEvery: 1,
			BaseSpeed:  2,
			SpeedStep:  0.8,
		},
		Bugs: BugsConfig{
			Size:             32,
			RetargetDistance: 20,
			SpawnSpeedMin:    0.7,
			SpawnSpeedMax:    1.3,
			StepSpeedMin:     0.8,
			StepSpeedMax:     1.2,
			Jitter:           0.5,
			InitialVelocity:  2,
			ReferenceFPS:     60,
		},
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Scoring: ScoringConfig{
			PointsPerLevel:  10,
			TimeBonus:       5,
			TransitionDelay: 2 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
