package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Levels.BaseTime += 5
		cfg.Levels.BaseCount = max(1, cfg.Levels.BaseCount-2)
		scaleSpeed(cfg, 0.75)
	case DifficultyHard:
		cfg.Levels.BaseTime = max(cfg.Levels.MinTime, cfg.Levels.BaseTime-3)
		cfg.Levels.BaseCount += 2
		scaleSpeed(cfg, 1.25)
	}
}

func scaleSpeed(cfg *GameConfig, factor float64) {
	cfg.Levels.BaseSpeed = round2(cfg.Levels.BaseSpeed * factor)
	cfg.Levels.SpeedStep = round2(cfg.Levels.SpeedStep * factor)
}

// round2 keeps preset-scaled values readable when dumped as YAML.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
