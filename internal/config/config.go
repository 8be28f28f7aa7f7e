// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for Bug Smash.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Bugs    BugsConfig    `yaml:"bugs"`
	Arena   ArenaConfig   `yaml:"arena"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// LevelsConfig defines the base values and per-level increments from which
// every level's time limit, bug count and speed are derived.
type LevelsConfig struct {
	MaxLevel   int     `yaml:"max_level"`   // Last level; completing it wins the game
	BaseTime   int     `yaml:"base_time"`   // Seconds on level 1
	TimeDecay  int     `yaml:"time_decay"`  // Seconds removed per level
	MinTime    int     `yaml:"min_time"`    // Floor for the time limit
	BaseCount  int     `yaml:"base_count"`  // Bugs on level 1
	CountStep  int     `yaml:"count_step"`  // Bugs added per step
	CountEvery int     `yaml:"count_every"` // Levels per step
	BaseSpeed  float64 `yaml:"base_speed"`  // Pixels per reference frame on level 1
	SpeedStep  float64 `yaml:"speed_step"`  // Speed added per level
}

// BugsConfig defines bug footprint and movement randomness.
type BugsConfig struct {
	Size             float64 `yaml:"size"`              // Square footprint in pixels
	RetargetDistance float64 `yaml:"retarget_distance"` // Pick a new target when closer than this
	SpawnSpeedMin    float64 `yaml:"spawn_speed_min"`   // Per-bug speed jitter range
	SpawnSpeedMax    float64 `yaml:"spawn_speed_max"`
	StepSpeedMin     float64 `yaml:"step_speed_min"` // Per-frame speed multiplier range
	StepSpeedMax     float64 `yaml:"step_speed_max"`
	Jitter           float64 `yaml:"jitter"`           // Full width of per-axis velocity noise
	InitialVelocity  float64 `yaml:"initial_velocity"` // Max initial speed per axis
	ReferenceFPS     int     `yaml:"reference_fps"`    // Frame rate the per-frame speeds are tuned for
}

// StepInterval returns the simulated time one movement step covers.
func (b BugsConfig) StepInterval() time.Duration {
	return time.Second / time.Duration(max(1, b.ReferenceFPS))
}

// ArenaConfig defines the play area in pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig defines points and the level transition pause.
type ScoringConfig struct {
	PointsPerLevel  int           `yaml:"points_per_level"` // Points per bug = this * level
	TimeBonus       int           `yaml:"time_bonus"`       // Points per second left on level clear
	TransitionDelay time.Duration `yaml:"transition_delay"` // Pause before the next level starts
}

// Validate reports every problem that would make the simulation unusable.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	l := c.Levels
	check(l.MaxLevel >= 1, "levels.max_level must be >= 1, got %d", l.MaxLevel)
	check(l.MinTime >= 1, "levels.min_time must be >= 1, got %d", l.MinTime)
	check(l.BaseTime >= l.MinTime, "levels.base_time (%d) must be >= min_time (%d)", l.BaseTime, l.MinTime)
	check(l.TimeDecay >= 0, "levels.time_decay must be >= 0, got %d", l.TimeDecay)
	check(l.BaseCount >= 1, "levels.base_count must be >= 1, got %d", l.BaseCount)
	check(l.CountStep >= 0, "levels.count_step must be >= 0, got %d", l.CountStep)
	check(l.CountEvery >= 1, "levels.count_every must be >= 1, got %d", l.CountEvery)
	check(l.BaseSpeed > 0, "levels.base_speed must be > 0, got %v", l.BaseSpeed)
	check(l.SpeedStep >= 0, "levels.speed_step must be >= 0, got %v", l.SpeedStep)

	b := c.Bugs
	check(b.Size > 0, "bugs.size must be > 0, got %v", b.Size)
	check(b.RetargetDistance >= 0, "bugs.retarget_distance must be >= 0, got %v", b.RetargetDistance)
	check(b.SpawnSpeedMin > 0 && b.SpawnSpeedMin <= b.SpawnSpeedMax,
		"bugs.spawn_speed range [%v, %v] is invalid", b.SpawnSpeedMin, b.SpawnSpeedMax)
	check(b.StepSpeedMin > 0 && b.StepSpeedMin <= b.StepSpeedMax,
		"bugs.step_speed range [%v, %v] is invalid", b.StepSpeedMin, b.StepSpeedMax)
	check(b.Jitter >= 0, "bugs.jitter must be >= 0, got %v", b.Jitter)
	check(b.InitialVelocity >= 0, "bugs.initial_velocity must be >= 0, got %v", b.InitialVelocity)
	check(b.ReferenceFPS >= 1, "bugs.reference_fps must be >= 1, got %d", b.ReferenceFPS)

	a := c.Arena
	check(a.Width > b.Size && a.Height > b.Size,
		"arena %vx%v must be larger than bug size %v", a.Width, a.Height, b.Size)

	s := c.Scoring
	check(s.PointsPerLevel >= 0, "scoring.points_per_level must be >= 0, got %d", s.PointsPerLevel)
	check(s.TimeBonus >= 0, "scoring.time_bonus must be >= 0, got %d", s.TimeBonus)
	check(s.TransitionDelay >= 0, "scoring.transition_delay must be >= 0, got %v", s.TransitionDelay)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
