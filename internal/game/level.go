package game

import "github.com/vovakirdan/bug-smash/internal/config"

// LevelParams are the values derived for a single level.
type LevelParams struct {
	Level     int
	TimeLimit int     // Seconds
	Count     int     // Bugs spawned
	Speed     float64 // Base pixels per frame before per-bug jitter
}

// Progression derives per-level parameters from the base configuration.
// Levels are never stored; every value is a pure function of the level number.
type Progression struct {
	cfg config.LevelsConfig
}

// NewProgression creates a progression for the given level settings.
func NewProgression(cfg config.LevelsConfig) Progression {
	return Progression{cfg: cfg}
}

// MaxLevel returns the last configured level.
func (p Progression) MaxLevel() int {
	return p.cfg.MaxLevel
}

// TimeLimit returns the seconds allowed on a level, never below the floor.
func (p Progression) TimeLimit(level int) int {
	level = max(level, 1)
	return max(p.cfg.MinTime, p.cfg.BaseTime-(level-1)*p.cfg.TimeDecay)
}

// Count returns how many bugs spawn on a level.
// The count grows by CountStep every CountEvery levels.
func (p Progression) Count(level int) int {
	level = max(level, 1)
	every := max(p.cfg.CountEvery, 1)
	return p.cfg.BaseCount + ((level-1)/every)*p.cfg.CountStep
}

// Speed returns the base bug speed on a level.
func (p Progression) Speed(level int) float64 {
	level = max(level, 1)
	return p.cfg.BaseSpeed + float64(level-1)*p.cfg.SpeedStep
}

// Params returns all derived values for a level.
func (p Progression) Params(level int) LevelParams {
	return LevelParams{
		Level:     level,
		TimeLimit: p.TimeLimit(level),
		Count:     p.Count(level),
		Speed:     p.Speed(level),
	}
}
