package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/bug-smash/internal/config"
)

func TestProgressionDefaults(t *testing.T) {
	p := NewProgression(config.DefaultGameConfig().Levels)

	tests := []struct {
		level     int
		timeLimit int
		count     int
		speed     float64
	}{
		{1, 15, 8, 2.0},
		{2, 13, 10, 2.8},
		{3, 11, 12, 3.6},
		{4, 10, 14, 4.4}, // 15-6=9 is clamped to the 10s floor
	}

	for _, tc := range tests {
		params := p.Params(tc.level)
		if params.TimeLimit != tc.timeLimit {
			t.Errorf("level %d: TimeLimit = %d, expected %d", tc.level, params.TimeLimit, tc.timeLimit)
		}
		if params.Count != tc.count {
			t.Errorf("level %d: Count = %d, expected %d", tc.level, params.Count, tc.count)
		}
		if math.Abs(params.Speed-tc.speed) > 1e-9 {
			t.Errorf("level %d: Speed = %v, expected %v", tc.level, params.Speed, tc.speed)
		}
	}
}

func TestTimeLimitFloorAndMonotonic(t *testing.T) {
	cfg := config.DefaultGameConfig().Levels
	cfg.TimeDecay = 3
	p := NewProgression(cfg)

	prev := p.TimeLimit(1)
	for level := 1; level <= 100; level++ {
		limit := p.TimeLimit(level)
		if limit < cfg.MinTime {
			t.Fatalf("TimeLimit(%d) = %d below floor %d", level, limit, cfg.MinTime)
		}
		if limit > prev {
			t.Fatalf("TimeLimit increased from %d to %d at level %d", prev, limit, level)
		}
		prev = limit
	}
}

func TestCountAndSpeedNonDecreasing(t *testing.T) {
	for _, every := range []int{1, 2, 3} {
		cfg := config.DefaultGameConfig().Levels
		cfg.CountEvery = every
		p := NewProgression(cfg)

		for level := 2; level <= 50; level++ {
			if p.Count(level) < p.Count(level-1) {
				t.Fatalf("every=%d: Count decreased at level %d", every, level)
			}
			if p.Speed(level) < p.Speed(level-1) {
				t.Fatalf("every=%d: Speed decreased at level %d", every, level)
			}
		}
	}
}

func TestCountStepFunction(t *testing.T) {
	cfg := config.DefaultGameConfig().Levels
	cfg.BaseCount = 5
	cfg.CountStep = 1
	cfg.CountEvery = 2
	p := NewProgression(cfg)

	expected := []int{5, 5, 6, 6, 7, 7}
	for i, want := range expected {
		if got := p.Count(i + 1); got != want {
			t.Errorf("Count(%d) = %d, expected %d", i+1, got, want)
		}
	}
}

func TestProgressionClampsLevelBelowOne(t *testing.T) {
	p := NewProgression(config.DefaultGameConfig().Levels)
	if p.Params(0) != (LevelParams{Level: 0, TimeLimit: 15, Count: 8, Speed: 2}) {
		t.Errorf("Params(0) = %+v", p.Params(0))
	}
}
