package core

import "time"

// RuntimeConfig contains host settings passed to the game at startup.
// The simulation itself runs in pixel space; screen dimensions only affect
// how the host maps that space onto terminal cells.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second driving Advance (default 60)
	Seed     int64  // RNG seed for deterministic gameplay (0 = time based)
	Player   string // Save slot / scoreboard name
	Local    bool   // Running on the local terminal (clipboard available)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Player:   "player",
		Local:    true,
	}
}

// FrameInterval returns the time between frame ticks.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
