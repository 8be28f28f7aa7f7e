package game

import "github.com/vovakirdan/bug-smash/internal/core"

// Bug is a moving target. Positions are the top-left corner of its square
// footprint in arena pixels.
type Bug struct {
	ID    string  `msgpack:"id"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	VX    float64 `msgpack:"vx"`
	VY    float64 `msgpack:"vy"`
	TX    float64 `msgpack:"tx"` // Movement target
	TY    float64 `msgpack:"ty"`
	Speed float64 `msgpack:"speed"`
	Alive bool    `msgpack:"alive"`
}

// Footprint returns the bug's hit box for the given size.
func (b Bug) Footprint(size float64) core.Box {
	return core.Box{X: b.X, Y: b.Y, W: size, H: size}
}

// BugView is the read-only projection of a bug handed to renderers.
type BugView struct {
	ID    string
	X, Y  float64
	Alive bool
}
