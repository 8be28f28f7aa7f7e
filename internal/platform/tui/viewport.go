package tui

import (
	"math"

	"github.com/vovakirdan/bug-smash/internal/core"
)

// Viewport maps the game's pixel arena onto terminal cells.
// The top row holds the HUD and the bottom row the help line; the arena box
// fills everything in between.
type Viewport struct {
	Frame  core.Rect // Box border, in cells
	Inner  core.Rect // Drawable arena cells inside the border
	ArenaW float64   // Arena size in pixels
	ArenaH float64
}

// NewViewport lays out the arena on a screen of the given size.
func NewViewport(screenW, screenH int, arenaW, arenaH float64) Viewport {
	frame := core.NewRect(0, 1, max(0, screenW), max(0, screenH-2))
	return Viewport{
		Frame:  frame,
		Inner:  frame.Inset(1),
		ArenaW: arenaW,
		ArenaH: arenaH,
	}
}

// Usable reports whether the screen is large enough to draw the arena.
func (v Viewport) Usable() bool {
	return v.Inner.W > 0 && v.Inner.H > 0 && v.ArenaW > 0 && v.ArenaH > 0
}

// cellSize returns the number of pixels covered by one cell on each axis.
func (v Viewport) cellSize() (w, h float64) {
	return v.ArenaW / float64(v.Inner.W), v.ArenaH / float64(v.Inner.H)
}

// ToCell returns the screen cell containing the pixel point, clamped to the
// arena.
func (v Viewport) ToCell(x, y float64) (cx, cy int) {
	cw, ch := v.cellSize()
	cx = v.Inner.X + int(math.Floor(x/cw))
	cy = v.Inner.Y + int(math.Floor(y/ch))
	cx = core.Clamp(cx, v.Inner.X, v.Inner.Right()-1)
	cy = core.Clamp(cy, v.Inner.Y, v.Inner.Bottom()-1)
	return cx, cy
}

// ToPixel returns the pixel point at the center of a screen cell.
// ok is false for cells outside the arena.
func (v Viewport) ToPixel(cx, cy int) (x, y float64, ok bool) {
	if !v.Inner.Contains(cx, cy) {
		return 0, 0, false
	}
	cw, ch := v.cellSize()
	x = (float64(cx-v.Inner.X) + 0.5) * cw
	y = (float64(cy-v.Inner.Y) + 0.5) * ch
	return x, y, true
}

// Slop is the hit tolerance in pixels: half a cell on its larger axis, so a
// click anywhere on a drawn bug's cell hits it.
func (v Viewport) Slop() float64 {
	cw, ch := v.cellSize()
	return math.Max(cw, ch) / 2
}

// Center returns the middle cell of the arena.
func (v Viewport) Center() (cx, cy int) {
	return v.Inner.X + v.Inner.W/2, v.Inner.Y + v.Inner.H/2
}
