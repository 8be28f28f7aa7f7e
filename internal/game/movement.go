package game

import "math"

// moveBugs advances every alive bug by scale reference frames. Velocities
// are in pixels per reference frame, so the distance covered per second does
// not depend on how often the host calls Advance.
// Callers gate on phase; this only does the kinematics.
func (g *Game) moveBugs(scale float64) {
	bc := g.cfg.Bugs
	maxX, maxY := g.limits()

	for i := range g.bugs {
		b := &g.bugs[i]
		if !b.Alive {
			continue
		}

		// Close to target (or sitting on it): wander somewhere else
		if math.Hypot(b.TX-b.X, b.TY-b.Y) < bc.RetargetDistance || (b.TX == b.X && b.TY == b.Y) {
			b.TX = g.rng.Float64() * maxX
			b.TY = g.rng.Float64() * maxY
		}

		dx := b.TX - b.X
		dy := b.TY - b.Y
		if dist := math.Hypot(dx, dy); dist > 0 {
			mult := uniform(g.rng, bc.StepSpeedMin, bc.StepSpeedMax)
			b.VX = dx / dist * b.Speed * mult
			b.VY = dy / dist * b.Speed * mult

			b.VX += (g.rng.Float64() - 0.5) * bc.Jitter
			b.VY += (g.rng.Float64() - 0.5) * bc.Jitter
		}

		b.X += b.VX * scale
		b.Y += b.VY * scale

		// Bounce off walls and pick a fresh target on that axis
		if b.X < 0 {
			b.X = 0
			b.VX = math.Abs(b.VX)
			b.TX = g.rng.Float64() * maxX
		}
		if b.X > maxX {
			b.X = maxX
			b.VX = -math.Abs(b.VX)
			b.TX = g.rng.Float64() * maxX
		}
		if b.Y < 0 {
			b.Y = 0
			b.VY = math.Abs(b.VY)
			b.TY = g.rng.Float64() * maxY
		}
		if b.Y > maxY {
			b.Y = maxY
			b.VY = -math.Abs(b.VY)
			b.TY = g.rng.Float64() * maxY
		}
	}
}
