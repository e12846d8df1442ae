package hotdog

import (
	"math"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// updatePlayer applies movement input, gravity, and floor/platform landing
// for one tick. There is no delta time: every call is one fixed step.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := &g.player

	// Left is checked first and wins when both are held
	switch {
	case in.Has(core.ActionLeft):
		p.VelX = -p.Speed
	case in.Has(core.ActionRight):
		p.VelX = p.Speed
	default:
		p.VelX = 0
	}

	// Holding jump re-fires only after the player has landed again
	if in.Has(core.ActionJump) && p.Grounded {
		p.VelY = p.JumpForce
		p.Grounded = false
	}

	p.VelY += p.Gravity
	p.X += p.VelX
	p.Y += p.VelY

	p.Grounded = false

	floorY := g.cfg.World.FloorY()
	if p.Bottom() >= floorY {
		p.Y = floorY - p.Height
		p.VelY = 0
		p.Grounded = true
	}

	// Platforms are checked in order against the already-snapped state, so the
	// first crossed platform wins
	for _, pl := range g.platforms {
		if landsOn(*p, pl) {
			p.Y = roundHalfUp(pl.Y - p.Height)
			p.VelY = 0
			p.Grounded = true
		}
	}
}

// landsOn reports whether the falling player crosses the platform's top
// surface during this tick while overlapping it horizontally.
func landsOn(p Player, pl core.RectF) bool {
	withinX := p.X+p.Width > pl.X && p.X < pl.Right()
	falling := p.VelY >= 0
	bottom := p.Bottom()
	crossing := bottom <= pl.Y+p.VelY && bottom+p.VelY >= pl.Y
	return withinX && falling && crossing
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
