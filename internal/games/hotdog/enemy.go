package hotdog

import "github.com/vovakirdan/hotdog-arcade/internal/core"

// updateEnemy advances the enemy along its orbit. Dead enemies stay put.
func (g *Game) updateEnemy() {
	e := &g.enemy
	if !e.Alive {
		return
	}

	e.Angle += e.AngularSpeed
	e.X, e.Y = e.orbitPosition(e.Angle)
}

// checkContact ends the session when the player touches the living enemy.
// Both boxes are shrunk by the contact padding so grazing sprites do not count.
func (g *Game) checkContact() {
	if g.gameOver || !g.enemy.Alive {
		return
	}

	pad := g.cfg.Contact.Padding
	if g.player.Rect().Shrink(pad).Overlaps(g.enemy.Rect().Shrink(pad)) {
		g.gameOver = true
		g.decide(core.OutcomeDefeat)
	}
}
