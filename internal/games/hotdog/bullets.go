package hotdog

import "github.com/vovakirdan/hotdog-arcade/internal/core"

// fire spawns one bullet from the player's facing side.
// No-op when the session is over or the ammo is spent.
func (g *Game) fire() {
	if g.gameOver || g.ammo <= 0 {
		return
	}

	size := g.cfg.Bullet
	p := g.player

	x := p.X - size.Width
	if g.facing == FacingRight {
		x = p.X + p.Width
	}

	g.bullets = append(g.bullets, Bullet{
		X:    x,
		Y:    p.Y + p.Height/2 - size.Height/2,
		VelX: size.Speed * float64(g.facing),
	})
	g.ammo--
	g.shotsFired++
	g.cues = append(g.cues, core.CueFire)
}

// updateBullets moves every bullet, resolves hits on the living enemy and
// drops bullets that left the screen.
//
// Iterates from the back so removing bullet i never shifts a bullet that has
// not been visited yet.
func (g *Game) updateBullets() {
	size := g.cfg.Bullet
	worldW := g.cfg.World.Width

	for i := len(g.bullets) - 1; i >= 0; i-- {
		b := &g.bullets[i]
		b.X += b.VelX

		if g.enemy.Alive && b.rect(size).Overlaps(g.enemy.Rect()) {
			g.enemy.Alive = false
			g.removeBullet(i)
			g.player.celebrate(g.cfg.Victory, g.cfg.Player)
			g.decide(core.OutcomeVictory)
			g.cues = append(g.cues, core.CueExplosion)
			continue
		}

		if b.X > worldW || b.X+size.Width < 0 {
			g.removeBullet(i)
		}
	}
}

// removeBullet deletes the bullet at index i, preserving firing order.
func (g *Game) removeBullet(i int) {
	g.bullets = append(g.bullets[:i], g.bullets[i+1:]...)
}
