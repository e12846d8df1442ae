package hotdog

import "github.com/vovakirdan/hotdog-arcade/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the Game.
type Snapshot struct {
	WorldW, WorldH float64
	FloorY         float64

	Player core.RectF
	Mood   Mood
	Facing Facing

	Enemy      core.RectF
	EnemyAlive bool

	Bullets   []core.RectF
	Platforms []core.RectF

	Ammo    int
	MaxAmmo int

	GameOver     bool
	ShowBanner   bool // Enemy destroyed: show the end-of-round banner
	Caption      string
	Banner       string
	GameOverText string
}

// Snapshot returns the current frame's render state.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]core.RectF, len(g.bullets))
	for i, b := range g.bullets {
		bullets[i] = b.rect(g.cfg.Bullet)
	}

	return Snapshot{
		WorldW:       g.cfg.World.Width,
		WorldH:       g.cfg.World.Height,
		FloorY:       g.cfg.World.FloorY(),
		Player:       g.player.Rect(),
		Mood:         g.player.Mood,
		Facing:       g.facing,
		Enemy:        g.enemy.Rect(),
		EnemyAlive:   g.enemy.Alive,
		Bullets:      bullets,
		Platforms:    append([]core.RectF(nil), g.platforms...),
		Ammo:         g.ammo,
		MaxAmmo:      g.cfg.Ammo,
		GameOver:     g.gameOver,
		ShowBanner:   !g.enemy.Alive,
		Caption:      g.cfg.HUD.Caption,
		Banner:       g.cfg.HUD.Banner,
		GameOverText: g.cfg.HUD.GameOver,
	}
}
