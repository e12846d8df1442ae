package hotdog

import (
	"math"

	"github.com/vovakirdan/hotdog-arcade/internal/config"
	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Mood selects the player's sprite.
type Mood int

const (
	MoodSad   Mood = iota // Before the enemy is destroyed
	MoodHappy             // After the victory
)

// Facing is the last horizontal direction the player indicated.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Player is the controllable hotdog.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelX, VelY    float64
	Speed         float64
	JumpForce     float64 // Negative = upward
	Gravity       float64 // Mutable: replaced on victory
	Grounded      bool
	Mood          Mood
}

// newPlayer returns the player in its starting state.
func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:         cfg.StartX,
		Y:         cfg.StartY,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Speed:     cfg.Movement.Speed,
		JumpForce: cfg.Movement.JumpForce,
		Gravity:   cfg.Movement.Gravity,
		Mood:      MoodSad,
	}
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.Height
}

// celebrate switches the player to the post-victory look and movement.
func (p *Player) celebrate(victory config.MovementConfig, base config.PlayerConfig) {
	p.Mood = MoodHappy
	p.Speed = victory.Speed
	p.JumpForce = victory.JumpForce
	p.Gravity = victory.Gravity
	p.Width = base.Width
	p.Height = base.Height
}

// Enemy orbits its base point on an ellipse until it is shot.
type Enemy struct {
	X, Y             float64
	BaseX, BaseY     float64
	Width, Height    float64
	Angle            float64
	RadiusX, RadiusY float64
	AngularSpeed     float64
	Alive            bool
}

// newEnemy returns the enemy in its starting state.
func newEnemy(cfg config.EnemyConfig) Enemy {
	return Enemy{
		X:            cfg.StartX,
		Y:            cfg.StartY,
		BaseX:        cfg.BaseX,
		BaseY:        cfg.BaseY,
		Width:        cfg.Width,
		Height:       cfg.Height,
		RadiusX:      cfg.RadiusX,
		RadiusY:      cfg.RadiusY,
		AngularSpeed: cfg.AngularSpeed,
		Alive:        true,
	}
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// orbitPosition returns the top-left corner for the given orbit angle.
func (e Enemy) orbitPosition(angle float64) (x, y float64) {
	return e.BaseX + math.Cos(angle)*e.RadiusX, e.BaseY + math.Sin(angle)*e.RadiusY
}

// Bullet is a projectile travelling horizontally.
// Size and speed are shared by all bullets and live in the config.
type Bullet struct {
	X, Y float64
	VelX float64 // Sign is the firing direction
}

// rect returns the bullet's bounding box for the given bullet size.
func (b Bullet) rect(size config.BulletConfig) core.RectF {
	return core.NewRectF(b.X, b.Y, size.Width, size.Height)
}

// platformRects converts configured platforms to world rectangles.
func platformRects(cfgs []config.PlatformConfig) []core.RectF {
	rects := make([]core.RectF, len(cfgs))
	for i, p := range cfgs {
		rects[i] = core.NewRectF(p.X, p.Y, p.Width, p.Height)
	}
	return rects
}
