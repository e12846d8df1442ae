// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
)

// HotdogConfig contains all configuration for the Hotdog platformer.
// Coordinates are in world units on a fixed canvas; the renderer scales them.
type HotdogConfig struct {
	World     WorldConfig              `yaml:"world"`
	Player    PlayerConfig             `yaml:"player"`
	Victory   MovementConfig           `yaml:"victory"`
	Enemy     EnemyConfig              `yaml:"enemy"`
	Bullet    BulletConfig             `yaml:"bullet"`
	Platforms []PlatformConfig         `yaml:"platforms"`
	Ammo      int                      `yaml:"ammo"`
	Contact   ContactConfig            `yaml:"contact"`
	HUD       HUDConfig                `yaml:"hud"`
	Variants  map[string]VariantConfig `yaml:"variants,omitempty"`
}

// WorldConfig defines the canvas the simulation runs on.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorMargin float64 `yaml:"floor_margin"` // Floor line sits this far above the bottom edge
}

// FloorY returns the y-coordinate of the floor line.
func (w WorldConfig) FloorY() float64 {
	return w.Height - w.FloorMargin
}

// MovementConfig holds the mutable movement constants of the player.
type MovementConfig struct {
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jump_force"` // Negative = upward
	Gravity   float64 `yaml:"gravity"`
}

// PlayerConfig defines the player's starting state.
type PlayerConfig struct {
	StartX   float64        `yaml:"start_x"`
	StartY   float64        `yaml:"start_y"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	Movement MovementConfig `yaml:"movement"`
}

// EnemyConfig defines the orbiting enemy.
type EnemyConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	BaseX        float64 `yaml:"base_x"`
	BaseY        float64 `yaml:"base_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	RadiusX      float64 `yaml:"radius_x"`
	RadiusY      float64 `yaml:"radius_y"`
	AngularSpeed float64 `yaml:"angular_speed"` // Radians per tick
}

// BulletConfig defines projectile size and speed.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformConfig is one static platform rectangle.
type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ContactConfig controls player-enemy contact detection.
type ContactConfig struct {
	Padding float64 `yaml:"padding"` // Inset applied to both rects per side
}

// HUDConfig holds the fixed texts shown by renderers.
type HUDConfig struct {
	Caption  string `yaml:"caption"`
	Banner   string `yaml:"banner"`
	GameOver string `yaml:"game_over"`
}

// VariantConfig overrides the starting position and post-victory constants.
type VariantConfig struct {
	StartX  float64        `yaml:"start_x"`
	StartY  float64        `yaml:"start_y"`
	Victory MovementConfig `yaml:"victory"`
}

// ErrUnknownVariant is returned by Variant for names missing from the config.
var ErrUnknownVariant = errors.New("config: unknown variant")

// Variant returns a copy of the config with the named variant applied.
// The empty name returns the base configuration unchanged.
func (c HotdogConfig) Variant(name string) (HotdogConfig, error) {
	if name == "" {
		return c, nil
	}
	v, ok := c.Variants[name]
	if !ok {
		return c, fmt.Errorf("%w %q", ErrUnknownVariant, name)
	}
	c.Player.StartX = v.StartX
	c.Player.StartY = v.StartY
	c.Victory = v.Victory
	return c, nil
}

// Validate checks the invariants the simulation relies on.
func (c HotdogConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.FloorMargin < 0 || c.World.FloorMargin >= c.World.Height {
		errs = append(errs, fmt.Errorf("floor_margin %g out of range", c.World.FloorMargin))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		errs = append(errs, errors.New("enemy size must be positive"))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, errors.New("bullet size must be positive"))
	}
	if c.Ammo < 0 {
		errs = append(errs, fmt.Errorf("ammo must not be negative, got %d", c.Ammo))
	}
	if c.Contact.Padding < 0 {
		errs = append(errs, fmt.Errorf("contact padding must not be negative, got %g", c.Contact.Padding))
	}
	for i, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("platform %d size must be positive", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid hotdog config: %w", errors.Join(errs...))
	}
	return nil
}
