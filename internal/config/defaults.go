package config

import (
	_ "embed"
)

//go:embed defaults/hotdog.yaml
var defaultHotdogYAML []byte

// DefaultHotdogConfig returns the built-in Hotdog configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultHotdogConfig() HotdogConfig {
	return HotdogConfig{
		World: WorldConfig{
			Width:       800,
			Height:      800,
			FloorMargin: 10,
		},
		Player: PlayerConfig{
			StartX: 550,
			StartY: 550,
			Width:  120,
			Height: 170,
			Movement: MovementConfig{
				Speed:     2,
				JumpForce: -9,
				Gravity:   0.2,
			},
		},
		Victory: MovementConfig{
			Speed:     2,
			JumpForce: -9,
			Gravity:   0.2,
		},
		Enemy: EnemyConfig{
			StartX:       100,
			StartY:       50,
			BaseX:        150,
			BaseY:        150,
			Width:        75,
			Height:       75,
			RadiusX:      100,
			RadiusY:      70,
			AngularSpeed: 0.03,
		},
		Bullet: BulletConfig{
			Speed:  1.5,
			Width:  55,
			Height: 45,
		},
		Platforms: []PlatformConfig{
			{X: 200, Y: 450, Width: 100, Height: 20},
			{X: 130, Y: 100, Width: 100, Height: 20},
			{X: 400, Y: 350, Width: 100, Height: 20},
			{X: 520, Y: 175, Width: 100, Height: 20},
		},
		Ammo: 5,
		Contact: ContactConfig{
			Padding: 15,
		},
		HUD: HUDConfig{
			Caption:  "Gašpiho hra - zpárkovaný tábor",
			Banner:   "KONEC",
			GameOver: "Konec hry - Tábor vyhrál",
		},
		Variants: map[string]VariantConfig{
			"happy": {
				StartX: 100,
				StartY: 550,
				Victory: MovementConfig{
					Speed:     3,
					JumpForce: -11,
					Gravity:   0.15,
				},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hotdog":
		return defaultHotdogYAML
	default:
		return nil
	}
}
