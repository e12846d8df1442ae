package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded HotdogConfig
	if err := yaml.Unmarshal(GetDefaultYAML("hotdog"), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(embedded, DefaultHotdogConfig()) {
		t.Errorf("embedded defaults drifted from DefaultHotdogConfig()\nyaml: %+v\ngo:   %+v", embedded, DefaultHotdogConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultHotdogConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestFloorY(t *testing.T) {
	w := WorldConfig{Width: 800, Height: 800, FloorMargin: 10}
	if w.FloorY() != 790 {
		t.Errorf("FloorY() = %g, expected 790", w.FloorY())
	}
}

func TestVariant(t *testing.T) {
	base := DefaultHotdogConfig()

	same, err := base.Variant("")
	if err != nil {
		t.Fatalf("empty variant should not fail: %v", err)
	}
	if same.Player.StartX != 550 || same.Victory.Speed != 2 {
		t.Errorf("empty variant should keep base values, got start %g victory %+v", same.Player.StartX, same.Victory)
	}

	happy, err := base.Variant("happy")
	if err != nil {
		t.Fatalf("Variant(happy) failed: %v", err)
	}
	if happy.Player.StartX != 100 || happy.Player.StartY != 550 {
		t.Errorf("happy start = (%g, %g), expected (100, 550)", happy.Player.StartX, happy.Player.StartY)
	}
	want := MovementConfig{Speed: 3, JumpForce: -11, Gravity: 0.15}
	if happy.Victory != want {
		t.Errorf("happy victory = %+v, expected %+v", happy.Victory, want)
	}

	// Base config must not be mutated
	if base.Player.StartX != 550 {
		t.Error("Variant should not mutate the receiver")
	}

	if _, err := base.Variant("nope"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("unknown variant error = %v, expected ErrUnknownVariant", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HotdogConfig)
		substr string
	}{
		{"zero world", func(c *HotdogConfig) { c.World.Width = 0 }, "world size"},
		{"negative ammo", func(c *HotdogConfig) { c.Ammo = -1 }, "ammo"},
		{"flat player", func(c *HotdogConfig) { c.Player.Height = 0 }, "player size"},
		{"bad platform", func(c *HotdogConfig) { c.Platforms[2].Width = -5 }, "platform 2"},
		{"negative padding", func(c *HotdogConfig) { c.Contact.Padding = -1 }, "padding"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHotdogConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q should mention %q", err, tc.substr)
			}
		})
	}
}

func TestLoadHotdogCustomPath(t *testing.T) {
	cfg := DefaultHotdogConfig()
	cfg.Ammo = 9
	cfg.Bullet.Speed = 4

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "hotdog.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := LoadHotdog(path)
	if err != nil {
		t.Fatalf("LoadHotdog() failed: %v", err)
	}
	if loaded.Ammo != 9 || loaded.Bullet.Speed != 4 {
		t.Errorf("loaded ammo=%d speed=%g, expected 9 and 4", loaded.Ammo, loaded.Bullet.Speed)
	}
}

func TestLoadHotdogCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHotdog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("world: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadHotdog(broken); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ammo: -3\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadHotdog(invalid); err == nil {
		t.Error("config failing validation should be rejected")
	}
}
