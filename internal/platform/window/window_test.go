package window

import (
	"bytes"
	"errors"
	"image"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/hotdog-arcade/internal/config"
	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/games/hotdog"
)

// fakeKeys maps keys to the number of ticks they have been down.
type fakeKeys map[ebiten.Key]int

func (k fakeKeys) keyboard() keyboard {
	return keyboard{
		pressed:  func(key ebiten.Key) bool { return k[key] > 0 },
		duration: func(key ebiten.Key) int { return k[key] },
	}
}

func newTestWindow(t *testing.T) (*Window, fakeKeys, *[]image.Point) {
	t.Helper()
	game := hotdog.NewWithConfig("", config.DefaultHotdogConfig())
	w := New(game, Options{})

	keys := fakeKeys{}
	var pointers []image.Point
	w.keys = keys.keyboard()
	w.pointers = func() []image.Point { return pointers }
	return w, keys, &pointers
}

func TestKeyboardFrame(t *testing.T) {
	tests := []struct {
		name     string
		keys     fakeKeys
		held     []core.Action
		triggers []core.Action
	}{
		{
			name: "nothing pressed",
			keys: fakeKeys{},
		},
		{
			name:     "fresh press holds and triggers",
			keys:     fakeKeys{ebiten.KeyA: 1},
			held:     []core.Action{core.ActionLeft},
			triggers: []core.Action{core.ActionLeft},
		},
		{
			name: "held key does not trigger",
			keys: fakeKeys{ebiten.KeyArrowRight: 5},
			held: []core.Action{core.ActionRight},
		},
		{
			name:     "auto repeat",
			keys:     fakeKeys{ebiten.KeyE: repeatDelay + repeatEvery},
			triggers: []core.Action{core.ActionFire},
		},
		{
			name: "between repeats",
			keys: fakeKeys{ebiten.KeyE: repeatDelay + 1},
		},
		{
			name:     "both directions leave left last",
			keys:     fakeKeys{ebiten.KeyA: 1, ebiten.KeyD: 1},
			held:     []core.Action{core.ActionLeft, core.ActionRight},
			triggers: []core.Action{core.ActionRight, core.ActionLeft},
		},
		{
			name:     "restart comes first",
			keys:     fakeKeys{ebiten.KeyE: 1, ebiten.KeyR: 1},
			triggers: []core.Action{core.ActionRestart, core.ActionFire},
		},
		{
			name: "jump is held only",
			keys: fakeKeys{ebiten.KeySpace: 1},
			held: []core.Action{core.ActionJump},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.keys.keyboard().frame()

			for _, a := range tc.held {
				if !f.Has(a) {
					t.Errorf("expected %v held", a)
				}
			}
			if got := len(f.Held); got != len(tc.held) {
				t.Errorf("expected %d held actions, got %d", len(tc.held), got)
			}
			if len(tc.triggers) == 0 && len(f.Triggers) == 0 {
				return
			}
			if !reflect.DeepEqual(f.Triggers, tc.triggers) {
				t.Errorf("Triggers = %v, expected %v", f.Triggers, tc.triggers)
			}
		})
	}
}

func TestKeyboardQuit(t *testing.T) {
	if !(fakeKeys{ebiten.KeyQ: 1}).keyboard().quit() {
		t.Error("fresh Q should quit")
	}
	if !(fakeKeys{ebiten.KeyEscape: 1}).keyboard().quit() {
		t.Error("fresh Escape should quit")
	}
	if (fakeKeys{ebiten.KeyQ: 2}).keyboard().quit() {
		t.Error("held Q should not quit again")
	}
}

func TestPadPressAndRelease(t *testing.T) {
	p := newPad()
	r := p.rect(0, 800, 800)
	center := image.Pt(int(r.X+r.W/2), int(r.Y+r.H/2))

	if got := p.update([]image.Point{center}, 800, 800); !reflect.DeepEqual(got, []core.Action{core.ActionLeft}) {
		t.Fatalf("first update = %v, expected [Left]", got)
	}
	if got := p.update([]image.Point{center}, 800, 800); len(got) != 0 {
		t.Errorf("held button pressed again: %v", got)
	}
	if !p.held[core.ActionLeft] {
		t.Error("Left should stay held")
	}

	p.update(nil, 800, 800)
	if len(p.held) != 0 {
		t.Errorf("expected nothing held after release, got %v", p.held)
	}

	if got := p.update([]image.Point{image.Pt(5, 5)}, 800, 800); len(got) != 0 {
		t.Errorf("pointer in the world pressed %v", got)
	}
}

func TestPadButtonsDoNotOverlap(t *testing.T) {
	p := newPad()
	for i := 1; i < len(buttons); i++ {
		prev := p.rect(i-1, 800, 800)
		cur := p.rect(i, 800, 800)
		if prev.Overlaps(cur) {
			t.Errorf("buttons %d and %d overlap", i-1, i)
		}
		if cur.Y < 800 {
			t.Errorf("button %d reaches into the world", i)
		}
	}
}

func TestBuildScene(t *testing.T) {
	game := hotdog.NewWithConfig("", config.DefaultHotdogConfig())
	game.Reset(core.DefaultConfig())
	snap := game.Snapshot()

	s := buildScene(snap, newPad())

	if s.width != 800 || s.height != 800+padHeight {
		t.Errorf("unexpected canvas %vx%v", s.width, s.height)
	}
	// Ground, 4 platforms, bun, sausage, enemy, pad strip, 5 buttons
	if len(s.boxes) != 14 {
		t.Errorf("expected 14 boxes, got %d", len(s.boxes))
	}

	var texts []string
	for _, l := range s.labels {
		texts = append(texts, l.text)
	}
	joined := strings.Join(texts, "\n")
	if !strings.Contains(joined, "Ammo: | | | | |") {
		t.Errorf("missing ammo line in %q", joined)
	}
	if !strings.Contains(joined, snap.Caption) {
		t.Errorf("missing caption in %q", joined)
	}
	if strings.Contains(joined, snap.Banner) {
		t.Error("banner shown before the enemy is destroyed")
	}
	if !strings.Contains(joined, ":(") {
		t.Error("player should start sad")
	}
}

func TestBuildSceneGameOver(t *testing.T) {
	snap := hotdog.Snapshot{
		WorldW:       800,
		WorldH:       800,
		GameOver:     true,
		GameOverText: "Konec hry",
	}

	s := buildScene(snap, newPad())

	if s.background != colorBlack {
		t.Errorf("expected black background, got %v", s.background)
	}
	found := false
	for _, l := range s.labels {
		if l.text == "Konec hry" && l.centered {
			found = true
		}
		if strings.HasPrefix(l.text, "Ammo:") {
			t.Error("HUD drawn on the game-over screen")
		}
	}
	if !found {
		t.Error("missing game-over text")
	}
}

func TestLayout(t *testing.T) {
	w, _, _ := newTestWindow(t)

	width, height := w.Layout(1920, 1080)
	if width != 800 || height != 800+int(padHeight) {
		t.Errorf("Layout() = %d, %d", width, height)
	}
}

func TestUpdateFires(t *testing.T) {
	w, keys, _ := newTestWindow(t)

	keys[ebiten.KeyE] = 1
	if err := w.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	snap := w.game.Snapshot()
	if snap.Ammo != 4 || len(snap.Bullets) != 1 {
		t.Errorf("expected one shot, got ammo %d bullets %d", snap.Ammo, len(snap.Bullets))
	}

	keys[ebiten.KeyE] = 2
	if err := w.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if w.game.Snapshot().Ammo != 4 {
		t.Error("held fire key shot again before repeating")
	}
}

func TestUpdateFromPad(t *testing.T) {
	w, _, pointers := newTestWindow(t)
	startX := w.game.Snapshot().Player.X

	r := w.pad.rect(1, 800, 800) // Right
	*pointers = []image.Point{image.Pt(int(r.X+1), int(r.Y+1))}
	for i := 0; i < 3; i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}

	snap := w.game.Snapshot()
	if snap.Player.X <= startX {
		t.Errorf("player did not move right: %v -> %v", startX, snap.Player.X)
	}
	if snap.Facing != hotdog.FacingRight {
		t.Errorf("expected facing right, got %v", snap.Facing)
	}
}

func TestUpdateTermination(t *testing.T) {
	w, keys, _ := newTestWindow(t)

	keys[ebiten.KeyQ] = 1
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit key: Update() = %v, expected Termination", err)
	}

	w2, _, _ := newTestWindow(t)
	w2.Stop()
	if err := w2.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("after Stop: Update() = %v, expected Termination", err)
	}
	if w2.game.State().Tick != 0 {
		t.Error("stopped window still stepped the game")
	}
}

func TestNewWarnsAboutConfigFallback(t *testing.T) {
	hotdog.SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { hotdog.SetConfigPath("") })

	var buf bytes.Buffer
	game := hotdog.New("")
	New(game, Options{Logger: log.New(&buf)})

	if game.ConfigErr() == nil {
		t.Fatal("missing config file should be reported")
	}
	if !strings.Contains(buf.String(), "using default configuration") {
		t.Errorf("expected a config warning, got %q", buf.String())
	}
	if game.Snapshot().Ammo != 5 {
		t.Error("game should still start with the default configuration")
	}
}
