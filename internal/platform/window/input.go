package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Key bindings
var (
	leftKeys    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace}
	fireKeys    = []ebiten.Key{ebiten.KeyE}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// A key held down repeats its press like keyboard auto-repeat: once after
// repeatDelay ticks and then every repeatEvery ticks.
const (
	repeatDelay = 30
	repeatEvery = 3
)

// keyboard reads key state. The functions are swapped out in tests.
type keyboard struct {
	pressed  func(ebiten.Key) bool
	duration func(ebiten.Key) int // Ticks the key has been down, 0 if up
}

func ebitenKeyboard() keyboard {
	return keyboard{
		pressed:  ebiten.IsKeyPressed,
		duration: inpututil.KeyPressDuration,
	}
}

func (k keyboard) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}

// typed reports a key-down event this tick, auto-repeat included.
func (k keyboard) typed(keys []ebiten.Key) bool {
	for _, key := range keys {
		d := k.duration(key)
		if d == 1 || (d > repeatDelay && (d-repeatDelay)%repeatEvery == 0) {
			return true
		}
	}
	return false
}

// quit reports a fresh press of a quit key.
func (k keyboard) quit() bool {
	for _, key := range quitKeys {
		if k.duration(key) == 1 {
			return true
		}
	}
	return false
}

// frame builds the input for one tick. Right is applied before Left so
// that pressing both in one tick leaves the player facing left.
func (k keyboard) frame() core.InputFrame {
	f := core.NewInputFrame()

	if k.anyPressed(leftKeys) {
		f.Hold(core.ActionLeft)
	}
	if k.anyPressed(rightKeys) {
		f.Hold(core.ActionRight)
	}
	if k.anyPressed(jumpKeys) {
		f.Hold(core.ActionJump)
	}

	if k.typed(restartKeys) {
		f.Trigger(core.ActionRestart)
	}
	if k.typed(rightKeys) {
		f.Trigger(core.ActionRight)
	}
	if k.typed(leftKeys) {
		f.Trigger(core.ActionLeft)
	}
	if k.typed(fireKeys) {
		f.Trigger(core.ActionFire)
	}
	return f
}

// ebitenPointers returns the canvas positions of active touches and of
// the mouse cursor while the left button is down.
func ebitenPointers() []image.Point {
	var pts []image.Point
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		pts = append(pts, image.Pt(ebiten.CursorPosition()))
	}
	return pts
}
