package window

import (
	"image/color"
	"strings"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/games/hotdog"
)

// Canvas colors
var (
	colorSky      = color.RGBA{R: 0x1b, G: 0x1e, B: 0x2b, A: 0xff}
	colorGround   = color.RGBA{R: 0x6b, G: 0x6b, B: 0x6b, A: 0xff}
	colorPlatform = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	colorBullet   = color.RGBA{R: 0xff, G: 0x8c, B: 0x1a, A: 0xff}
	colorSad      = color.RGBA{R: 0xd9, G: 0xa4, B: 0x41, A: 0xff}
	colorHappy    = color.RGBA{R: 0xff, G: 0xd8, B: 0x4d, A: 0xff}
	colorSausage  = color.RGBA{R: 0xb8, G: 0x3b, B: 0x2a, A: 0xff}
	colorEnemy    = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	colorText     = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorBanner   = color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}
	colorPad      = color.RGBA{R: 0x2c, G: 0x2f, B: 0x3d, A: 0xff}
	colorPressed  = color.RGBA{R: 0xff, G: 0x8c, B: 0x1a, A: 0xff}
	colorBlack    = color.RGBA{A: 0xff}
)

// box is a filled rectangle in canvas coordinates.
type box struct {
	rect core.RectF
	fill color.RGBA
}

// label is a line of text anchored at its top-left corner, or at its
// top center when centered is set.
type label struct {
	text     string
	x, y     float64
	clr      color.RGBA
	centered bool
}

// scene is everything drawn for one frame, in painting order.
type scene struct {
	width, height float64
	background    color.RGBA
	boxes         []box
	labels        []label
}

func (s *scene) fill(r core.RectF, c color.RGBA) {
	s.boxes = append(s.boxes, box{rect: r, fill: c})
}

func (s *scene) text(str string, x, y float64, c color.RGBA) {
	s.labels = append(s.labels, label{text: str, x: x, y: y, clr: c})
}

func (s *scene) centered(str string, y float64, c color.RGBA) {
	s.labels = append(s.labels, label{text: str, x: s.width / 2, y: y, clr: c, centered: true})
}

// buildScene lays out a frame. The world is drawn 1:1 at the top of the
// canvas and the touch pad occupies the strip below it.
func buildScene(snap hotdog.Snapshot, p *pad) scene {
	s := scene{
		width:      snap.WorldW,
		height:     snap.WorldH + padHeight,
		background: colorSky,
	}

	if snap.GameOver {
		s.background = colorBlack
		s.centered(snap.GameOverText, snap.WorldH/2-20, colorBanner)
		s.centered("Press R to restart", snap.WorldH/2+10, colorText)
		p.layout(&s, snap.WorldW, snap.WorldH)
		return s
	}

	s.fill(core.NewRectF(0, snap.FloorY, snap.WorldW, snap.WorldH-snap.FloorY), colorGround)
	for _, r := range snap.Platforms {
		s.fill(r, colorPlatform)
	}
	for _, r := range snap.Bullets {
		s.fill(r, colorBullet)
	}
	addPlayer(&s, snap)
	if snap.EnemyAlive {
		s.fill(snap.Enemy, colorEnemy)
	}

	s.text("Ammo: "+strings.Repeat("| ", snap.Ammo), 10, 10, colorBullet)
	s.text(snap.Caption, 20, snap.WorldH-50, colorText)
	if snap.ShowBanner {
		s.text(snap.Banner, snap.WorldW-180, snap.WorldH-50, colorBanner)
	}

	p.layout(&s, snap.WorldW, snap.WorldH)
	return s
}

// addPlayer draws the bun with the sausage on the facing side and a face.
func addPlayer(s *scene, snap hotdog.Snapshot) {
	bun := colorSad
	face := ":("
	if snap.Mood == hotdog.MoodHappy {
		bun = colorHappy
		face = ":)"
	}

	r := snap.Player
	s.fill(r, bun)

	sausage := core.NewRectF(r.X-r.W*0.05, r.Y+r.H*0.35, r.W*1.1, r.H*0.3)
	s.fill(sausage, colorSausage)

	fx := r.X + r.W*0.7
	if snap.Facing == hotdog.FacingLeft {
		fx = r.X + r.W*0.2
	}
	s.text(face, fx, r.Y+r.H*0.12, colorBlack)
}
