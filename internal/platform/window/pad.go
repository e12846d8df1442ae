package window

import (
	"image"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Touch pad geometry, in canvas units
const (
	padHeight  = 80.0
	buttonSize = 60.0
	buttonGap  = 20.0
)

type button struct {
	label  string
	action core.Action
}

var buttons = []button{
	{"<", core.ActionLeft},
	{">", core.ActionRight},
	{"^", core.ActionJump},
	{"*", core.ActionFire},
	{"R", core.ActionRestart},
}

// pad turns pointers (mouse or touches) over the on-screen buttons into
// input. A button is held while any pointer is over it.
type pad struct {
	held map[core.Action]bool
}

func newPad() *pad {
	return &pad{held: make(map[core.Action]bool)}
}

// rect returns the canvas rectangle of button i below a world of the
// given size.
func (p *pad) rect(i int, worldW, worldH float64) core.RectF {
	total := float64(len(buttons))*buttonSize + float64(len(buttons)-1)*buttonGap
	x := (worldW-total)/2 + float64(i)*(buttonSize+buttonGap)
	y := worldH + (padHeight-buttonSize)/2
	return core.NewRectF(x, y, buttonSize, buttonSize)
}

// update refreshes the held buttons and reports the ones that went down
// since the previous update, in button order.
func (p *pad) update(pointers []image.Point, worldW, worldH float64) []core.Action {
	next := make(map[core.Action]bool, len(buttons))
	for i, b := range buttons {
		r := p.rect(i, worldW, worldH)
		for _, pt := range pointers {
			if r.Contains(float64(pt.X), float64(pt.Y)) {
				next[b.action] = true
				break
			}
		}
	}

	var pressed []core.Action
	for _, b := range buttons {
		if next[b.action] && !p.held[b.action] {
			pressed = append(pressed, b.action)
		}
	}
	p.held = next
	return pressed
}

// layout adds the pad strip to a scene.
func (p *pad) layout(s *scene, worldW, worldH float64) {
	s.fill(core.NewRectF(0, worldH, worldW, padHeight), colorPad)
	for i, b := range buttons {
		r := p.rect(i, worldW, worldH)
		fill := colorPlatform
		if p.held[b.action] {
			fill = colorPressed
		}
		s.fill(r, fill)
		s.labels = append(s.labels, label{
			text:     b.label,
			x:        r.X + r.W/2,
			y:        r.Y + r.H/2 - 6,
			clr:      colorBlack,
			centered: true,
		})
	}
}
