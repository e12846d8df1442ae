package hotdog

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '▒'
	PlatformChar = '▀'
	PlayerChar   = '█'
	EnemyChar    = '▓'
	BulletChar   = '='
	AmmoIcon     = "▬"
	SadFace      = '☹'
	HappyFace    = '☺'
)

// turkey is drawn on the game-over screen.
var turkey = []string{
	`    \\|//     `,
	`   \\\|///    `,
	`  (  o  )>   `,
	`   \\ ~ //    `,
	`   _|| ||_    `,
}

// Render draws the current game state to the screen.
// World coordinates are scaled to the cell grid on each axis independently.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	if snap.GameOver {
		g.drawGameOver(dst, snap)
		return
	}

	sx := float64(dst.Width()) / snap.WorldW
	sy := float64(dst.Height()) / snap.WorldH

	// Ground
	ground := core.NewRectF(0, snap.FloorY, snap.WorldW, snap.WorldH-snap.FloorY).Scale(sx, sy)
	dst.DrawRect(ground, GroundChar, core.ColorGray)

	for _, p := range snap.Platforms {
		dst.DrawRect(p.Scale(sx, sy), PlatformChar, core.ColorWhite)
	}

	for _, b := range snap.Bullets {
		dst.DrawRect(b.Scale(sx, sy), BulletChar, core.ColorOrange)
	}

	g.drawPlayer(dst, snap, sx, sy)

	if snap.EnemyAlive {
		dst.DrawRect(snap.Enemy.Scale(sx, sy), EnemyChar, core.ColorBrightRed)
	}

	// HUD: remaining ammo, caption, end-of-round banner
	ammo := strings.TrimSpace(strings.Repeat(AmmoIcon+" ", snap.Ammo))
	dst.DrawText(1, 0, fmt.Sprintf(" Ammo: %s ", ammo), core.ColorOrange)

	captionY := int((snap.WorldH - 50) * sy)
	dst.DrawText(2, core.Clamp(captionY-1, 0, dst.Height()-1), snap.Caption, core.ColorDefault)

	if snap.ShowBanner {
		x := dst.Width() - len([]rune(snap.Banner)) - 2
		dst.DrawText(x, dst.Height()-1, snap.Banner, core.ColorRed)
	}
}

// drawPlayer renders the hotdog with a face showing its mood.
func (g *Game) drawPlayer(dst *core.Screen, snap Snapshot, sx, sy float64) {
	color := core.ColorYellow
	face := SadFace
	if snap.Mood == MoodHappy {
		color = core.ColorBrightYellow
		face = HappyFace
	}

	r := snap.Player.Scale(sx, sy)
	dst.DrawRect(r, PlayerChar, color)

	// Face sits on the facing side of the upper half
	fx := r.X + r.W/2
	if snap.Facing == FacingRight && r.W > 2 {
		fx = r.Right() - 2
	} else if snap.Facing == FacingLeft && r.W > 2 {
		fx = r.X + 1
	}
	dst.SetColored(fx, r.Y+r.H/3, face, core.ColorOrange)
}

// drawGameOver renders the end screen shown while the session is over.
func (g *Game) drawGameOver(dst *core.Screen, snap Snapshot) {
	top := core.Max(0, dst.Height()/2-len(turkey)-2)
	for i, line := range turkey {
		dst.DrawTextCentered(top+i, line, core.ColorOrange)
	}
	g.drawCenteredMessage(dst, snap.GameOverText, "Press R to restart", top+len(turkey)+1)
}

// drawCenteredMessage draws a message box centered horizontally at row y.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, y int) {
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2

	box := core.NewRect(boxX, y, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)

	dst.DrawText(boxX+(boxW-titleW)/2, y+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-subtitleW)/2, y+3, subtitle, core.ColorDefault)
}
