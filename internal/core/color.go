package core

// Color is the foreground color of a screen cell.
type Color uint8

// Cell colors, one per kind of thing on screen.
const (
	ColorDefault      Color = iota // Text in the terminal's own color
	ColorRed                       // Banners and messages
	ColorYellow                    // Sad hotdog
	ColorWhite                     // Platforms
	ColorBrightRed                 // Enemy
	ColorBrightYellow              // Happy hotdog
	ColorOrange                    // Bullets, ammo, faces
	ColorGray                      // Ground
)

// ansiCodes holds the ANSI 256-color code of each color.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorYellow:       "3",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorOrange:       "208",
	ColorGray:         "240",
}

// ANSI returns the ANSI 256-color code for c, or "" for the default color.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
