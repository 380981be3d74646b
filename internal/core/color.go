package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Base palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkBlue
)

// Scene colors.
const (
	ColorSea      = ColorDarkBlue
	ColorIce      = ColorBrightCyan
	ColorBoat     = ColorBrightWhite
	ColorSurvivor = ColorOrange
	ColorHarbor   = ColorYellow
	ColorBeam     = ColorBrightYellow
	ColorDanger   = ColorBrightRed
)
