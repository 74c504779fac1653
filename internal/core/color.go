package core

// Color is the foreground color of a screen cell. The terminal front end
// maps each value to an ANSI 256-color code.
type Color uint8

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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown

	// NumColors is the number of colors above.
	NumColors
)

// Bright returns the bright variant of a base color, used to flash a cell.
// Colors without one turn bright white.
func (c Color) Bright() Color {
	if c >= ColorRed && c <= ColorWhite {
		return c + (ColorBrightRed - ColorRed)
	}
	if c >= ColorBrightRed && c <= ColorBrightWhite {
		return c
	}
	return ColorBrightWhite
}
