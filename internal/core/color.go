package core

// Color represents a cell color on the screen.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// UI colors.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDarkGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
)

// Block colors.
const (
	ColorCoral Color = iota + 32
	ColorOrange
	ColorGold
	ColorMint
	ColorSky
	ColorViolet
	ColorPink
)

// ANSI returns the 256-color palette code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorWhite:
		return "7"
	case ColorBrightWhite:
		return "15"
	case ColorGray:
		return "245"
	case ColorDarkGray:
		return "238"
	case ColorRed:
		return "9"
	case ColorGreen:
		return "10"
	case ColorYellow:
		return "11"
	case ColorCyan:
		return "14"
	case ColorCoral:
		return "203"
	case ColorOrange:
		return "215"
	case ColorGold:
		return "220"
	case ColorMint:
		return "78"
	case ColorSky:
		return "74"
	case ColorViolet:
		return "98"
	case ColorPink:
		return "218"
	default:
		return ""
	}
}
