package core

import "strings"

// Color is one block color from the fixed superset.
type Color uint8

const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorPink
	ColorCount // Sentinel value for iteration
)

// MinColors and MaxColors bound the palette size of a session.
const (
	MinColors = 2
	MaxColors = int(ColorCount)
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorOrange:
		return 'O'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	case ColorPink:
		return 'K'
	default:
		return '?'
	}
}

// Hex returns the RGB value the color is drawn with.
func (c Color) Hex() uint32 {
	switch c {
	case ColorRed:
		return 0xFF6F61
	case ColorOrange:
		return 0xFFB347
	case ColorYellow:
		return 0xFFD700
	case ColorGreen:
		return 0x6DD47E
	case ColorBlue:
		return 0x6EC1E4
	case ColorPurple:
		return 0x9B51E0
	case ColorPink:
		return 0xF3A5B1
	default:
		return 0xFFFFFF
	}
}

// Valid reports whether c is part of the superset.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "orange", "o":
		return ColorOrange, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	case "pink", "k":
		return ColorPink, true
	default:
		return ColorRed, false
	}
}

// AllColors returns the full color superset in its canonical order.
func AllColors() []Color {
	return []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorPink}
}

// Palette is the ordered set of colors active in one session.
// Palette index 1 is the first entry.
type Palette []Color

// At returns the color for a 1-based palette index.
func (p Palette) At(index int) (Color, bool) {
	if index < 1 || index > len(p) {
		return ColorRed, false
	}
	return p[index-1], true
}

// IndexOf returns the 1-based palette index of c, or 0 if c is not in the palette.
func (p Palette) IndexOf(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i + 1
		}
	}
	return 0
}
