package core

// Color represents a foreground color for a screen cell.
// The zero value doubles as "empty" wherever a Color is stored as a cell tag,
// so game code can treat any nonzero Color as occupied.
type Color uint8

// Predefined colors for game elements.
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

	colorCount
)

// Valid reports whether c is one of the declared colors.
func (c Color) Valid() bool {
	return c < colorCount
}
