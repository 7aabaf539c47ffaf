package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI codes in the platform layer.
type Color uint8

// Colors used by the scene.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
	ColorDim
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}
