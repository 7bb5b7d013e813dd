package core

// Color is a color tag for a screen cell.
// The platform layer maps these to ANSI styles; core stays terminal-agnostic.
type Color uint8

// Predefined colors for game elements. The seven entries after ColorDefault
// line up with the classic tetromino palette.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorRed
	ColorWhite
	ColorGray
)
