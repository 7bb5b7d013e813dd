package tetris

import "github.com/ttrys/ttrys/internal/core"

// Shape identifies one of the seven tetromino kinds.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// NumShapes is the number of tetromino kinds.
const NumShapes = 7

// NumRotations is the number of rotation states per shape.
const NumRotations = 4

// Offset is a cell position relative to a piece's anchor.
// X grows rightward, Y grows downward.
type Offset struct {
	DX, DY int
}

// rotationTable maps (shape, rotation) to the four cells the piece occupies,
// relative to its anchor at the top-left of a 4x4 bounding box. Rotation 0
// is the spawn orientation; rotations are listed clockwise. All offsets are
// non-negative, so a piece anchored at y >= 0 never addresses a row above
// the playfield.
var rotationTable = [NumShapes][NumRotations][4]Offset{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	ShapeO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
}

// shapeColors maps each shape to its classic color.
var shapeColors = [NumShapes]core.Color{
	ShapeI: core.ColorCyan,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
	ShapeO: core.ColorYellow,
	ShapeS: core.ColorGreen,
	ShapeT: core.ColorMagenta,
	ShapeZ: core.ColorRed,
}

// Offsets returns the occupied cell offsets for a shape at the given
// rotation. The rotation index is normalized mod 4.
func Offsets(s Shape, rot int) [4]Offset {
	rot = ((rot % NumRotations) + NumRotations) % NumRotations
	return rotationTable[s][rot]
}

// Color returns the shape's display color.
func (s Shape) Color() core.Color {
	if s < 0 || s >= NumShapes {
		return core.ColorDefault
	}
	return shapeColors[s]
}

// String returns the one-letter name of the shape.
func (s Shape) String() string {
	const letters = "IJLOSTZ"
	if s < 0 || s >= NumShapes {
		return "?"
	}
	return string(letters[s])
}
