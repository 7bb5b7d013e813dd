package tetris

// Point is a playfield coordinate. X grows rightward, Y grows downward.
type Point struct {
	X, Y int
}

// Piece is a tetromino in play: its kind, rotation state, and anchor
// position in grid coordinates. Piece is a value type; movement and
// rotation return candidates that callers validate against the grid
// before committing.
type Piece struct {
	Shape Shape
	Rot   int
	X, Y  int
}

// NewPiece creates a piece in its spawn orientation at the given anchor.
func NewPiece(s Shape, x, y int) Piece {
	return Piece{Shape: s, X: x, Y: y}
}

// Cells returns the four absolute grid cells the piece occupies.
func (p Piece) Cells() [4]Point {
	offsets := Offsets(p.Shape, p.Rot)
	var cells [4]Point
	for i, o := range offsets {
		cells[i] = Point{X: p.X + o.DX, Y: p.Y + o.DY}
	}
	return cells
}

// Translated returns a copy of the piece shifted by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// RotatedCW returns a copy rotated one step clockwise. Position unchanged.
func (p Piece) RotatedCW() Piece {
	p.Rot = (p.Rot + 1) % NumRotations
	return p
}

// RotatedCCW returns a copy rotated one step counter-clockwise.
func (p Piece) RotatedCCW() Piece {
	p.Rot = (p.Rot + NumRotations - 1) % NumRotations
	return p
}
