package tetris

// Collision and placement checks. Pure functions: nothing here mutates the
// grid, and rejected candidates leave the caller's piece untouched.

// CanPlace reports whether every cell of the piece lands on a free grid
// cell.
func CanPlace(g *Grid, p Piece) bool {
	for _, c := range p.Cells() {
		if !g.IsCellFree(c.X, c.Y) {
			return false
		}
	}
	return true
}

// TryMove returns the piece translated by (dx, dy) if the translated
// position is placeable. The boolean reports success; on failure the
// original piece is returned unchanged.
func TryMove(g *Grid, p Piece, dx, dy int) (Piece, bool) {
	moved := p.Translated(dx, dy)
	if !CanPlace(g, moved) {
		return p, false
	}
	return moved, true
}

// TryRotate returns the piece rotated one step in the given direction if
// the rotated position is placeable. No wall-kick offsets are attempted:
// a blocked rotation is simply rejected.
func TryRotate(g *Grid, p Piece, clockwise bool) (Piece, bool) {
	var rotated Piece
	if clockwise {
		rotated = p.RotatedCW()
	} else {
		rotated = p.RotatedCCW()
	}
	if !CanPlace(g, rotated) {
		return p, false
	}
	return rotated, true
}

// HardDropTarget returns the piece at the lowest placeable position in its
// current column and rotation. Terminates because grid height is finite;
// idempotent because a piece already resting on support cannot move down.
func HardDropTarget(g *Grid, p Piece) Piece {
	for {
		dropped, ok := TryMove(g, p, 0, 1)
		if !ok {
			return p
		}
		p = dropped
	}
}
