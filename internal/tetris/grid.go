package tetris

import (
	"fmt"

	"github.com/ttrys/ttrys/internal/core"
)

// CellState describes what occupies a grid cell.
type CellState uint8

const (
	// CellEmpty is a free cell.
	CellEmpty CellState = iota
	// CellOccupied is a locked block.
	CellOccupied
	// CellPending is a block in a full row awaiting removal. Pending cells
	// block placement like occupied cells; they exist only during the brief
	// line-clear flash.
	CellPending
)

// Cell is a single playfield cell: its state plus the color of the block
// that locked into it.
type Cell struct {
	State CellState
	Color core.Color
}

// Grid is the playfield: a fixed-size matrix of locked blocks.
// Row 0 is the top; y grows downward. The grid is mutated only by
// LockPiece, MarkPending, and ClearFullRows.
type Grid struct {
	w, h  int
	cells []Cell // row-major, cells[y*w+x]
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). Out-of-bounds coordinates return an
// empty cell; use InBounds or IsCellFree for placement checks.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[y*g.w+x]
}

// IsCellFree reports whether (x, y) can hold a piece cell: false if out
// of bounds or already occupied (including pending-clear blocks).
func (g *Grid) IsCellFree(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.w+x].State == CellEmpty
}

// LockPiece writes the piece's cells into the grid as occupied blocks.
// All target cells must be free: callers validate through CanPlace first,
// and a violation here is a programming defect, not a runtime condition.
func (g *Grid) LockPiece(p Piece) {
	color := p.Shape.Color()
	for _, c := range p.Cells() {
		if !g.IsCellFree(c.X, c.Y) {
			panic(fmt.Sprintf("tetris: locking %v into non-free cell (%d,%d)", p.Shape, c.X, c.Y))
		}
		g.cells[c.Y*g.w+c.X] = Cell{State: CellOccupied, Color: color}
	}
}

// FullRows returns the indices of all completely occupied rows, in
// top-to-bottom order.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < g.h; y++ {
		if g.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// rowFull reports whether every cell in row y is non-empty.
func (g *Grid) rowFull(y int) bool {
	for x := 0; x < g.w; x++ {
		if g.cells[y*g.w+x].State == CellEmpty {
			return false
		}
	}
	return true
}

// MarkPending flags every cell of the given rows as pending removal so the
// renderer can flash them before ClearFullRows runs.
func (g *Grid) MarkPending(rows []int) {
	for _, y := range rows {
		if y < 0 || y >= g.h {
			continue
		}
		for x := 0; x < g.w; x++ {
			cell := &g.cells[y*g.w+x]
			if cell.State == CellOccupied {
				cell.State = CellPending
			}
		}
	}
}

// ClearFullRows removes all full rows simultaneously. Rows above cleared
// rows shift down by the number of cleared rows below them, preserving
// relative order; fresh empty rows enter at the top. Returns the number of
// rows cleared (0-4 per lock, since one piece touches at most 4 rows).
func (g *Grid) ClearFullRows() int {
	cleared := 0
	write := g.h - 1

	for read := g.h - 1; read >= 0; read-- {
		if g.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(g.cells[write*g.w:(write+1)*g.w], g.cells[read*g.w:(read+1)*g.w])
		}
		write--
	}

	// Whatever remains above the write cursor is stale; blank it.
	for y := write; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			g.cells[y*g.w+x] = Cell{}
		}
	}

	return cleared
}

// OccupiedCount returns the number of non-empty cells. Used for stats and
// invariant checks in tests.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, c := range g.cells {
		if c.State != CellEmpty {
			count++
		}
	}
	return count
}

// Reset empties the entire grid.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}
