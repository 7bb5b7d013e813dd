package tetris

import "testing"

// fillRow occupies every cell of row y except the listed columns.
func fillRow(g *Grid, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < g.Width(); x++ {
		if skip[x] {
			continue
		}
		g.cells[y*g.w+x] = Cell{State: CellOccupied, Color: 1}
	}
}

func TestLockPiece(t *testing.T) {
	g := NewGrid(10, 20)
	p := NewPiece(ShapeO, 3, 18) // rests on the floor

	if !CanPlace(g, p) {
		t.Fatal("O piece should be placeable on an empty grid")
	}
	g.LockPiece(p)

	if got := g.OccupiedCount(); got != 4 {
		t.Errorf("expected 4 occupied cells after lock, got %d", got)
	}
	for _, c := range p.Cells() {
		if g.At(c.X, c.Y).State != CellOccupied {
			t.Errorf("cell (%d,%d) should be occupied", c.X, c.Y)
		}
		if g.At(c.X, c.Y).Color != ShapeO.Color() {
			t.Errorf("cell (%d,%d) should carry the piece color", c.X, c.Y)
		}
	}
}

func TestLockIntoOccupiedCellPanics(t *testing.T) {
	g := NewGrid(10, 20)
	p := NewPiece(ShapeO, 3, 18)
	g.LockPiece(p)

	defer func() {
		if recover() == nil {
			t.Error("locking into occupied cells should panic")
		}
	}()
	g.LockPiece(p)
}

func TestFullRows(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19)
	fillRow(g, 17)
	fillRow(g, 15, 4) // gap at x=4, not full

	rows := g.FullRows()
	if len(rows) != 2 || rows[0] != 17 || rows[1] != 19 {
		t.Errorf("expected full rows [17 19], got %v", rows)
	}
}

func TestClearFullRowsShiftsStackDown(t *testing.T) {
	g := NewGrid(10, 20)

	// A marker block above two full rows with a partial row between them
	g.cells[16*g.w+2] = Cell{State: CellOccupied, Color: 3}
	fillRow(g, 17)
	fillRow(g, 18, 0) // partial, survives
	fillRow(g, 19)

	cleared := g.ClearFullRows()
	if cleared != 2 {
		t.Fatalf("expected 2 cleared rows, got %d", cleared)
	}

	// Partial row 18 shifted down by one (only row 19 was below it);
	// the marker shifted down by two.
	if g.At(1, 19).State != CellOccupied || g.At(0, 19).State != CellEmpty {
		t.Error("partial row should land on the floor with its gap intact")
	}
	if g.At(2, 18).State != CellOccupied || g.At(2, 18).Color != 3 {
		t.Error("marker block should shift down by the number of cleared rows below it")
	}
	if g.At(2, 16).State != CellEmpty {
		t.Error("marker's old position should be empty")
	}

	// Fresh empty rows at the top
	for x := 0; x < g.Width(); x++ {
		if g.At(x, 0).State != CellEmpty || g.At(x, 1).State != CellEmpty {
			t.Fatalf("top rows should be empty after clear")
		}
	}
}

func TestClearFullRowsNothingToClear(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19, 5)
	before := g.OccupiedCount()

	if cleared := g.ClearFullRows(); cleared != 0 {
		t.Errorf("expected 0 cleared rows, got %d", cleared)
	}
	if g.OccupiedCount() != before {
		t.Error("grid should be unchanged when no rows are full")
	}
}

func TestMarkPendingBlocksPlacement(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19)
	g.MarkPending([]int{19})

	if g.At(0, 19).State != CellPending {
		t.Error("full row cells should be pending")
	}
	if g.IsCellFree(0, 19) {
		t.Error("pending cells must block placement")
	}
	if cleared := g.ClearFullRows(); cleared != 1 {
		t.Errorf("pending row should still clear, got %d", cleared)
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19)
	g.Reset()
	if g.OccupiedCount() != 0 {
		t.Error("reset should empty the grid")
	}
}
