package tetris

import "testing"

func TestSpawnPlacementOnEmptyGrid(t *testing.T) {
	// Every shape fits at the top-center spawn of an empty grid
	g := NewGrid(10, 20)
	spawnX := (g.Width() - 4) / 2

	for s := Shape(0); s < NumShapes; s++ {
		p := NewPiece(s, spawnX, 0)
		if !CanPlace(g, p) {
			t.Errorf("%v should be placeable at spawn (%d,0)", s, spawnX)
		}
	}
}

func TestMoveBlockedByWalls(t *testing.T) {
	g := NewGrid(10, 20)
	p := NewPiece(ShapeO, 0, 0) // O occupies columns 1-2 of its box

	// Walk left until the wall stops us
	for {
		moved, ok := TryMove(g, p, -1, 0)
		if !ok {
			break
		}
		p = moved
	}
	if p.X != -1 {
		t.Errorf("O piece should rest at anchor x=-1 against the left wall, got %d", p.X)
	}

	// A further left move must not change the piece
	same, ok := TryMove(g, p, -1, 0)
	if ok || same != p {
		t.Error("blocked move must return the original piece unchanged")
	}
}

func TestMoveBlockedByBlocks(t *testing.T) {
	g := NewGrid(10, 20)
	g.LockPiece(NewPiece(ShapeO, 4, 18))

	p := NewPiece(ShapeO, 2, 18)
	if _, ok := TryMove(g, p, 1, 0); ok {
		t.Error("move into locked blocks should be rejected")
	}
	if moved, ok := TryMove(g, p, -1, 0); !ok || moved.X != 1 {
		t.Error("move away from locked blocks should succeed")
	}
}

func TestRotationBlockedLeavesPieceUnchanged(t *testing.T) {
	g := NewGrid(10, 20)

	// Vertical I against the left wall: anchor x=-1 puts its column
	// (offset dx=1 in rotation 3) at x=0. Rotating to horizontal would
	// need cells at x=-1, which is out of bounds.
	p := Piece{Shape: ShapeI, Rot: 3, X: -1, Y: 10}
	if !CanPlace(g, p) {
		t.Fatal("vertical I should fit against the wall")
	}

	rotated, ok := TryRotate(g, p, true)
	if ok {
		t.Error("rotation through the wall should be rejected")
	}
	if rotated != p {
		t.Error("rejected rotation must leave the piece unchanged")
	}
}

func TestRotationSucceedsInOpenSpace(t *testing.T) {
	g := NewGrid(10, 20)
	p := NewPiece(ShapeT, 3, 5)

	rotated, ok := TryRotate(g, p, true)
	if !ok || rotated.Rot != 1 {
		t.Errorf("open-space rotation should succeed, got rot %d ok %v", rotated.Rot, ok)
	}

	back, ok := TryRotate(g, rotated, false)
	if !ok || back != p {
		t.Error("counter-clockwise rotation should invert clockwise")
	}
}

func TestHardDropTarget(t *testing.T) {
	g := NewGrid(10, 20)

	p := NewPiece(ShapeO, 3, 0) // O's lowest cells are at dy=1
	dropped := HardDropTarget(g, p)
	if dropped.Y != 18 {
		t.Errorf("O should drop to anchor y=18 on an empty grid, got %d", dropped.Y)
	}

	// Idempotent: dropping a resting piece moves nothing
	if again := HardDropTarget(g, dropped); again != dropped {
		t.Error("hard drop of a resting piece must be a no-op")
	}

	// Drops stop on top of locked blocks
	g.LockPiece(dropped)
	second := HardDropTarget(g, p)
	if second.Y != 16 {
		t.Errorf("second O should stack at anchor y=16, got %d", second.Y)
	}
}
