package tetris

import (
	"testing"

	"github.com/ttrys/ttrys/internal/core"
)

func TestRotationTablesWellFormed(t *testing.T) {
	for s := Shape(0); s < NumShapes; s++ {
		for rot := 0; rot < NumRotations; rot++ {
			offsets := Offsets(s, rot)

			seen := map[Offset]bool{}
			for _, o := range offsets {
				if o.DX < 0 || o.DX > 3 || o.DY < 0 || o.DY > 3 {
					t.Errorf("%v rot %d: offset (%d,%d) outside 4x4 box", s, rot, o.DX, o.DY)
				}
				if seen[o] {
					t.Errorf("%v rot %d: duplicate offset (%d,%d)", s, rot, o.DX, o.DY)
				}
				seen[o] = true
			}
			if len(seen) != 4 {
				t.Errorf("%v rot %d: expected 4 distinct cells, got %d", s, rot, len(seen))
			}
		}
	}
}

func TestRotationNormalization(t *testing.T) {
	// Out-of-range rotation indices wrap
	if Offsets(ShapeT, 4) != Offsets(ShapeT, 0) {
		t.Error("rotation 4 should equal rotation 0")
	}
	if Offsets(ShapeT, -1) != Offsets(ShapeT, 3) {
		t.Error("rotation -1 should equal rotation 3")
	}
}

func TestOShapeRotationInvariant(t *testing.T) {
	base := Offsets(ShapeO, 0)
	for rot := 1; rot < NumRotations; rot++ {
		if Offsets(ShapeO, rot) != base {
			t.Errorf("O shape should be identical in all rotations, rot %d differs", rot)
		}
	}
}

func TestFullRotationCycle(t *testing.T) {
	// Four CW rotations return every shape to its spawn orientation
	for s := Shape(0); s < NumShapes; s++ {
		p := NewPiece(s, 3, 0)
		rotated := p.RotatedCW().RotatedCW().RotatedCW().RotatedCW()
		if rotated != p {
			t.Errorf("%v: four CW rotations should be identity, got rot %d", s, rotated.Rot)
		}
	}
}

func TestShapeColors(t *testing.T) {
	seen := map[string]bool{}
	for s := Shape(0); s < NumShapes; s++ {
		c := s.Color()
		if c == core.ColorDefault {
			t.Errorf("%v has no color assigned", s)
		}
		name := s.String()
		if name == "?" || seen[name] {
			t.Errorf("%v has invalid or duplicate name %q", s, name)
		}
		seen[name] = true
	}
}
