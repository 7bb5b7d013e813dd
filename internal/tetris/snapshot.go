package tetris

// Snapshot captures the observable game state for determinism testing and
// replay. Equal seeds plus equal input sequences must produce equal
// snapshots at every tick.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Phase     Phase
	Score     int
	Level     int
	Lines     int
	Occupied  int // non-empty grid cells
	HasActive bool
	Shape     Shape
	Rot       int
	X         int
	Y         int
	Next      Shape
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Phase:     g.phase,
		Score:     g.score,
		Level:     g.level,
		Lines:     g.lines,
		Occupied:  g.grid.OccupiedCount(),
		HasActive: g.hasActive,
		Next:      g.bag.Peek(),
	}
	if g.hasActive {
		s.Shape = g.active.Shape
		s.Rot = g.active.Rot
		s.X = g.active.X
		s.Y = g.active.Y
	}
	return s
}
