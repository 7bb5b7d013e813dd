package tetris

import "math/rand"

// Bag produces the spawn order of shapes using the shuffled 7-bag policy:
// a full permutation of all seven shapes is drawn, consumed one shape per
// spawn, then reshuffled. No shape can repeat more than twice in any
// window of seven spawns, and each bag cycle contains every shape exactly
// once. One shape of lookahead is kept for the "next" preview.
type Bag struct {
	rng      *rand.Rand
	queue    []Shape
	upcoming Shape
}

// NewBag creates a bag spawner backed by the given RNG.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{
		rng:   rng,
		queue: make([]Shape, 0, NumShapes),
	}
	b.upcoming = b.draw()
	return b
}

// Next returns the shape to spawn and advances the preview.
func (b *Bag) Next() Shape {
	s := b.upcoming
	b.upcoming = b.draw()
	return s
}

// Peek returns the upcoming shape without consuming it.
func (b *Bag) Peek() Shape {
	return b.upcoming
}

// draw pops a shape from the current bag, refilling and reshuffling when
// the bag is exhausted.
func (b *Bag) draw() Shape {
	if len(b.queue) == 0 {
		b.refill()
	}
	s := b.queue[len(b.queue)-1]
	b.queue = b.queue[:len(b.queue)-1]
	return s
}

// refill fills the queue with a fresh shuffled permutation of all shapes.
func (b *Bag) refill() {
	b.queue = b.queue[:0]
	for s := Shape(0); s < NumShapes; s++ {
		b.queue = append(b.queue, s)
	}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
