package game

// Pool is an oldest-first queue of scrolling entities. Members are spawned in
// increasing x and retired in the same order, so the oldest is always the
// leftmost and the newest the rightmost; no spatial search is needed.
type Pool[T Scroller] struct {
	items   []T
	speed   float64
	spacing float64
	group   int
	spawn   func(x float64) []T
}

// NewPool builds a pool that scrolls by speed per tick and, on recycling,
// retires group members at once and asks spawn for replacements placed
// spacing to the right of the newest member.
func NewPool[T Scroller](speed, spacing float64, group int, spawn func(x float64) []T, initial ...T) *Pool[T] {
	if group < 1 {
		group = 1
	}
	return &Pool[T]{
		items:   initial,
		speed:   speed,
		spacing: spacing,
		group:   group,
		spawn:   spawn,
	}
}

// Advance moves every member left by the pool speed.
func (p *Pool[T]) Advance() {
	for _, it := range p.items {
		it.Advance(p.speed)
	}
}

// Recycle retires the oldest group once the oldest member's right edge has
// left the screen, and appends its replacement. It reports whether it did.
func (p *Pool[T]) Recycle() bool {
	if len(p.items) < p.group {
		return false
	}
	oldest := p.items[0]
	if oldest.X() >= -float64(oldest.Width()) {
		return false
	}

	x := p.items[len(p.items)-1].X() + p.spacing
	n := copy(p.items, p.items[p.group:])
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = append(p.items[:n], p.spawn(x)...)
	return true
}

func (p *Pool[T]) Len() int { return len(p.items) }

// Items returns the members oldest first. The slice must not be modified.
func (p *Pool[T]) Items() []T { return p.items }

func (p *Pool[T]) Oldest() T { return p.items[0] }

func (p *Pool[T]) Newest() T { return p.items[len(p.items)-1] }
