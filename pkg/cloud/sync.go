package cloud

import (
	"context"
	"sync"
)

// Synchronized wraps a Layouter with a mutex so it can be shared between
// goroutines. Placement order, and therefore the layout, follows the order in
// which callers acquire the lock.
type Synchronized struct {
	mu sync.Mutex
	l  *Layouter
}

// NewSynchronized creates a goroutine-safe cloud around center.
func NewSynchronized(center Point, opts ...Option) *Synchronized {
	return &Synchronized{l: New(center, opts...)}
}

// Place is the locked form of [Layouter.Place].
func (s *Synchronized) Place(size Size) (Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Place(size)
}

// PlaceContext is the locked form of [Layouter.PlaceContext].
func (s *Synchronized) PlaceContext(ctx context.Context, size Size) (Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.PlaceContext(ctx, size)
}

// PlaceAll places every size while holding the lock, so the batch is laid out
// contiguously.
func (s *Synchronized) PlaceAll(sizes []Size) ([]Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.PlaceAll(sizes)
}

func (s *Synchronized) Rects() []Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Rects()
}

func (s *Synchronized) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Len()
}

func (s *Synchronized) Center() Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Center()
}

func (s *Synchronized) SetCenter(c Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.SetCenter(c)
}

func (s *Synchronized) Bounds() Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Bounds()
}

func (s *Synchronized) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Stats()
}
