package cloud

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Layouter holds the state of one tag cloud: its center, the rectangles placed
// so far, and the search cursor that carries over from one placement to the
// next.
type Layouter struct {
	center Point
	rects  []Rect
	bounds Rect
	index  Index

	probe  prober
	ray    tracer
	probes int
	logger *log.Logger

	stats Stats
}

// Stats counts the work done by a Layouter over its lifetime.
type Stats struct {
	Placed  int // successful placements
	Failed  int // placements rejected or exhausted
	Probes  int // directions tried
	Samples int // ray positions tested for containment
}

// New creates an empty cloud around center.
func New(center Point, opts ...Option) *Layouter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	probes := cfg.maxProbes
	if probes == 0 {
		probes = defaultMaxProbes(cfg.maxCycles)
	}
	return &Layouter{
		center: center,
		index:  cfg.newIndex(),
		probe:  newProber(cfg.maxCycles),
		ray:    tracer{maxDistance: cfg.maxDistance, increment: cfg.increment},
		probes: probes,
		logger: cfg.logger,
	}
}

// Center returns the anchor used for the first tag and as the ray origin.
func (l *Layouter) Center() Point { return l.center }

// SetCenter moves the anchor for future placements. Tags already placed stay
// where they are.
func (l *Layouter) SetCenter(c Point) { l.center = c }

// Len returns the number of placed tags.
func (l *Layouter) Len() int { return len(l.rects) }

// Rects returns a copy of the placed rectangles in placement order.
func (l *Layouter) Rects() []Rect {
	out := make([]Rect, len(l.rects))
	copy(out, l.rects)
	return out
}

// Bounds returns the smallest rectangle containing every placed tag, or the
// zero Rect for an empty cloud.
func (l *Layouter) Bounds() Rect { return l.bounds }

// Stats returns the accumulated search counters.
func (l *Layouter) Stats() Stats {
	s := l.stats
	s.Samples = l.ray.samples
	return s
}

// Place finds a position for a tag of the given size, records it and returns
// it. The first tag is centered on the cloud center; later tags go where the
// spiral search finds room. Invalid sizes fail with INVALID_SIZE and an
// unsuccessful search fails with SEARCH_EXHAUSTED; in both cases the cloud is
// unchanged.
func (l *Layouter) Place(size Size) (Rect, error) {
	return l.PlaceContext(context.Background(), size)
}

// PlaceContext is Place with cancellation. ctx is checked before every probed
// direction; once it is done the search stops with a TIMEOUT error wrapping
// ctx.Err() and the cloud is unchanged.
func (l *Layouter) PlaceContext(ctx context.Context, size Size) (Rect, error) {
	if err := size.Validate(); err != nil {
		l.stats.Failed++
		return Rect{}, err
	}

	if len(l.rects) == 0 {
		r := centered(l.center, size)
		l.add(r)
		l.logger.Debug("placed first tag", "rect", r.String())
		return r, nil
	}

	r, err := l.search(ctx, size)
	if err != nil {
		l.stats.Failed++
		return Rect{}, err
	}
	l.add(r)
	return r, nil
}

// PlaceAll places sizes in order and stops at the first error, returning the
// rectangles placed before it.
func (l *Layouter) PlaceAll(sizes []Size) ([]Rect, error) {
	out := make([]Rect, 0, len(sizes))
	for i, s := range sizes {
		r, err := l.Place(s)
		if err != nil {
			return out, errors.Wrap(errors.GetCode(err), err, "place tag %d (%s)", i, s)
		}
		out = append(out, r)
	}
	return out, nil
}

func (l *Layouter) add(r Rect) {
	l.rects = append(l.rects, r)
	l.index.Insert(r)
	l.bounds = l.bounds.Union(r)
	l.stats.Placed++
}

// search runs the bounded spiral search for a free rectangle of the given size.
func (l *Layouter) search(ctx context.Context, size Size) (Rect, error) {
	origin := l.center.Float()
	for n := 0; n < l.probes; n++ {
		if err := ctx.Err(); err != nil {
			return Rect{}, errors.Wrap(errors.ErrCodeTimeout, err, "place %s: stopped after %d directions", size, n)
		}
		dir := l.probe.next()
		l.stats.Probes++
		step := 0.0
		for {
			s, free, ok := l.ray.trace(l.index, origin, dir, step)
			if !ok {
				break
			}
			if r, corner, ok := resolve(l.index, free, size); ok {
				l.logger.Debug("placed tag",
					"rect", r.String(),
					"corner", corner.String(),
					"probes", n+1,
					"step", s)
				return r, nil
			}
			step = s + l.ray.increment
		}
	}
	return Rect{}, errors.New(errors.ErrCodeSearchExhausted,
		"no room for %s within %.0fpx of %s after %d directions",
		size, l.ray.maxDistance, l.center, l.probes)
}
