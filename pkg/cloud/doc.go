// Package cloud places rectangular tags around a fixed center without overlap.
//
// # Overview
//
// A [Layouter] is fed one [Size] at a time and answers with the [Rect] where
// that tag goes. The first tag is centered exactly on the cloud center; every
// later tag is placed as close to the center as a greedy search can find:
//
//	l := cloud.New(cloud.Point{X: 500, Y: 500})
//	r, err := l.Place(cloud.Size{Width: 40, Height: 20})
//
// The engine knows nothing about text, fonts or colors. Sizes come from a
// size source (see package sizes) and the placed rectangles are consumed by a
// renderer (see package sink).
//
// # Search
//
// Placement is a spiral search built from three cooperating steps:
//
//   - The prober emits unit directions from the center. It starts with a
//     quarter-turn step and halves the step after every full revolution, up to
//     [WithMaxCycles] refinements, so later tags probe between earlier rays.
//   - The tracer walks outward along a direction in [WithIncrement] steps
//     (fractions of [WithMaxDistance]) until it reaches a point that no placed
//     rectangle contains.
//   - The resolver tries that free point as the top-left, top-right,
//     bottom-left and bottom-right corner of the new tag, in that order, and
//     accepts the first rectangle that overlaps nothing.
//
// If a ray yields a free point that no corner orientation fits, tracing
// resumes past it; an exhausted ray moves on to the next direction.
//
// # Termination
//
// The search is bounded. Each call to [Layouter.Place] probes at most
// [WithMaxProbes] directions (by default every direction of every remaining
// refinement cycle plus one full revolution at the finest resolution), and
// each ray stops at [WithMaxDistance]. When the bound is hit, Place returns an
// error with code SEARCH_EXHAUSTED and leaves the layout untouched.
//
// # Spatial Queries
//
// Containment and intersection tests go through the [Index] interface.
// [NewScanIndex] checks every rectangle (the default); [NewGridIndex] buckets
// rectangles into a uniform grid for large clouds. Both answer identically,
// so the choice never changes the resulting layout.
//
// # Concurrency
//
// A Layouter is not safe for concurrent use. The search reads the layout and
// appends only after it succeeds, so interleaved calls could both search a
// stale layout. Use [NewSynchronized] when several goroutines share a cloud.
package cloud
