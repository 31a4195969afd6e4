package cloud

import "math"

// tracer walks rays outward from the cloud center. Ray positions are given as
// a step in (0, 1], a fraction of maxDistance.
type tracer struct {
	maxDistance float64
	increment   float64
	samples     int
}

// sampleCount returns the number of samples on a full ray.
func (t *tracer) sampleCount() int {
	return int(math.Floor(1/t.increment + angleEpsilon))
}

// trace returns the first sample along dir, at or beyond start, that no
// rectangle in idx contains. A zero start begins at the first increment. Steps
// are derived from an integer sample index so repeated tracing along the same
// ray never accumulates floating error. ok is false when the ray reaches
// maxDistance without finding free ground.
func (t *tracer) trace(idx Index, origin PointF, dir PointF, start float64) (step float64, p PointF, ok bool) {
	i := 1
	if start > 0 {
		i = max(1, int(math.Ceil(start/t.increment-angleEpsilon)))
	}
	last := t.sampleCount()
	for ; i <= last; i++ {
		step = float64(i) * t.increment
		p = origin.Add(dir.Scale(t.maxDistance * step))
		t.samples++
		if !idx.ContainsPoint(p) {
			return step, p, true
		}
	}
	return 0, PointF{}, false
}
