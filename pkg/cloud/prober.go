package cloud

import "math"

const (
	fullTurn = 2 * math.Pi

	// angleEpsilon absorbs floating drift when the swept angle reaches a full turn.
	angleEpsilon = 1e-9

	// axisEpsilon snaps near-zero direction components, such as cos(3pi/2),
	// to exactly zero so axis rays stay on their pixel column or row.
	axisEpsilon = 1e-12
)

// prober is the search cursor. It emits directions on a spiral schedule: the
// step for cycle k is pi/2^k, so cycle 1 probes the four axis directions and
// every later revolution interleaves rays between the previous ones. The step
// stops shrinking at maxCycles.
type prober struct {
	angle     float64
	cycle     int
	maxCycles int
}

func newProber(maxCycles int) prober {
	return prober{cycle: 1, maxCycles: maxCycles}
}

// step returns the angular increment for the current cycle.
func (p *prober) step() float64 {
	return math.Pi / float64(uint64(1)<<min(p.cycle, p.maxCycles))
}

// next returns the unit direction for the current angle and advances the cursor.
func (p *prober) next() PointF {
	dir := PointF{X: snapAxis(math.Cos(p.angle)), Y: snapAxis(math.Sin(p.angle))}
	p.angle += p.step()
	if p.angle >= fullTurn-angleEpsilon {
		p.angle = 0
		p.cycle++
	}
	return dir
}

func snapAxis(v float64) float64 {
	if math.Abs(v) < axisEpsilon {
		return 0
	}
	return v
}

// perRevolution returns how many directions one revolution of cycle k yields.
func perRevolution(cycle int) int {
	return 1 << (cycle + 1)
}

// defaultMaxProbes is the number of directions needed to go from the coarsest
// cycle through every refinement and then sweep one full finest revolution.
// After that every reachable direction has been tried against an unchanged
// layout, so further probing cannot succeed.
func defaultMaxProbes(maxCycles int) int {
	total := 0
	for k := 1; k <= maxCycles; k++ {
		total += perRevolution(k)
	}
	return total + perRevolution(maxCycles)
}
