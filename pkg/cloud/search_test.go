package cloud

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestProberFirstCycle(t *testing.T) {
	p := newProber(DefaultMaxCycles)
	want := []PointF{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, w := range want {
		// Axis directions are exact: a ray straight down must keep x == 0
		// instead of drifting to -1e-16 and flooring into the next column.
		if got := p.next(); got != w {
			t.Errorf("direction %d = %v, want %v", i, got, w)
		}
	}
	if p.cycle != 2 || p.angle != 0 {
		t.Errorf("after one revolution cycle=%d angle=%v, want cycle 2 angle 0", p.cycle, p.angle)
	}
}

func TestProberRefines(t *testing.T) {
	p := newProber(DefaultMaxCycles)
	for k := 1; k <= DefaultMaxCycles+2; k++ {
		if p.cycle != k {
			t.Fatalf("cycle = %d, want %d", p.cycle, k)
		}
		wantStep := math.Pi / math.Pow(2, float64(min(k, DefaultMaxCycles)))
		if !approx(p.step(), wantStep) {
			t.Errorf("cycle %d step = %v, want %v", k, p.step(), wantStep)
		}
		n := perRevolution(min(k, DefaultMaxCycles))
		for range n {
			p.next()
		}
	}
}

func TestProberUnitDirections(t *testing.T) {
	p := newProber(4)
	for i := range 200 {
		d := p.next()
		if !approx(d.X*d.X+d.Y*d.Y, 1) {
			t.Fatalf("direction %d = %v is not a unit vector", i, d)
		}
	}
}

func TestDefaultMaxProbes(t *testing.T) {
	tests := []struct{ cycles, want int }{
		{1, 4 + 4},
		{2, 4 + 8 + 8},
		{6, 4 + 8 + 16 + 32 + 64 + 128 + 128},
	}
	for _, tt := range tests {
		if got := defaultMaxProbes(tt.cycles); got != tt.want {
			t.Errorf("defaultMaxProbes(%d) = %d, want %d", tt.cycles, got, tt.want)
		}
	}
}

func TestTracer(t *testing.T) {
	idx := NewScanIndex()
	idx.Insert(NewRect(-5, -5, 10, 10))
	tr := tracer{maxDistance: 128, increment: 1.0 / 128}

	step, p, ok := tr.trace(idx, PointF{}, PointF{X: 1}, 0)
	if !ok {
		t.Fatal("trace() found no free point")
	}
	if step != 5.0/128 || p != (PointF{5, 0}) {
		t.Errorf("trace() = %v, %v; want %v, {5 0}", step, p, 5.0/128)
	}
	if tr.samples != 5 {
		t.Errorf("samples = %d, want 5", tr.samples)
	}

	// Resuming past the free point continues from the requested step.
	step, p, ok = tr.trace(idx, PointF{}, PointF{X: -1}, 3.0/128)
	if !ok || step != 6.0/128 || p != (PointF{-6, 0}) {
		t.Errorf("resumed trace() = %v, %v, %v", step, p, ok)
	}
}

func TestTracerExhausted(t *testing.T) {
	idx := NewScanIndex()
	idx.Insert(NewRect(-1000, -1000, 2000, 2000))
	tr := tracer{maxDistance: 128, increment: 1.0 / 128}

	if _, _, ok := tr.trace(idx, PointF{}, PointF{Y: 1}, 0); ok {
		t.Error("trace() inside a covering rect should fail")
	}
	if tr.samples != 128 {
		t.Errorf("samples = %d, want 128", tr.samples)
	}
	if _, _, ok := tr.trace(idx, PointF{}, PointF{Y: 1}, 2); ok {
		t.Error("trace() past the end of the ray should fail")
	}
}

func TestResolve(t *testing.T) {
	s := Size{Width: 10, Height: 10}
	tests := []struct {
		name   string
		placed []Rect
		want   Rect
		corner Corner
	}{
		{
			name:   "empty",
			want:   NewRect(15, 0, 10, 10),
			corner: TopLeft,
		},
		{
			name:   "top-right",
			placed: []Rect{NewRect(20, 0, 10, 10)},
			want:   NewRect(5, 0, 10, 10),
			corner: TopRight,
		},
		{
			name:   "bottom-left",
			placed: []Rect{NewRect(20, 0, 10, 10), NewRect(0, 0, 10, 10)},
			want:   NewRect(15, -10, 10, 10),
			corner: BottomLeft,
		},
		{
			name:   "bottom-right",
			placed: []Rect{NewRect(20, -10, 10, 20), NewRect(0, 0, 10, 10)},
			want:   NewRect(5, -10, 10, 10),
			corner: BottomRight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewScanIndex()
			for _, r := range tt.placed {
				idx.Insert(r)
			}
			got, corner, ok := resolve(idx, PointF{15.7, 0.2}, s)
			if !ok {
				t.Fatal("resolve() found no fit")
			}
			if got != tt.want || corner != tt.corner {
				t.Errorf("resolve() = %v %v, want %v %v", got, corner, tt.want, tt.corner)
			}
		})
	}
}

func TestResolveBlocked(t *testing.T) {
	idx := NewScanIndex()
	for _, r := range []Rect{
		NewRect(20, -10, 10, 20),
		NewRect(0, 0, 10, 10),
		NewRect(0, -10, 10, 10),
	} {
		idx.Insert(r)
	}
	if r, _, ok := resolve(idx, PointF{15, 0}, Size{Width: 10, Height: 10}); ok {
		t.Errorf("resolve() = %v, want no fit", r)
	}
}

func TestCornerString(t *testing.T) {
	if TopLeft.String() != "top-left" || BottomRight.String() != "bottom-right" {
		t.Error("unexpected corner names")
	}
	if Corner(9).String() != "unknown" {
		t.Errorf("Corner(9).String() = %q", Corner(9).String())
	}
}
