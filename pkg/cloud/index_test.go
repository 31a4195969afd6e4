package cloud

import (
	"math/rand/v2"
	"testing"
)

func indexes() map[string]IndexFactory {
	return map[string]IndexFactory{
		"scan":    NewScanIndex,
		"grid":    GridIndexFactory(16),
		"grid-1":  GridIndexFactory(1),
		"default": GridIndexFactory(0),
	}
}

func TestIndexQueries(t *testing.T) {
	for name, factory := range indexes() {
		t.Run(name, func(t *testing.T) {
			idx := factory()
			idx.Insert(NewRect(0, 0, 10, 10))
			idx.Insert(NewRect(-40, -40, 20, 5))

			if idx.Len() != 2 {
				t.Fatalf("Len() = %d, want 2", idx.Len())
			}

			points := []struct {
				p    PointF
				want bool
			}{
				{PointF{0, 0}, true},
				{PointF{9.99, 9.99}, true},
				{PointF{10, 5}, false},
				{PointF{-40, -36}, true},
				{PointF{-20, -36}, false},
				{PointF{-20.5, -35.5}, true},
				{PointF{100, 100}, false},
			}
			for _, tt := range points {
				if got := idx.ContainsPoint(tt.p); got != tt.want {
					t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
				}
			}

			rects := []struct {
				r    Rect
				want bool
			}{
				{NewRect(5, 5, 1, 1), true},
				{NewRect(10, 0, 5, 5), false},
				{NewRect(-20, -40, 5, 5), false},
				{NewRect(-25, -38, 100, 1), true},
				{NewRect(-100, -100, 300, 300), true},
			}
			for _, tt := range rects {
				if got := idx.Intersects(tt.r); got != tt.want {
					t.Errorf("Intersects(%v) = %v, want %v", tt.r, got, tt.want)
				}
			}
		})
	}
}

// TestIndexAgreement checks that the grid index answers every query exactly
// like the linear scan.
func TestIndexAgreement(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7^0xdeadbeef))
	scan, grid := NewScanIndex(), NewGridIndex(13)
	for range 60 {
		r := NewRect(rng.IntN(400)-200, rng.IntN(400)-200, rng.IntN(40)+1, rng.IntN(40)+1)
		scan.Insert(r)
		grid.Insert(r)
	}
	for range 2000 {
		p := PointF{X: rng.Float64()*500 - 250, Y: rng.Float64()*500 - 250}
		if a, b := scan.ContainsPoint(p), grid.ContainsPoint(p); a != b {
			t.Fatalf("ContainsPoint(%v): scan=%v grid=%v", p, a, b)
		}
		r := NewRect(int(p.X), int(p.Y), rng.IntN(30)+1, rng.IntN(30)+1)
		if a, b := scan.Intersects(r), grid.Intersects(r); a != b {
			t.Fatalf("Intersects(%v): scan=%v grid=%v", r, a, b)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 8, 0},
		{7, 8, 0},
		{8, 8, 1},
		{-1, 8, -1},
		{-8, 8, -1},
		{-9, 8, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestGridIndexLargeRects mixes rectangles far larger than a cell with small
// ones and checks the grid still agrees with the linear scan.
func TestGridIndexLargeRects(t *testing.T) {
	scan, grid := NewScanIndex(), NewGridIndex(1)
	for _, r := range []Rect{
		NewRect(-1_000_000, -1_000_000, 2_000_000, 10),
		NewRect(0, 50, 3, 3),
		NewRect(-500, 100, 1000, 1000),
	} {
		scan.Insert(r)
		grid.Insert(r)
	}

	points := []PointF{{0, -999_995}, {1_500_000, -999_995}, {1, 51}, {-499.5, 1099.5}, {0, 0}}
	for _, p := range points {
		if a, b := scan.ContainsPoint(p), grid.ContainsPoint(p); a != b {
			t.Errorf("ContainsPoint(%v): scan=%v grid=%v", p, a, b)
		}
	}
	rects := []Rect{
		NewRect(2, 52, 1, 1),
		NewRect(10, 0, 5, 5),
		NewRect(-2_000_000_000, -2_000_000_000, 4_000_000_000, 4_000_000_000),
		NewRect(999_999, -999_991, 5, 5),
		NewRect(-1000, 90, 500, 5),
	}
	for _, r := range rects {
		if a, b := scan.Intersects(r), grid.Intersects(r); a != b {
			t.Errorf("Intersects(%v): scan=%v grid=%v", r, a, b)
		}
	}
}
