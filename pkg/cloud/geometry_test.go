package cloud

import (
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

func TestSizeValidate(t *testing.T) {
	tests := []struct {
		size    Size
		wantErr bool
	}{
		{Size{1, 1}, false},
		{Size{200, 40}, false},
		{Size{0, 10}, true},
		{Size{10, 0}, true},
		{Size{-1, 10}, true},
		{Size{10, -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			err := tt.size.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidSize) {
				t.Errorf("code = %s, want INVALID_SIZE", errors.GetCode(err))
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(-5, 3, 10, 4)
	if r.Left() != -5 || r.Top() != 3 || r.Right() != 5 || r.Bottom() != 7 {
		t.Errorf("edges = %d %d %d %d", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if got := r.Center(); got != (Point{0, 5}) {
		t.Errorf("Center() = %v, want <0, 5>", got)
	}
	if got := r.Midpoint(); got != (PointF{0, 5}) {
		t.Errorf("Midpoint() = %v", got)
	}
	if got := r.String(); got != "<-5, 3, 10, 4>" {
		t.Errorf("String() = %q", got)
	}
}

func TestRectCenterOddSize(t *testing.T) {
	r := NewRect(0, 0, 3, 5)
	if got := r.Center(); got != (Point{1, 2}) {
		t.Errorf("Center() = %v, want <1, 2>", got)
	}
	if got := r.Midpoint(); got != (PointF{1.5, 2.5}) {
		t.Errorf("Midpoint() = %v, want {1.5 2.5}", got)
	}
}

func TestCenteredRoundTrip(t *testing.T) {
	centers := []Point{{0, 0}, {100, -40}, {-7, 13}}
	sizes := []Size{{1, 1}, {2, 2}, {3, 7}, {200, 41}}
	for _, c := range centers {
		for _, s := range sizes {
			r := centered(c, s)
			if r.Size != s {
				t.Errorf("centered(%v, %v) size = %v", c, s, r.Size)
			}
			if r.Center() != c {
				t.Errorf("centered(%v, %v).Center() = %v", c, s, r.Center())
			}
		}
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		p    PointF
		want bool
	}{
		{"origin", PointF{0, 0}, true},
		{"inside", PointF{5.5, 9.99}, true},
		{"right edge", PointF{10, 5}, false},
		{"bottom edge", PointF{5, 10}, false},
		{"left of", PointF{-0.01, 5}, false},
		{"above", PointF{5, -0.01}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"same", NewRect(0, 0, 10, 10), true},
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 2, 2), true},
		{"covers", NewRect(-5, -5, 30, 30), true},
		{"shared right edge", NewRect(10, 0, 10, 10), false},
		{"shared bottom edge", NewRect(0, 10, 10, 10), false},
		{"shared corner", NewRect(10, 10, 5, 5), false},
		{"shared left edge", NewRect(-10, 0, 10, 10), false},
		{"apart", NewRect(50, 50, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.o, got, tt.want)
			}
			if got := tt.o.Intersects(r); got != tt.want {
				t.Errorf("symmetric Intersects(%v) = %v, want %v", tt.o, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(-5, 20, 5, 5)
	if got := a.Union(b); got != NewRect(-5, 0, 15, 25) {
		t.Errorf("Union() = %v", got)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty.Union(b) = %v, want %v", got, b)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("a.Union(empty) = %v, want %v", got, a)
	}
}

func TestPointFFloor(t *testing.T) {
	tests := []struct {
		p    PointF
		want Point
	}{
		{PointF{1.9, 2.1}, Point{1, 2}},
		{PointF{-0.5, -1.5}, Point{-1, -2}},
		{PointF{3, -3}, Point{3, -3}},
	}
	for _, tt := range tests {
		if got := tt.p.Floor(); got != tt.want {
			t.Errorf("%v.Floor() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
