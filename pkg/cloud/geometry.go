package cloud

import (
	"fmt"
	"math"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Point describes an integer location in 2D space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point offset by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Float converts the point to floating coordinates.
func (p Point) Float() PointF { return PointF{X: float64(p.X), Y: float64(p.Y)} }

// String returns a string representation of the point.
func (p Point) String() string { return fmt.Sprintf("<%d, %d>", p.X, p.Y) }

// PointF is a floating point location, used for directions and ray samples.
type PointF struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Floor truncates both coordinates toward negative infinity.
func (p PointF) Floor() Point {
	return Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Scale multiplies both coordinates by k.
func (p PointF) Scale(k float64) PointF { return PointF{X: p.X * k, Y: p.Y * k} }

// Add returns the point offset by q.
func (p PointF) Add(q PointF) PointF { return PointF{X: p.X + q.X, Y: p.Y + q.Y} }

// DistSq returns the squared euclidean distance between p and q.
func (p PointF) DistSq(q PointF) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Size describes the dimensions of a tag.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Validate reports an INVALID_SIZE error unless both dimensions are positive.
func (s Size) Validate() error {
	return errors.ValidateDimensions(s.Width, s.Height)
}

// Area returns width * height.
func (s Size) Area() int { return s.Width * s.Height }

// String returns the size formatted as WxH.
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Rect is a placed tag: its top-left corner and its size. Rects are values and
// are never modified once placed.
type Rect struct {
	Point
	Size
}

// NewRect initializes a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{Point: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the x coordinate of the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the integer center. For odd dimensions the coordinate is
// truncated, which makes Center the exact inverse of centering a size on a
// point with integer division.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Midpoint returns the exact geometric center of the rectangle.
func (r Rect) Midpoint() PointF {
	return PointF{X: float64(r.X) + float64(r.Width)/2, Y: float64(r.Y) + float64(r.Height)/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// ContainsPoint reports whether p lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not.
func (r Rect) ContainsPoint(p PointF) bool {
	return float64(r.X) <= p.X && p.X < float64(r.Right()) &&
		float64(r.Y) <= p.Y && p.Y < float64(r.Bottom())
}

// Intersects reports whether the interiors of r and o overlap. Rectangles that
// only share an edge or a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return o.X < r.Right() && r.X < o.Right() &&
		o.Y < r.Bottom() && r.Y < o.Bottom()
}

// Union returns the smallest rectangle containing both r and o. An empty
// operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2, y2 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// String returns a string describing the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("<%d, %d, %d, %d>", r.X, r.Y, r.Width, r.Height)
}

// centered returns a rectangle of the given size whose integer center is c.
func centered(c Point, s Size) Rect {
	return NewRect(c.X-s.Width/2, c.Y-s.Height/2, s.Width, s.Height)
}
