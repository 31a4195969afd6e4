package cloud

// Corner names the corner of a new tag that sits on the free point.
type Corner int

// Corners in the order the resolver tries them.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

// String returns the corner name.
func (c Corner) String() string {
	if c < TopLeft || c > BottomRight {
		return "unknown"
	}
	return cornerNames[c]
}

// anchor returns the rectangle of size s that has corner c at p.
func (c Corner) anchor(p Point, s Size) Rect {
	switch c {
	case TopRight:
		return NewRect(p.X-s.Width, p.Y, s.Width, s.Height)
	case BottomLeft:
		return NewRect(p.X, p.Y-s.Height, s.Width, s.Height)
	case BottomRight:
		return NewRect(p.X-s.Width, p.Y-s.Height, s.Width, s.Height)
	default:
		return NewRect(p.X, p.Y, s.Width, s.Height)
	}
}

// candidates returns the four rectangles of size s that use p as a corner, in
// resolution order.
func candidates(p Point, s Size) [4]Rect {
	return [4]Rect{
		TopLeft.anchor(p, s),
		TopRight.anchor(p, s),
		BottomLeft.anchor(p, s),
		BottomRight.anchor(p, s),
	}
}

// resolve snaps the free point to the pixel grid and returns the first corner
// orientation whose rectangle overlaps nothing in idx. The fixed order makes
// identical inputs produce identical layouts.
func resolve(idx Index, free PointF, s Size) (Rect, Corner, bool) {
	for i, c := range candidates(free.Floor(), s) {
		if !idx.Intersects(c) {
			return c, Corner(i), true
		}
	}
	return Rect{}, 0, false
}
