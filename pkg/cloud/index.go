package cloud

import "math"

// Index answers the two spatial queries the search needs: is a point covered
// by any placed rectangle, and does a candidate overlap any placed rectangle.
// Implementations must give identical answers so that swapping one for another
// never changes a layout.
type Index interface {
	// Insert records a placed rectangle.
	Insert(r Rect)
	// ContainsPoint reports whether any rectangle contains p (see Rect.ContainsPoint).
	ContainsPoint(p PointF) bool
	// Intersects reports whether any rectangle overlaps the interior of r.
	Intersects(r Rect) bool
	// Len returns the number of inserted rectangles.
	Len() int
}

// IndexFactory creates an empty index. Layouters call it once at construction.
type IndexFactory func() Index

// scanIndex checks every rectangle on every query.
type scanIndex struct {
	rects []Rect
}

// NewScanIndex returns an index that scans all rectangles linearly. It is the
// default and is fast enough for clouds of a few hundred tags.
func NewScanIndex() Index {
	return &scanIndex{}
}

func (s *scanIndex) Insert(r Rect) { s.rects = append(s.rects, r) }

func (s *scanIndex) ContainsPoint(p PointF) bool {
	for _, r := range s.rects {
		if r.ContainsPoint(p) {
			return true
		}
	}
	return false
}

func (s *scanIndex) Intersects(c Rect) bool {
	for _, r := range s.rects {
		if r.Intersects(c) {
			return true
		}
	}
	return false
}

func (s *scanIndex) Len() int { return len(s.rects) }

// DefaultCellSize is the grid cell edge used when NewGridIndex gets a
// non-positive size.
const DefaultCellSize = 64

type cellKey struct{ cx, cy int }

// maxBucketCells is the largest number of cells a rectangle is bucketed into.
// Bigger rectangles go on the large list and are checked on every query, so
// the cost of a query never grows with the size of a tag.
const maxBucketCells = 256

// gridIndex buckets rectangles into square cells. A rectangle is registered in
// every cell its pixels [X, Right) x [Y, Bottom) touch, so any two rectangles
// with a common pixel share a cell.
type gridIndex struct {
	cellSize int
	cells    map[cellKey][]int
	large    []int
	rects    []Rect
}

// NewGridIndex returns an index that buckets rectangles into a uniform grid
// with the given cell edge length.
func NewGridIndex(cellSize int) Index {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &gridIndex{cellSize: cellSize, cells: make(map[cellKey][]int)}
}

// GridIndexFactory adapts NewGridIndex to an IndexFactory.
func GridIndexFactory(cellSize int) IndexFactory {
	return func() Index { return NewGridIndex(cellSize) }
}

func (g *gridIndex) Insert(r Rect) {
	if r.IsEmpty() {
		return
	}
	id := len(g.rects)
	g.rects = append(g.rects, r)
	if g.cellCount(r) > maxBucketCells {
		g.large = append(g.large, id)
		return
	}
	g.span(r, func(k cellKey) bool {
		g.cells[k] = append(g.cells[k], id)
		return true
	})
}

func (g *gridIndex) ContainsPoint(p PointF) bool {
	k := cellKey{
		cx: floorDiv(int(math.Floor(p.X)), g.cellSize),
		cy: floorDiv(int(math.Floor(p.Y)), g.cellSize),
	}
	for _, id := range g.cells[k] {
		if g.rects[id].ContainsPoint(p) {
			return true
		}
	}
	for _, id := range g.large {
		if g.rects[id].ContainsPoint(p) {
			return true
		}
	}
	return false
}

func (g *gridIndex) Intersects(c Rect) bool {
	if c.IsEmpty() {
		return false
	}
	if g.cellCount(c) > int64(len(g.rects)) {
		// Walking the cells would cost more than checking every rectangle.
		for _, r := range g.rects {
			if r.Intersects(c) {
				return true
			}
		}
		return false
	}
	for _, id := range g.large {
		if g.rects[id].Intersects(c) {
			return true
		}
	}
	hit := false
	g.span(c, func(k cellKey) bool {
		for _, id := range g.cells[k] {
			if g.rects[id].Intersects(c) {
				hit = true
				return false
			}
		}
		return true
	})
	return hit
}

func (g *gridIndex) Len() int { return len(g.rects) }

// cellCount returns how many cells r covers.
func (g *gridIndex) cellCount(r Rect) int64 {
	cols := int64(floorDiv(r.Right()-1, g.cellSize)-floorDiv(r.X, g.cellSize)) + 1
	rows := int64(floorDiv(r.Bottom()-1, g.cellSize)-floorDiv(r.Y, g.cellSize)) + 1
	return cols * rows
}

// span visits every cell covered by r until fn returns false.
func (g *gridIndex) span(r Rect, fn func(cellKey) bool) {
	x0, x1 := floorDiv(r.X, g.cellSize), floorDiv(r.Right()-1, g.cellSize)
	y0, y1 := floorDiv(r.Y, g.cellSize), floorDiv(r.Bottom()-1, g.cellSize)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if !fn(cellKey{cx: cx, cy: cy}) {
				return
			}
		}
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
