package sink

import (
	"fmt"
	"math"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// DefaultMargin is the space, in pixels, around the outermost tags.
const DefaultMargin = 20.0

// canvas maps document coordinates onto the output surface.
type canvas struct {
	Width, Height float64
	dx, dy        float64
}

func newCanvas(doc *io.Document, margin float64) canvas {
	var b cloud.Rect
	for _, r := range doc.Rects() {
		b = b.Union(r)
	}
	if b.IsEmpty() {
		b = cloud.NewRect(doc.Center.X, doc.Center.Y, 0, 0)
	}
	return canvas{
		Width:  float64(b.Width) + 2*margin,
		Height: float64(b.Height) + 2*margin,
		dx:     margin - float64(b.X),
		dy:     margin - float64(b.Y),
	}
}

// point translates a document point onto the canvas.
func (c canvas) point(p cloud.Point) (float64, float64) {
	return float64(p.X) + c.dx, float64(p.Y) + c.dy
}

// pixels returns the raster size of the canvas at the given scale.
func (c canvas) pixels(scale float64) (int, int) {
	return int(math.Ceil(c.Width * scale)), int(math.Ceil(c.Height * scale))
}

func buildTags(doc *io.Document, c canvas) []styles.Tag {
	tags := make([]styles.Tag, len(doc.Tags))
	for i, t := range doc.Tags {
		x, y := c.point(cloud.Point{X: t.X, Y: t.Y})
		w, h := float64(t.Width), float64(t.Height)
		tags[i] = styles.Tag{
			ID:       fmt.Sprintf("tag-%d", i+1),
			Label:    t.Label,
			X:        x,
			Y:        y,
			W:        w,
			H:        h,
			CX:       x + w/2,
			CY:       y + h/2,
			FontSize: t.FontSize,
			Weight:   t.Weight,
		}
	}
	return tags
}
