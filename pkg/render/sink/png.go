package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/tagcloud/pkg/fonts"
	"github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// MaxPNGPixels bounds the raster size so a huge document or scale cannot
// exhaust memory.
const MaxPNGPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions applies SVG options (style, margin, background) to the
// raster output.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG rasterizes the document. Boxes and outlines are filled with the
// style's colors and labels are drawn with the embedded Go font, so the output
// matches the sizes the sizes package measured.
func RenderPNG(doc *io.Document, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	sr := newSVGRenderer(r.svgOpts...)
	c := newCanvas(doc, sr.margin)
	w, h := c.pixels(r.scale)
	if w*h > MaxPNGPixels {
		return nil, fmt.Errorf("png %dx%d exceeds %d pixels; lower the scale", w, h, MaxPNGPixels)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if sr.background.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(sr.background), image.Point{}, draw.Src)
	}

	tags := buildTags(doc, c)
	for _, t := range tags {
		drawBox(img, t, sr.style.Colors(t), r.scale)
	}

	faces := map[float64]font.Face{}
	for _, t := range tags {
		if t.Label == "" {
			continue
		}
		size := styles.FontSize(t) * r.scale
		face, ok := faces[size]
		if !ok {
			var err error
			if face, err = fonts.NewFace(size); err != nil {
				return nil, err
			}
			faces[size] = face
		}
		drawLabel(img, face, t, sr.style.Colors(t).Text, r.scale)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func scaledRect(t styles.Tag, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(t.X*scale)),
		int(math.Round(t.Y*scale)),
		int(math.Round((t.X+t.W)*scale)),
		int(math.Round((t.Y+t.H)*scale)),
	)
}

func drawBox(img *image.RGBA, t styles.Tag, c styles.Colors, scale float64) {
	r := scaledRect(t, scale)
	draw.Draw(img, r, image.NewUniform(c.Fill), image.Point{}, draw.Over)

	lw := max(1, int(math.Round(scale)))
	stroke := image.NewUniform(c.Stroke)
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+lw),
		image.Rect(r.Min.X, r.Max.Y-lw, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+lw, r.Max.Y),
		image.Rect(r.Max.X-lw, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(img, edge.Intersect(r), stroke, image.Point{}, draw.Over)
	}
}

// drawLabel centers the label on the tag. The baseline sits half the
// ascent-minus-descent below the center, which centers the full line box.
func drawLabel(img *image.RGBA, face font.Face, t styles.Tag, c color.RGBA, scale float64) {
	m := face.Metrics()
	width := font.MeasureString(face, t.Label)
	cx := fixed.Int26_6(t.CX * scale * 64)
	cy := fixed.Int26_6(t.CY * scale * 64)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: cx - width/2,
			Y: cy + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(t.Label)
}
