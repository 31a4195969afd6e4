package styles

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/color"
)

// DefaultPalette is used by a Palette without colors.
var DefaultPalette = []color.RGBA{
	{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff},
	{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff},
	{R: 0xe1, G: 0x57, B: 0x59, A: 0xff},
	{R: 0x76, G: 0xb7, B: 0xb2, A: 0xff},
	{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff},
	{R: 0xed, G: 0xc9, B: 0x48, A: 0xff},
	{R: 0xb0, G: 0x7a, B: 0xa1, A: 0xff},
	{R: 0xff, G: 0x9d, B: 0xa7, A: 0xff},
	{R: 0x9c, G: 0x75, B: 0x5f, A: 0xff},
	{R: 0xba, G: 0xb0, B: 0xac, A: 0xff},
}

const paletteRadius = 4.0

// Palette fills each tag with a color picked by hashing its label.
type Palette struct {
	Swatches []color.RGBA // nil means DefaultPalette
}

func (Palette) Name() string { return StylePalette }

func (Palette) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="tag-shadow" x="-10%" y="-10%" width="120%" height="130%">
      <feDropShadow dx="0" dy="1" stdDeviation="1" flood-opacity="0.25"/>
    </filter>
  </defs>
`)
}

func (p Palette) RenderTag(buf *bytes.Buffer, t Tag) {
	c := p.Colors(t)
	fmt.Fprintf(buf, `  <rect id="%s" class="tag" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" fill="%s" stroke="%s" stroke-width="1" filter="url(#tag-shadow)"/>`+"\n",
		EscapeXML(t.ID), t.X, t.Y, t.W, t.H, min(paletteRadius, t.H/4), Hex(c.Fill), Hex(c.Stroke))
}

func (p Palette) RenderText(buf *bytes.Buffer, t Tag) {
	writeText(buf, t, Hex(p.Colors(t).Text))
}

// Colors picks the fill by label hash, a darker stroke, and black or white
// text depending on the fill's luminance.
func (p Palette) Colors(t Tag) Colors {
	palette := p.Swatches
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	fill := palette[labelHash(t.Label)%uint32(len(palette))]
	return Colors{
		Fill:   fill,
		Stroke: darken(fill, 0.7),
		Text:   contrastText(fill),
	}
}

func labelHash(label string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(label))
	return h.Sum32()
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func contrastText(c color.RGBA) color.RGBA {
	lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if lum > 150 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
