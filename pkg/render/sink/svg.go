package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/tagcloud/pkg/fonts"
	"github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

const tagInteractionCSS = `
    .tag { transition: stroke-width 0.2s ease; }
    .tag:hover { stroke-width: 3; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	margin     float64
	background color.RGBA
	embedFont  bool
	title      string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithEmbeddedFont() SVGOption        { return func(r *svgRenderer) { r.embedFont = true } }
func WithTitle(title string) SVGOption   { return func(r *svgRenderer) { r.title = title } }

// WithMargin sets the space around the cloud (default 20). Negative values
// are ignored.
func WithMargin(m float64) SVGOption {
	return func(r *svgRenderer) {
		if m >= 0 {
			r.margin = m
		}
	}
}

// WithBackground fills the canvas. A zero alpha leaves it transparent, which
// is the default.
func WithBackground(c color.RGBA) SVGOption { return func(r *svgRenderer) { r.background = c } }

// RenderSVG renders the document as a standalone SVG image. Tags are drawn in
// placement order, labels on top of all boxes.
func RenderSVG(doc *io.Document, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	c := newCanvas(doc, r.margin)
	tags := buildTags(doc, c)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}

	r.style.RenderDefs(&buf)
	renderStyleSheet(&buf, r.embedFont)
	if r.background.A > 0 {
		fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			c.Width, c.Height, styles.Hex(r.background))
	}

	for _, t := range tags {
		r.style.RenderTag(&buf, t)
	}
	for _, t := range tags {
		r.style.RenderText(&buf, t)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Simple{}
	}
	return r
}

func renderStyleSheet(buf *bytes.Buffer, embedFont bool) {
	buf.WriteString("  <style>")
	if embedFont {
		fmt.Fprintf(buf, "\n    @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			fonts.FontFamily, fonts.RegularTTFBase64())
	}
	fmt.Fprintf(buf, "%s\n  </style>\n", tagInteractionCSS)
}
