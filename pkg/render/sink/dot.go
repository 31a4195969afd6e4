package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// Graphviz output formats accepted by RenderGraphviz.
const (
	GraphvizSVG = "svg"
	GraphvizPNG = "png"
	GraphvizDOT = "dot"
)

const pointsPerInch = 72.0

// ToDOT converts a document to a Graphviz graph with one box node per tag.
// Nodes are pinned (pos="x,y!") at the tag centers, in points, with the y axis
// flipped to Graphviz's bottom-up convention. The graph turns off packing and
// translation so the positions survive any neato-family engine unchanged.
func ToDOT(doc *io.Document, opts ...SVGOption) string {
	r := newSVGRenderer(opts...)
	c := newCanvas(doc, r.margin)

	var buf bytes.Buffer
	buf.WriteString("graph tagcloud {\n")
	fmt.Fprintf(&buf, "  graph [splines=false, overlap=true, pack=false, notranslate=true, outputorder=nodesfirst, bb=\"0,0,%.1f,%.1f\"", c.Width, c.Height)
	if r.background.A > 0 {
		fmt.Fprintf(&buf, ", bgcolor=%q", styles.Hex(r.background))
	} else {
		buf.WriteString(`, bgcolor="transparent"`)
	}
	buf.WriteString("];\n")
	buf.WriteString("  node [shape=box, fixedsize=true, style=filled, margin=0, penwidth=1];\n\n")

	for _, t := range buildTags(doc, c) {
		col := r.style.Colors(t)
		attrs := []string{
			fmt.Sprintf("label=%q", t.Label),
			fmt.Sprintf(`pos="%.2f,%.2f!"`, t.CX, c.Height-t.CY),
			fmt.Sprintf("width=%.4f", t.W/pointsPerInch),
			fmt.Sprintf("height=%.4f", t.H/pointsPerInch),
			fmt.Sprintf("fontsize=%.1f", styles.FontSize(t)),
			fmt.Sprintf("fillcolor=%q", styles.Hex(col.Fill)),
			fmt.Sprintf("color=%q", styles.Hex(col.Stroke)),
			fmt.Sprintf("fontcolor=%q", styles.Hex(col.Text)),
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", t.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderGraphviz renders a DOT graph in the given format (svg, png or dot).
// It runs the nop engine (neato -n), which takes node positions as given in
// points instead of computing a layout, so the tags keep their places.
func RenderGraphviz(ctx context.Context, dot string, format string) ([]byte, error) {
	var f graphviz.Format
	switch format {
	case GraphvizSVG:
		f = graphviz.SVG
	case GraphvizPNG:
		f = graphviz.PNG
	case GraphvizDOT:
		f = graphviz.XDOT
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported graphviz format %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NOP)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, f, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDOT is ToDOT followed by RenderGraphviz.
func RenderDOT(ctx context.Context, doc *io.Document, format string, opts ...SVGOption) ([]byte, error) {
	return RenderGraphviz(ctx, ToDOT(doc, opts...), format)
}
