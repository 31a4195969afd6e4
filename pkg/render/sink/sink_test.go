package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// testDocument has two tags side by side, 60x20 in total, centered on (20, 10).
func testDocument() *io.Document {
	return &io.Document{
		ID:     "0b5a4b52-8d57-4f0c-9b36-1f3a4f8a2c11",
		Center: cloud.Point{X: 20, Y: 10},
		Bounds: cloud.NewRect(0, 0, 60, 20),
		Tags: []io.Tag{
			{Label: "a", X: 0, Y: 0, Width: 40, Height: 20},
			{Label: "b<c>", X: 40, Y: 0, Width: 20, Height: 20, FontSize: 9},
		},
	}
}

func TestCanvas(t *testing.T) {
	c := newCanvas(testDocument(), 20)
	if c.Width != 100 || c.Height != 60 {
		t.Errorf("canvas = %vx%v, want 100x60", c.Width, c.Height)
	}
	if x, y := c.point(cloud.Point{}); x != 20 || y != 20 {
		t.Errorf("origin maps to (%v, %v), want (20, 20)", x, y)
	}

	// Negative coordinates are shifted onto the canvas too.
	doc := &io.Document{Tags: []io.Tag{{X: -50, Y: -30, Width: 10, Height: 10}}}
	tags := buildTags(doc, newCanvas(doc, 5))
	if tags[0].X != 5 || tags[0].Y != 5 || tags[0].CX != 10 {
		t.Errorf("tag = %+v", tags[0])
	}

	empty := newCanvas(&io.Document{}, 10)
	if empty.Width != 20 || empty.Height != 20 {
		t.Errorf("empty canvas = %vx%v", empty.Width, empty.Height)
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testDocument()))
	for _, want := range []string{
		`viewBox="0 0 100.0 60.0"`,
		`id="tag-1"`,
		`x="20.00" y="20.00" width="40.00" height="20.00"`,
		`id="tag-2"`,
		`b&lt;c&gt;`,
		`font-size="9.00"`,
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if strings.Contains(svg, "@font-face") {
		t.Error("font should only be embedded on request")
	}
	if strings.Index(svg, `class="tag-text"`) < strings.LastIndex(svg, `class="tag"`) {
		t.Error("labels should be drawn after all boxes")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testDocument(),
		WithStyle(styles.Palette{}),
		WithMargin(0),
		WithBackground(color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}),
		WithEmbeddedFont(),
		WithTitle("demo & co"),
	))
	for _, want := range []string{
		`viewBox="0 0 60.0 20.0"`,
		`fill="#eeeeee"`,
		`@font-face`,
		`<title>demo &amp; co</title>`,
		`tag-shadow`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testDocument(), WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
		t.Fatalf("image = %dx%d, want 100x60", b.Dx(), b.Dy())
	}

	rgba := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	}
	if got := rgba(5, 5); got.A != 0 {
		t.Errorf("margin pixel = %v, want transparent", got)
	}
	if got := rgba(23, 23); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("fill pixel = %v, want white", got)
	}
	if got := rgba(20, 30); got != (color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}) {
		t.Errorf("stroke pixel = %v, want #333333", got)
	}

	big, err := RenderPNG(testDocument(), WithScale(2),
		WithPNGSVGOptions(WithBackground(color.RGBA{R: 1, G: 2, B: 3, A: 255})))
	if err != nil {
		t.Fatal(err)
	}
	img2, _ := png.Decode(bytes.NewReader(big))
	if b := img2.Bounds(); b.Dx() != 200 || b.Dy() != 120 {
		t.Errorf("2x image = %dx%d, want 200x120", b.Dx(), b.Dy())
	}
	if got := color.RGBAModel.Convert(img2.At(1, 1)).(color.RGBA); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("background pixel = %v", got)
	}
}

func TestRenderPNGTooLarge(t *testing.T) {
	if _, err := RenderPNG(testDocument(), WithScale(1000)); err == nil {
		t.Error("expected size limit error")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testDocument())
	if err != nil {
		t.Fatal(err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Width != 100 || out.Height != 60 || out.Style != "simple" {
		t.Errorf("header = %+v", out)
	}
	if out.Center != (jsonPoint{X: 40, Y: 30}) {
		t.Errorf("center = %+v", out.Center)
	}
	if len(out.Tags) != 2 || out.Tags[1].X != 60 || out.Tags[1].FontSize != 9 || out.Tags[0].Fill != "#ffffff" {
		t.Errorf("tags = %+v", out.Tags)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testDocument())
	for _, want := range []string{
		"graph tagcloud {",
		`"tag-1" [label="a", pos="40.00,30.00!", width=0.5556, height=0.2778`,
		`"tag-2" [label="b<c>"`,
		`bgcolor="transparent"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\nGot:\n%s", want, dot)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	svg, err := RenderDOT(context.Background(), testDocument(), GraphvizSVG)
	if err != nil {
		t.Fatal(err)
	}
	// Graphviz escapes '-' in titles, so match the label text instead of the id.
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte(">a</text>")) {
		t.Errorf("unexpected graphviz output:\n%s", svg)
	}

	if _, err := RenderGraphviz(context.Background(), ToDOT(testDocument()), "gif"); err == nil {
		t.Error("expected unsupported format error")
	}
}

func TestRenderDOTKeepsPositions(t *testing.T) {
	out, err := RenderDOT(context.Background(), testDocument(), GraphvizDOT)
	if err != nil {
		t.Fatal(err)
	}
	g, err := graphviz.ParseBytes(out)
	if err != nil {
		t.Fatalf("parse rendered DOT: %v\n%s", err, out)
	}
	defer g.Close()

	// Canvas is 100x60 with a 20pt margin; centers in Graphviz's bottom-up
	// coordinates.
	want := map[string][2]float64{
		"tag-1": {40, 30},
		"tag-2": {70, 30},
	}
	for name, w := range want {
		n, err := g.NodeByName(name)
		if err != nil || n == nil {
			t.Fatalf("node %s missing: %v\n%s", name, err, out)
		}
		pos := n.GetStr("pos")
		var x, y float64
		if _, err := fmt.Sscanf(strings.TrimSuffix(pos, "!"), "%g,%g", &x, &y); err != nil {
			t.Fatalf("node %s pos %q: %v", name, pos, err)
		}
		if math.Abs(x-w[0]) > 0.01 || math.Abs(y-w[1]) > 0.01 {
			t.Errorf("node %s at (%g, %g), want (%g, %g)", name, x, y, w[0], w[1])
		}
	}
}

func TestRenderPDF(t *testing.T) {
	if !render.HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := RenderPDF(context.Background(), testDocument())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}
