package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

type jsonOutput struct {
	ID     string    `json:"id,omitempty"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Margin float64   `json:"margin"`
	Style  string    `json:"style"`
	Center jsonPoint `json:"center"`
	Tags   []jsonTag `json:"tags"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonTag struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontSize float64 `json:"font_size"`
	Fill     string  `json:"fill"`
	Stroke   string  `json:"stroke"`
	Color    string  `json:"color"`
}

// RenderJSON renders the document as canvas-space JSON: tags are translated
// like in the SVG output and carry their resolved font size and colors.
func RenderJSON(doc *io.Document, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	c := newCanvas(doc, r.margin)
	cx, cy := c.point(doc.Center)

	out := jsonOutput{
		ID:     doc.ID,
		Width:  c.Width,
		Height: c.Height,
		Margin: r.margin,
		Style:  r.style.Name(),
		Center: jsonPoint{X: cx, Y: cy},
		Tags:   make([]jsonTag, 0, len(doc.Tags)),
	}
	for _, t := range buildTags(doc, c) {
		col := r.style.Colors(t)
		out.Tags = append(out.Tags, jsonTag{
			ID:       t.ID,
			Label:    t.Label,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			Height:   t.H,
			FontSize: styles.FontSize(t),
			Fill:     styles.Hex(col.Fill),
			Stroke:   styles.Hex(col.Stroke),
			Color:    styles.Hex(col.Text),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}
