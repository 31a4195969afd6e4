package styles

import (
	"bytes"
	"fmt"
	"image/color"
)

// Simple draws outlined white boxes.
type Simple struct{}

var simpleColors = Colors{
	Fill:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Stroke: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	Text:   color.RGBA{A: 0xff},
}

func (Simple) Name() string { return StyleSimple }

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderTag(buf *bytes.Buffer, t Tag) {
	fmt.Fprintf(buf, `  <rect id="%s" class="tag" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="white" stroke="#333" stroke-width="1"/>`+"\n",
		EscapeXML(t.ID), t.X, t.Y, t.W, t.H)
}

func (Simple) RenderText(buf *bytes.Buffer, t Tag) {
	writeText(buf, t, "black")
}

func (Simple) Colors(Tag) Colors { return simpleColors }
