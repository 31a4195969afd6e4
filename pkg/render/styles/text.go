package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/matzehuels/tagcloud/pkg/fonts"
)

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.9
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 96.0
)

// FontSize returns the label size for t: the requested size when set,
// otherwise the largest size whose estimated extent fits the box.
func FontSize(t Tag) float64 {
	if t.FontSize > 0 {
		return t.FontSize
	}
	return fontSizeFor(t.W, t.H, utf8.RuneCountInString(t.Label))
}

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// writeText writes a label centered on the tag.
func writeText(buf *bytes.Buffer, t Tag, fill string) {
	if t.Label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="tag-text" data-tag="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" fill="%s">%s</text>`+"\n",
		EscapeXML(t.ID), t.CX, t.CY, EscapeXML(fonts.FallbackFontFamily), FontSize(t), fill, EscapeXML(t.Label))
}
