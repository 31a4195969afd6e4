package styles

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Style defines the visual appearance of tags.
type Style interface {
	// Name returns the identifier used by ByName.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderTag writes the SVG for a tag's box.
	RenderTag(buf *bytes.Buffer, t Tag)
	// RenderText writes the SVG for a tag's label.
	RenderText(buf *bytes.Buffer, t Tag)
	// Colors returns the colors used for t.
	Colors(t Tag) Colors
}

// Tag contains all data needed to render a single tag, in canvas coordinates.
type Tag struct {
	ID         string  // Stable element id, e.g. "tag-3"
	Label      string  // Display text
	X, Y, W, H float64 // Top-left corner and dimensions
	CX, CY     float64 // Center (for text)
	FontSize   float64 // Requested font size; 0 means fit the box
	Weight     float64 // Relative importance in (0, 1]
}

// Colors is the color set of one tag.
type Colors struct {
	Fill   color.RGBA
	Stroke color.RGBA
	Text   color.RGBA
}

// Style names.
const (
	StyleSimple  = "simple"
	StylePalette = "palette"
)

// Names lists the built-in styles.
var Names = []string{StyleSimple, StylePalette}

// ByName returns the built-in style with the given name.
func ByName(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", StyleSimple:
		return Simple{}, nil
	case StylePalette:
		return Palette{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want one of %s)", name, strings.Join(Names, ", "))
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
