package styles

import (
	"bytes"
	"image/color"
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", StyleSimple},
		{"simple", StyleSimple},
		{"Palette", StylePalette},
	}
	for _, tt := range tests {
		s, err := ByName(tt.name)
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", tt.name, err)
		}
		if s.Name() != tt.want {
			t.Errorf("ByName(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
		}
	}
	if _, err := ByName("handdrawn"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("unknown style error = %v", err)
	}
}

func TestSimpleRenderTag(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderTag(&buf, Tag{ID: "tag-1", X: 10, Y: 20, W: 100, H: 50})
	out := buf.String()
	for _, want := range []string{
		`<rect`,
		`id="tag-1"`,
		`class="tag"`,
		`x="10.00"`,
		`y="20.00"`,
		`width="100.00"`,
		`height="50.00"`,
		`fill="white"`,
		`stroke="#333"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTag() output missing %q\nGot: %s", want, out)
		}
	}

	var defs bytes.Buffer
	Simple{}.RenderDefs(&defs)
	if defs.Len() != 0 {
		t.Errorf("RenderDefs() wrote %d bytes, want 0", defs.Len())
	}
}

func TestRenderTextEscapes(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderText(&buf, Tag{ID: "tag-2", Label: "a<b>&c", CX: 5, CY: 6, FontSize: 12})
	out := buf.String()
	for _, want := range []string{`a&lt;b&gt;&amp;c`, `font-size="12.00"`, `x="5.00"`, `text-anchor="middle"`} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderText() output missing %q\nGot: %s", want, out)
		}
	}

	buf.Reset()
	Simple{}.RenderText(&buf, Tag{ID: "tag-3"})
	if buf.Len() != 0 {
		t.Errorf("unlabeled tag wrote text: %s", buf.String())
	}
}

func TestFontSize(t *testing.T) {
	if got := FontSize(Tag{FontSize: 17, W: 1, H: 1}); got != 17 {
		t.Errorf("explicit FontSize = %v, want 17", got)
	}
	small := FontSize(Tag{Label: "word", W: 40, H: 10})
	big := FontSize(Tag{Label: "word", W: 400, H: 100})
	if big <= small {
		t.Errorf("bigger box should give bigger font: %v vs %v", big, small)
	}
	if got := FontSize(Tag{Label: "x", W: 0.1, H: 0.1}); got != fontSizeMin {
		t.Errorf("tiny box font = %v, want %v", got, fontSizeMin)
	}
}

func TestPaletteColors(t *testing.T) {
	p := Palette{}
	a := p.Colors(Tag{Label: "gopher"})
	if a != p.Colors(Tag{Label: "gopher"}) {
		t.Error("Colors() should be deterministic")
	}
	found := false
	for _, c := range DefaultPalette {
		if c == a.Fill {
			found = true
		}
	}
	if !found {
		t.Errorf("fill %v not from DefaultPalette", a.Fill)
	}

	seen := map[color.RGBA]bool{}
	for _, l := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		seen[p.Colors(Tag{Label: l}).Fill] = true
	}
	if len(seen) < 2 {
		t.Error("labels should spread over several colors")
	}

	one := Palette{Swatches: []color.RGBA{{R: 10, G: 20, B: 30, A: 255}}}
	c := one.Colors(Tag{Label: "x"})
	if c.Fill != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("custom swatch not used: %v", c.Fill)
	}
	if c.Text != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("dark fill should get white text, got %v", c.Text)
	}
}

func TestPaletteRender(t *testing.T) {
	var buf bytes.Buffer
	p := Palette{}
	p.RenderDefs(&buf)
	p.RenderTag(&buf, Tag{ID: "tag-1", Label: "go", X: 1, Y: 2, W: 30, H: 12})
	out := buf.String()
	if !strings.Contains(out, `id="tag-shadow"`) || !strings.Contains(out, `filter="url(#tag-shadow)"`) {
		t.Errorf("missing shadow filter:\n%s", out)
	}
	if !regexp.MustCompile(`fill="#[0-9a-f]{6}"`).MatchString(out) {
		t.Errorf("fill is not a hex color:\n%s", out)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{R: 0x12, G: 0xab, B: 0x0f}); got != "#12ab0f" {
		t.Errorf("Hex() = %q", got)
	}
}
