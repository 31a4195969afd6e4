// Package fonts provides the typeface used to measure and draw tag labels.
//
// Labels are measured and rasterized with Go Regular, which ships inside
// golang.org/x/image, so every size computed by the sizes package matches what
// the PNG renderer draws and what SVG viewers show when the font is embedded.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name for the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for viewers that ignore embedded fonts.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

var (
	parsed    *opentype.Font
	parseErr  error
	parseOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularTTF returns the raw TrueType data.
func RegularTTF() []byte {
	return goregular.TTF
}

// RegularTTFBase64 returns the TrueType data as a base64 string, suitable for
// an @font-face data URL. The result is cached after first computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// Regular returns the parsed font.
func Regular() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("parse go regular: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// NewFace returns a face of the given pixel size at 72 DPI, so points equal
// pixels. A face is not safe for concurrent use.
func NewFace(size float64) (font.Face, error) {
	fnt, err := Regular()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
