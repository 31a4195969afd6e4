package sizes

import (
	"sync"

	"golang.org/x/image/font"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/fonts"
)

// DefaultPadding is the space, in pixels, kept around each measured label.
const DefaultPadding = 2

// Measurer computes the box a label occupies when drawn in the embedded font.
// It is safe for concurrent use.
type Measurer struct {
	Padding int

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewMeasurer returns a Measurer with the given padding on every side.
func NewMeasurer(padding int) *Measurer {
	return &Measurer{Padding: max(0, padding), faces: make(map[float64]font.Face)}
}

// Measure returns the padded size of label at fontSize pixels. The height
// covers ascent and descent, so labels with and without descenders of the same
// font size get the same height.
func (m *Measurer) Measure(label string, fontSize float64) (cloud.Size, error) {
	if fontSize <= 0 {
		return cloud.Size{}, errors.New(errors.ErrCodeInvalidSize, "font size %.1f must be positive", fontSize)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(fontSize)
	if err != nil {
		return cloud.Size{}, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}
	metrics := face.Metrics()
	w := font.MeasureString(face, label).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()
	return cloud.Size{
		Width:  max(1, w+2*m.Padding),
		Height: max(1, h+2*m.Padding),
	}, nil
}

func (m *Measurer) face(size float64) (font.Face, error) {
	if m.faces == nil {
		m.faces = make(map[float64]font.Face)
	}
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := fonts.NewFace(size)
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}
