package sizes

import (
	"math/rand/v2"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Random draws Count sizes uniformly between Min and Max (inclusive). The same
// seed always yields the same sizes.
type Random struct {
	Count int
	Min   cloud.Size
	Max   cloud.Size
	Seed  uint64
}

// Sizes implements Source.
func (r Random) Sizes() ([]Entry, error) {
	if r.Count <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSource, "random source needs a positive count, got %d", r.Count)
	}
	if err := r.Min.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "random source min size")
	}
	if r.Max.Width < r.Min.Width || r.Max.Height < r.Min.Height {
		return nil, errors.New(errors.ErrCodeInvalidSource, "random source max size %s is smaller than min %s", r.Max, r.Min)
	}

	rng := rand.New(rand.NewPCG(r.Seed, r.Seed^0xdeadbeef))
	out := make([]Entry, r.Count)
	for i := range out {
		s := cloud.Size{
			Width:  r.Min.Width + rng.IntN(r.Max.Width-r.Min.Width+1),
			Height: r.Min.Height + rng.IntN(r.Max.Height-r.Min.Height+1),
		}
		out[i] = Entry{Label: defaultLabel(i), Size: s, Weight: 1}
	}
	return out, nil
}
