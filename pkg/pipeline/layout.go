package pipeline

import (
	"context"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	tcio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/sizes"
)

// Layout places the entries in order around the configured center.
//
// A tag that finds no free spot fails the layout with SEARCH_EXHAUSTED,
// unless SkipFailed is set; then it is left out and the rest are placed.
// Cancelling ctx stops the layout with TIMEOUT.
func Layout(ctx context.Context, entries []sizes.Entry, opts Options) (*tcio.Document, error) {
	doc, _, err := layout(ctx, entries, opts)
	return doc, err
}

func layout(ctx context.Context, entries []sizes.Entry, opts Options) (*tcio.Document, cloud.Stats, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, cloud.Stats{}, err
	}
	if err := validateEntries(entries); err != nil {
		return nil, cloud.Stats{}, err
	}

	l := cloud.New(opts.CenterPoint(), opts.engineOptions()...)
	kept := make([]sizes.Entry, 0, len(entries))
	rects := make([]cloud.Rect, 0, len(entries))
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, l.Stats(), errors.Wrap(errors.ErrCodeTimeout, err, "layout stopped after %d of %d tags", i, len(entries))
		}
		r, err := l.PlaceContext(ctx, e.Size)
		if err != nil {
			if opts.SkipFailed && errors.GetCode(err) == errors.ErrCodeSearchExhausted {
				opts.Logger.Warn("no room for tag, skipping", "tag", e.Label, "size", e.Size.String())
				continue
			}
			return nil, l.Stats(), errors.Wrap(errors.GetCode(err), err, "place tag %d (%q)", i, e.Label)
		}
		kept = append(kept, e)
		rects = append(rects, r)
	}
	if len(rects) == 0 {
		return nil, l.Stats(), errors.New(errors.ErrCodeSearchExhausted, "no tag could be placed")
	}

	stats := l.Stats()
	opts.Logger.Debug("layout finished",
		"placed", stats.Placed,
		"failed", stats.Failed,
		"probes", stats.Probes,
		"bounds", l.Bounds().String())
	return tcio.NewDocument(l.Center(), kept, rects), stats, nil
}

// validateEntries rejects inputs whose layout cost has no useful bound: too
// many tags, or a tag larger than MaxTagSide on either axis.
func validateEntries(entries []sizes.Entry) error {
	if len(entries) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "nothing to lay out")
	}
	if len(entries) > MaxTags {
		return errors.New(errors.ErrCodeInvalidInput, "at most %d tags per layout, got %d", MaxTags, len(entries))
	}
	for i, e := range entries {
		if e.Size.Width > MaxTagSide || e.Size.Height > MaxTagSide {
			return errors.New(errors.ErrCodeInvalidSize,
				"tag %d (%q): %s exceeds the %dpx limit", i, e.Label, e.Size, MaxTagSide)
		}
	}
	return nil
}
