package io

import (
	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/sizes"
)

// Document is a placed tag cloud.
type Document struct {
	ID     string      `json:"id"`
	Center cloud.Point `json:"center"`
	Bounds cloud.Rect  `json:"bounds"`
	Tags   []Tag       `json:"tags"`
}

// Tag is one placed label.
type Tag struct {
	Label    string  `json:"label"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FontSize float64 `json:"font_size,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}

// Rect returns the area the tag covers.
func (t Tag) Rect() cloud.Rect { return cloud.NewRect(t.X, t.Y, t.Width, t.Height) }

// NewDocument pairs entries with the rectangles the engine placed for them.
// Extra entries without a rectangle (after a failed placement) are dropped.
func NewDocument(center cloud.Point, entries []sizes.Entry, rects []cloud.Rect) *Document {
	doc := &Document{
		ID:     uuid.NewString(),
		Center: center,
		Tags:   make([]Tag, 0, len(rects)),
	}
	for i, r := range rects {
		t := Tag{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
		if i < len(entries) {
			t.Label = entries[i].Label
			t.FontSize = entries[i].FontSize
			t.Weight = entries[i].Weight
		}
		doc.Tags = append(doc.Tags, t)
		doc.Bounds = doc.Bounds.Union(r)
	}
	return doc
}

// Rects returns the tag rectangles in placement order.
func (d *Document) Rects() []cloud.Rect {
	out := make([]cloud.Rect, len(d.Tags))
	for i, t := range d.Tags {
		out[i] = t.Rect()
	}
	return out
}

// Entries returns the tags as size entries, so a document can be laid out
// again, e.g. around a different center.
func (d *Document) Entries() []sizes.Entry {
	out := make([]sizes.Entry, len(d.Tags))
	for i, t := range d.Tags {
		out[i] = sizes.Entry{
			Label:    t.Label,
			Size:     cloud.Size{Width: t.Width, Height: t.Height},
			Weight:   t.Weight,
			FontSize: t.FontSize,
		}
	}
	return out
}

// Validate checks the document invariants: a parseable ID, valid labels,
// positive sizes and pairwise disjoint tags. It also recomputes Bounds.
func (d *Document) Validate() error {
	if d.ID != "" {
		if _, err := uuid.Parse(d.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "document id %q", d.ID)
		}
	}
	var bounds cloud.Rect
	rects := d.Rects()
	for i, t := range d.Tags {
		if err := errors.ValidateLabel(t.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "tag %d", i)
		}
		if err := rects[i].Size.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSize, err, "tag %d (%q)", i, t.Label)
		}
		for j := range i {
			if rects[j].Intersects(rects[i]) {
				return errors.New(errors.ErrCodeInvalidInput,
					"tag %d (%q) %s overlaps tag %d (%q) %s",
					i, t.Label, rects[i], j, d.Tags[j].Label, rects[j])
			}
		}
		bounds = bounds.Union(rects[i])
	}
	d.Bounds = bounds
	return nil
}
