// Package sizes produces the tag sizes fed to the placement engine.
//
// A [Source] yields an ordered list of [Entry] values. The order matters: the
// engine places tags in the order it receives them, so sources put the most
// important tags first to keep them near the center.
//
// Three sources are provided:
//
//   - [Fixed] returns a literal list, typically parsed with [ParseSizes].
//   - [Random] draws sizes from a seeded generator, for demos and benchmarks.
//   - [Words] turns free text into a word cloud: frequent words get larger
//     fonts and are measured with [Measurer].
package sizes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Entry is one tag to place.
type Entry struct {
	Label    string     `json:"label"`
	Size     cloud.Size `json:"size"`
	Weight   float64    `json:"weight,omitempty"`
	FontSize float64    `json:"font_size,omitempty"`
}

// Source yields the tags of a cloud in placement order.
type Source interface {
	Sizes() ([]Entry, error)
}

// SizesOf extracts the sizes of entries, preserving order.
func SizesOf(entries []Entry) []cloud.Size {
	out := make([]cloud.Size, len(entries))
	for i, e := range entries {
		out[i] = e.Size
	}
	return out
}

// Fixed is a literal list of sizes. Entries are labelled tag-1, tag-2, ...
type Fixed []cloud.Size

// Sizes implements Source.
func (f Fixed) Sizes() ([]Entry, error) {
	out := make([]Entry, len(f))
	for i, s := range f {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSize, err, "size %d", i+1)
		}
		out[i] = Entry{Label: defaultLabel(i), Size: s, Weight: 1}
	}
	return out, nil
}

// Entries is a Source over a ready-made list.
type Entries []Entry

// Sizes implements Source.
func (e Entries) Sizes() ([]Entry, error) {
	for i, en := range e {
		if err := en.Size.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSize, err, "entry %d (%q)", i+1, en.Label)
		}
		if err := errors.ValidateLabel(en.Label); err != nil {
			return nil, err
		}
	}
	return append([]Entry(nil), e...), nil
}

func defaultLabel(i int) string { return "tag-" + strconv.Itoa(i+1) }

// ParseSize parses a size written as WIDTHxHEIGHT, e.g. "40x20".
func ParseSize(s string) (cloud.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return cloud.Size{}, errors.New(errors.ErrCodeInvalidSize, "size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return cloud.Size{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "size %q: bad width", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return cloud.Size{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "size %q: bad height", s)
	}
	size := cloud.Size{Width: width, Height: height}
	if err := size.Validate(); err != nil {
		return cloud.Size{}, err
	}
	return size, nil
}

// ParseSizes parses a list of sizes. Each element may itself hold several
// comma or whitespace separated sizes, so both flag lists and file contents
// can be passed directly.
func ParseSizes(items []string) (Fixed, error) {
	var out Fixed
	for _, item := range items {
		for _, field := range strings.FieldsFunc(item, isSeparator) {
			s, err := ParseSize(field)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSource, "no sizes given")
	}
	return out, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// FormatSize is the inverse of ParseSize.
func FormatSize(s cloud.Size) string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
