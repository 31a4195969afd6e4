package pipeline

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/sizes"
)

// measurer is shared by all word sources so font faces are parsed once.
var measurer = sizes.NewMeasurer(sizes.DefaultPadding)

// Entries builds the labeled sizes described by the source options.
func Entries(opts Options) ([]sizes.Entry, error) {
	if err := opts.ValidateForSource(); err != nil {
		return nil, err
	}

	switch opts.Source {
	case SourceRandom:
		lo, err := sizes.ParseSize(opts.MinSize)
		if err != nil {
			return nil, err
		}
		hi, err := sizes.ParseSize(opts.MaxSize)
		if err != nil {
			return nil, err
		}
		return sizes.Random{Count: opts.Count, Min: lo, Max: hi, Seed: opts.Seed}.Sizes()

	case SourceSizes:
		fixed, err := sizes.ParseSizes(opts.Sizes)
		if err != nil {
			return nil, err
		}
		return fixed.Sizes()

	case SourceWords:
		text, closeFn, err := openText(opts)
		if err != nil {
			return nil, err
		}
		defer closeFn()

		tag := language.Und
		if opts.Language != "" {
			if tag, err = language.Parse(opts.Language); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "language %q", opts.Language)
			}
		}
		w := sizes.Words{
			Text:        text,
			MinLength:   opts.MinLength,
			Limit:       opts.WordLimit,
			MinFontSize: opts.MinFontSize,
			MaxFontSize: opts.MaxFontSize,
			Language:    tag,
			Measurer:    measurer,
		}
		return w.Sizes()
	}
	return nil, ValidateSource(opts.Source)
}

func openText(opts Options) (io.Reader, func() error, error) {
	if opts.Text != "" {
		return strings.NewReader(opts.Text), func() error { return nil }, nil
	}
	f, err := os.Open(opts.WordsFile)
	if os.IsNotExist(err) {
		return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "words file %s", opts.WordsFile)
	}
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "words file %s", opts.WordsFile)
	}
	return f, f.Close, nil
}
