package sizes

import (
	"bufio"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Defaults for Words.
const (
	DefaultMinLength   = 3
	DefaultWordLimit   = 100
	DefaultMinFontSize = 12.0
	DefaultMaxFontSize = 64.0
)

// DefaultStopWords are common English words dropped from word clouds.
var DefaultStopWords = []string{
	"a", "about", "after", "all", "also", "an", "and", "any", "are", "as", "at",
	"be", "been", "but", "by", "can", "could", "did", "do", "does", "for",
	"from", "had", "has", "have", "he", "her", "his", "how", "i", "if", "in",
	"into", "is", "it", "its", "just", "more", "most", "my", "no", "not", "of",
	"on", "one", "only", "or", "other", "our", "out", "over", "she", "so",
	"some", "such", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "to", "up", "us", "was", "we", "were", "what",
	"when", "which", "who", "will", "with", "would", "you", "your",
}

// Words builds a word cloud from free text. Words are lowercased, filtered and
// counted; the Limit most frequent are measured with a font size scaled
// linearly by frequency between MinFontSize and MaxFontSize.
type Words struct {
	Text        io.Reader
	MinLength   int
	Limit       int
	MinFontSize float64
	MaxFontSize float64
	Language    language.Tag
	StopWords   []string // nil means DefaultStopWords; empty keeps everything
	Measurer    *Measurer
}

// WordCount is a word and how often it occurred.
type WordCount struct {
	Word  string
	Count int
}

func (w *Words) setDefaults() {
	if w.MinLength <= 0 {
		w.MinLength = DefaultMinLength
	}
	if w.Limit <= 0 {
		w.Limit = DefaultWordLimit
	}
	if w.MinFontSize <= 0 {
		w.MinFontSize = DefaultMinFontSize
	}
	if w.MaxFontSize <= 0 {
		w.MaxFontSize = DefaultMaxFontSize
	}
	if w.MaxFontSize < w.MinFontSize {
		w.MinFontSize, w.MaxFontSize = w.MaxFontSize, w.MinFontSize
	}
	if w.StopWords == nil {
		w.StopWords = DefaultStopWords
	}
	if w.Measurer == nil {
		w.Measurer = NewMeasurer(DefaultPadding)
	}
}

// Count tokenizes the text and returns the kept words, most frequent first.
// Ties are broken alphabetically so the order is stable.
func (w Words) Count() ([]WordCount, error) {
	w.setDefaults()
	if w.Text == nil {
		return nil, errors.New(errors.ErrCodeInvalidSource, "word source has no text")
	}

	caser := cases.Lower(w.Language)
	stop := make(map[string]bool, len(w.StopWords))
	for _, s := range w.StopWords {
		stop[caser.String(s)] = true
	}

	counts := make(map[string]int)
	sc := bufio.NewScanner(w.Text)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		for _, tok := range strings.FieldsFunc(sc.Text(), notWordRune) {
			word := caser.String(strings.Trim(tok, "'-"))
			if utf8.RuneCountInString(word) < w.MinLength || stop[word] {
				continue
			}
			if len(word) > errors.MaxLabelLength {
				continue
			}
			counts[word]++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read text")
	}

	out := make([]WordCount, 0, len(counts))
	for word, n := range counts {
		out = append(out, WordCount{Word: word, Count: n})
	}
	slices.SortFunc(out, func(a, b WordCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Word, b.Word)
	})
	if len(out) > w.Limit {
		out = out[:w.Limit]
	}
	return out, nil
}

// Sizes implements Source.
func (w Words) Sizes() ([]Entry, error) {
	w.setDefaults()
	counts, err := w.Count()
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSource, "no words left after filtering")
	}

	hi, lo := counts[0].Count, counts[len(counts)-1].Count
	out := make([]Entry, len(counts))
	for i, c := range counts {
		fs := w.fontSize(c.Count, lo, hi)
		size, err := w.Measurer.Measure(c.Word, fs)
		if err != nil {
			return nil, err
		}
		out[i] = Entry{
			Label:    c.Word,
			Size:     size,
			Weight:   float64(c.Count) / float64(hi),
			FontSize: fs,
		}
	}
	return out, nil
}

// fontSize maps a count in [lo, hi] linearly onto the font size range. When
// all words are equally frequent they all get the largest size.
func (w Words) fontSize(n, lo, hi int) float64 {
	if hi == lo {
		return w.MaxFontSize
	}
	t := float64(n-lo) / float64(hi-lo)
	return w.MinFontSize + t*(w.MaxFontSize-w.MinFontSize)
}

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
}
