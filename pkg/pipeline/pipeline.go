// Package pipeline provides the source → layout → render pipeline for tagcloud.
//
// The CLI and the HTTP API both go through this package, so defaults,
// validation and caching behave the same everywhere.
//
// # Stages
//
//  1. Entries: build labeled sizes from a source (random, sizes or words)
//  2. Layout: place them around the center with the spiral engine
//  3. Render: produce artifacts (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can run on its own or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  pipeline.SourceWords,
//	    Text:    article,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Options can also come from a TOML file, see [LoadConfig].
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	tcio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render/sink"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultCount is the number of tags a random source draws.
	DefaultCount = 50

	// DefaultMinSize and DefaultMaxSize bound random tag sizes.
	DefaultMinSize = "20x10"
	DefaultMaxSize = "120x40"

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0
)

// Limits on the work a single run may request. API callers control every
// option, so layout cost must stay bounded whatever they send.
const (
	// MaxTags bounds the number of tags in one layout (count, sizes, word
	// limit and API tag lists).
	MaxTags = 10_000

	// MaxTagSide bounds the width and height of a single tag in pixels.
	MaxTagSide = 1 << 15

	// MaxMaxDistance bounds how far rays reach from the center.
	MaxMaxDistance = 1 << 16

	// MinIncrement bounds the ray step from below, so a ray has at most
	// 16384 samples.
	MinIncrement = 1.0 / 16384

	// MaxMaxCycles bounds the angular refinement (finest step pi/4096).
	MaxMaxCycles = 12

	// MaxMaxProbes bounds the directions a single placement may try.
	MaxMaxProbes = 1 << 16
)

// Source kinds.
const (
	SourceRandom = "random"
	SourceSizes  = "sizes"
	SourceWords  = "words"
)

// DefaultCenter places the cloud in the middle of an 800x600 frame.
var DefaultCenter = cloud.Point{X: 400, Y: 300}

// DefaultSource is used when no source is given.
const DefaultSource = SourceRandom

// Index kinds.
const (
	IndexGrid = "grid"
	IndexScan = "scan"
)

// DefaultStyle is the default visual style.
const DefaultStyle = styles.StyleSimple

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidSources is the set of supported sources.
var ValidSources = map[string]bool{
	SourceRandom: true,
	SourceSizes:  true,
	SourceWords:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. It decodes from JSON
// (API requests) and TOML (config files).
type Options struct {
	// Source options
	Source      string   `json:"source,omitempty" toml:"source"`
	Sizes       []string `json:"sizes,omitempty" toml:"sizes"` // "WxH" items for the sizes source
	Text        string   `json:"text,omitempty" toml:"-"`      // inline text for the words source
	WordsFile   string   `json:"-" toml:"words_file"`
	Count       int      `json:"count,omitempty" toml:"count"`
	MinSize     string   `json:"min_size,omitempty" toml:"min_size"`
	MaxSize     string   `json:"max_size,omitempty" toml:"max_size"`
	Seed        uint64   `json:"seed,omitempty" toml:"seed"`
	MinLength   int      `json:"min_length,omitempty" toml:"min_length"`
	WordLimit   int      `json:"word_limit,omitempty" toml:"word_limit"`
	MinFontSize float64  `json:"min_font_size,omitempty" toml:"min_font_size"`
	MaxFontSize float64  `json:"max_font_size,omitempty" toml:"max_font_size"`
	Language    string   `json:"language,omitempty" toml:"language"`

	// Layout options
	Center      *cloud.Point `json:"center,omitempty" toml:"center"`
	MaxDistance float64      `json:"max_distance,omitempty" toml:"max_distance"`
	Increment   float64      `json:"increment,omitempty" toml:"increment"`
	MaxCycles   int          `json:"max_cycles,omitempty" toml:"max_cycles"`
	MaxProbes   int          `json:"max_probes,omitempty" toml:"max_probes"`
	Index       string       `json:"index,omitempty" toml:"index"`
	CellSize    int          `json:"cell_size,omitempty" toml:"cell_size"`
	SkipFailed  bool         `json:"skip_failed,omitempty" toml:"skip_failed"` // drop tags that find no space instead of failing

	// Render options
	Formats    []string `json:"formats,omitempty" toml:"formats"`
	Style      string   `json:"style,omitempty" toml:"style"`
	Scale      float64  `json:"scale,omitempty" toml:"scale"`
	Margin     float64  `json:"margin,omitempty" toml:"margin"`
	Background string   `json:"background,omitempty" toml:"background"`
	EmbedFont  bool     `json:"embed_font,omitempty" toml:"embed_font"`
	Title      string   `json:"title,omitempty" toml:"title"`

	Refresh bool `json:"refresh,omitempty" toml:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the placed cloud.
	Document *tcio.Document

	// LayoutHash is the content hash of the document.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TagCount   int
	Failed     int
	Probes     int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(sortedKeys(ValidFormats), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !slices.Contains(styles.Names, style) {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)", style, strings.Join(styles.Names, ", "))
	}
	return nil
}

// ValidateSource checks that a source kind is valid.
func ValidateSource(source string) error {
	if !ValidSources[source] {
		return errors.New(errors.ErrCodeInvalidSource, "invalid source: %q (must be one of: %s)", source, strings.Join(sortedKeys(ValidSources), ", "))
	}
	return nil
}

// ValidateIndex checks that an index kind is valid.
func ValidateIndex(index string) error {
	if index != IndexGrid && index != IndexScan {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid index: %q (must be one of: grid, scan)", index)
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSource(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSource checks the source fields and applies their defaults.
func (o *Options) ValidateForSource() error {
	if o.Source == "" {
		o.Source = DefaultSource
	}
	if err := ValidateSource(o.Source); err != nil {
		return err
	}
	switch o.Source {
	case SourceRandom:
		if o.Count == 0 {
			o.Count = DefaultCount
		}
		if o.Count < 0 || o.Count > MaxTags {
			return errors.New(errors.ErrCodeInvalidSource, "count must be in [1, %d], got %d", MaxTags, o.Count)
		}
		if o.MinSize == "" {
			o.MinSize = DefaultMinSize
		}
		if o.MaxSize == "" {
			o.MaxSize = DefaultMaxSize
		}
		if o.Seed == 0 {
			o.Seed = DefaultSeed
		}
	case SourceSizes:
		if len(o.Sizes) == 0 {
			return errors.New(errors.ErrCodeInvalidSource, "sizes source needs at least one size")
		}
		if len(o.Sizes) > MaxTags {
			return errors.New(errors.ErrCodeInvalidSource, "sizes source accepts at most %d sizes, got %d", MaxTags, len(o.Sizes))
		}
	case SourceWords:
		if o.Text == "" && o.WordsFile == "" {
			return errors.New(errors.ErrCodeInvalidSource, "words source needs text or a words file")
		}
		if o.WordLimit < 0 || o.WordLimit > MaxTags {
			return errors.New(errors.ErrCodeInvalidSource, "word_limit must be in [0, %d], got %d", MaxTags, o.WordLimit)
		}
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Center == nil {
		c := DefaultCenter
		o.Center = &c
	}
	if o.MaxDistance <= 0 {
		o.MaxDistance = cloud.DefaultMaxDistance
	}
	if o.Increment <= 0 {
		o.Increment = cloud.DefaultIncrement
	}
	if o.MaxCycles <= 0 {
		o.MaxCycles = cloud.DefaultMaxCycles
	}
	if o.Index == "" {
		o.Index = IndexGrid
	}
	if o.CellSize <= 0 {
		o.CellSize = cloud.DefaultCellSize
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	switch {
	case o.MaxDistance > MaxMaxDistance:
		return errors.New(errors.ErrCodeInvalidConfig, "max_distance must be at most %d, got %g", MaxMaxDistance, o.MaxDistance)
	case o.Increment < MinIncrement || o.Increment > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "increment must be in [1/16384, 1], got %g", o.Increment)
	case o.MaxCycles > MaxMaxCycles:
		return errors.New(errors.ErrCodeInvalidConfig, "max_cycles must be at most %d, got %d", MaxMaxCycles, o.MaxCycles)
	case o.MaxProbes < 0 || o.MaxProbes > MaxMaxProbes:
		return errors.New(errors.ErrCodeInvalidConfig, "max_probes must be in [0, %d], got %d", MaxMaxProbes, o.MaxProbes)
	}
	return ValidateIndex(o.Index)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Margin == 0 {
		o.Margin = sink.DefaultMargin
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Background != "" {
		if _, err := ParseColor(o.Background); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// CenterPoint returns the cloud center, or DefaultCenter when unset.
func (o *Options) CenterPoint() cloud.Point {
	if o.Center == nil {
		return DefaultCenter
	}
	return *o.Center
}

// LayoutKeyOpts returns cache key options for layout computation. The index
// kind is left out since every index produces the same layout.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		CenterX:     o.CenterPoint().X,
		CenterY:     o.CenterPoint().Y,
		MaxDistance: o.MaxDistance,
		Increment:   o.Increment,
		MaxCycles:   o.MaxCycles,
		MaxProbes:   o.MaxProbes,
		SkipFailed:  o.SkipFailed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:     format,
		Style:      o.Style,
		Margin:     o.Margin,
		Background: o.Background,
		EmbedFont:  o.EmbedFont,
		Title:      o.Title,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

// engineOptions converts layout options to engine options.
func (o *Options) engineOptions() []cloud.Option {
	opts := []cloud.Option{
		cloud.WithMaxDistance(o.MaxDistance),
		cloud.WithIncrement(o.Increment),
		cloud.WithMaxCycles(o.MaxCycles),
		cloud.WithLogger(o.Logger),
	}
	if o.MaxProbes > 0 {
		opts = append(opts, cloud.WithMaxProbes(o.MaxProbes))
	}
	if o.Index == IndexScan {
		opts = append(opts, cloud.WithIndex(cloud.NewScanIndex))
	} else {
		opts = append(opts, cloud.WithIndex(cloud.GridIndexFactory(o.CellSize)))
	}
	return opts
}
