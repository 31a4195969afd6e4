package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// sourceFlags binds the flags that describe where tags come from.
func sourceFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()
	f.StringVarP(&opts.Source, "source", "s", "", "tag source: random (default), sizes, words")
	f.StringSliceVar(&opts.Sizes, "sizes", nil, "tag sizes for the sizes source, e.g. 40x20,30x10")
	f.StringVar(&opts.Text, "text", "", "inline text for the words source")
	f.StringVar(&opts.WordsFile, "words", "", "text file for the words source")
	f.IntVarP(&opts.Count, "count", "n", 0, "number of random tags (default 50)")
	f.StringVar(&opts.MinSize, "min-size", "", "smallest random tag (default "+pipeline.DefaultMinSize+")")
	f.StringVar(&opts.MaxSize, "max-size", "", "largest random tag (default "+pipeline.DefaultMaxSize+")")
	f.Uint64Var(&opts.Seed, "seed", 0, "random seed (default 42)")
	f.IntVar(&opts.MinLength, "min-length", 0, "shortest word to keep")
	f.IntVar(&opts.WordLimit, "limit", 0, "keep only the most frequent words")
	f.Float64Var(&opts.MinFontSize, "min-font", 0, "font size of the rarest word")
	f.Float64Var(&opts.MaxFontSize, "max-font", 0, "font size of the most frequent word")
	f.StringVar(&opts.Language, "lang", "", "BCP 47 language for case folding, e.g. de or tr")
	completeValues(cmd, "source", sourceNames())
}

// layoutFlags binds the placement engine flags. The center is parsed after
// the config is merged, see resolveCenter.
func layoutFlags(cmd *cobra.Command, opts *pipeline.Options, center *string) {
	f := cmd.Flags()
	f.StringVar(center, "center", "", "cloud center as x,y (default 400,300)")
	f.Float64Var(&opts.MaxDistance, "max-distance", 0, "search radius around the center")
	f.Float64Var(&opts.Increment, "increment", 0, "ray step as a fraction of the radius, in [1/16384, 1]")
	f.IntVar(&opts.MaxCycles, "max-cycles", 0, "refinement cycles of the direction sequence (at most 12)")
	f.IntVar(&opts.MaxProbes, "max-probes", 0, "cap on directions tried per tag (0 = engine default)")
	f.StringVar(&opts.Index, "index", "", "spatial index: grid (default), scan")
	f.IntVar(&opts.CellSize, "cell-size", 0, "grid index cell size")
	f.BoolVar(&opts.SkipFailed, "skip-failed", false, "drop tags that find no space instead of failing")
	completeValues(cmd, "index", indexNames())
}

// cacheFlags binds the flags controlling the local cache.
func cacheFlags(cmd *cobra.Command, opts *pipeline.Options, noCache *bool) {
	cmd.Flags().BoolVar(noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when a cached result exists")
}

// renderFlags binds the rendering flags.
func renderFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()
	f.StringSliceVarP(&opts.Formats, "format", "f", nil, "output formats: svg (default), png, pdf, json, dot")
	f.StringVar(&opts.Style, "style", "", "visual style: simple (default), palette")
	f.Float64Var(&opts.Scale, "scale", 0, "PNG pixel density (default 2)")
	f.Float64Var(&opts.Margin, "margin", 0, "margin around the cloud")
	f.StringVar(&opts.Background, "background", "", "background color, e.g. #ffffff")
	f.BoolVar(&opts.EmbedFont, "embed-font", false, "embed the label font in SVG output")
	f.StringVar(&opts.Title, "title", "", "document title")
	completeValues(cmd, "format", formatNames())
	completeValues(cmd, "style", styleNames())
}

// resolveCenter applies the --center flag on top of the merged options.
func resolveCenter(opts *pipeline.Options, center string) error {
	if center == "" {
		return nil
	}
	p, err := parseCenter(center)
	if err != nil {
		return err
	}
	opts.Center = p
	return nil
}
