package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	tcio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// layoutCommand creates the layout command for placing tags.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		center  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Place tags and write a layout document",
		Long: `Place tags and write a layout document.

The layout command builds tags from a source (random sizes, explicit sizes or
the words of a text), places them around the center and writes the result to
a layout.json file. The file can be rendered with 'render', shown with
'inspect' or animated with 'preview'.

Results are cached locally for faster subsequent runs.`,
		Example: `  tagcloud layout -n 80 --seed 7
  tagcloud layout -s sizes --sizes 60x20,40x20,30x10 -o small.json
  tagcloud layout -s words --words README.md --limit 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyConfig(cmd, &opts); err != nil {
				return err
			}
			if err := resolveCenter(&opts, center); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultLayoutFile, "output file")
	cacheFlags(cmd, &opts, &noCache)
	sourceFlags(cmd, &opts)
	layoutFlags(cmd, &opts, &center)

	return cmd
}

// runLayout builds the entries, places them and writes the document.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	opts.Logger = c.Logger
	entries, err := pipeline.Entries(opts)
	if err != nil {
		return fmt.Errorf("build tags: %w", err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d tags...", len(entries)))
	spinner.Start()

	doc, cacheHit, err := runner.LayoutWithCacheInfo(ctx, entries, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if err := ctx.Err(); err != nil {
		return err
	}

	loggerFromContext(ctx).Debug("layout ready", "tags", len(doc.Tags), "bounds", doc.Bounds, "cached", cacheHit)

	if err := tcio.ExportJSON(doc, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(len(doc.Tags), len(entries)-len(doc.Tags), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+output)

	return nil
}
