package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// generateCommand creates the generate command that runs the whole pipeline.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output  string
		center  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build, place and render a tag cloud in one step",
		Long: `Build, place and render a tag cloud in one step.

Equivalent to 'layout' followed by 'render', without the intermediate file
unless json is among the formats. Both stages are cached.`,
		Example: `  tagcloud generate -n 100 -f svg,png
  tagcloud generate -s words --words notes.txt --style palette -o notes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyConfig(cmd, &opts); err != nil {
				return err
			}
			if err := resolveCenter(&opts, center); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", appName, "output base path")
	cacheFlags(cmd, &opts, &noCache)
	sourceFlags(cmd, &opts)
	layoutFlags(cmd, &opts, &center)
	renderFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Generating tag cloud...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d tags", result.Stats.TagCount))

	paths, err := writeArtifacts(result.Artifacts, output, appName)
	if err != nil {
		return err
	}

	printSuccess("Generated %d file(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.TagCount, result.Stats.Failed, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	printDetail("layout %s · render %s · %d probes", result.Stats.LayoutTime, result.Stats.RenderTime, result.Stats.Probes)
	return nil
}
