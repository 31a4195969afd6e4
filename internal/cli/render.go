package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	tcio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// renderCommand creates the render command for turning a layout into files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a layout document to SVG, PNG, PDF, JSON or DOT",
		Long: `Render a layout document to SVG, PNG, PDF, JSON or DOT.

The render command reads a layout.json file (produced by 'layout') and writes
one file per requested format next to it, or at the path given with -o.
PDF output needs rsvg-convert on the PATH.`,
		Example: `  tagcloud render layout.json
  tagcloud render layout.json -f svg,png --style palette -o cloud`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyConfig(cmd, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or base path (default: <input> without extension)")
	cacheFlags(cmd, &opts, &noCache)
	renderFlags(cmd, &opts)

	return cmd
}

// runRender loads the document and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := tcio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	loggerFromContext(ctx).Debug("rendered layout", "input", input, "formats", len(artifacts), "cached", cacheHit)

	paths, err := writeArtifacts(artifacts, output, input)
	if err != nil {
		return err
	}

	printSuccess("Rendered %d file(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(doc.Tags), 0, cacheHit)
	return nil
}

// writeArtifacts writes each artifact to <base>.<format> and returns the
// paths in format order. A single artifact goes to output as given when it
// already carries that format's extension.
func writeArtifacts(artifacts map[string][]byte, output, input string) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	base := basePath(output, input)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" && strings.TrimPrefix(filepath.Ext(output), ".") == format {
			path = output
		}
		if filepath.Clean(path) == filepath.Clean(input) {
			// Never overwrite the layout being rendered.
			path = base + ".out." + format
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
