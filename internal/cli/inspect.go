package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	tcio "github.com/matzehuels/tagcloud/pkg/io"
)

// inspectCommand creates the inspect command that lists placed tags.
func (c *CLI) inspectCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect [layout.json]",
		Short: "Print the tags of a layout document as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := tcio.ImportJSON(args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}
			writeInspect(cmd.OutOrStdout(), doc, limit)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many tags (0 = all)")

	return cmd
}

// writeInspect prints a summary and a table of the tags in placement order.
func writeInspect(w io.Writer, doc *tcio.Document, limit int) {
	var area int
	for _, t := range doc.Tags {
		area += t.Width * t.Height
	}
	density := 0.0
	if a := doc.Bounds.Size.Area(); a > 0 {
		density = float64(area) / float64(a)
	}

	key := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	fmt.Fprintln(w, key.Render("center")+" "+StyleValue.Render(doc.Center.String()))
	fmt.Fprintln(w, key.Render("bounds")+" "+StyleValue.Render(doc.Bounds.String()))
	fmt.Fprintln(w, key.Render("tags")+" "+StyleNumber.Render(strconv.Itoa(len(doc.Tags))))
	fmt.Fprintln(w, key.Render("density")+" "+StyleNumber.Render(fmt.Sprintf("%.1f%%", density*100)))

	rows := doc.Tags
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	fmt.Fprintln(w, tagTable(rows).Render())
	if len(rows) < len(doc.Tags) {
		fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("… %d more", len(doc.Tags)-len(rows))))
	}
}

func tagTable(tags []tcio.Tag) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "LABEL", "X", "Y", "W", "H", "FONT").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Bold(true).Foreground(colorCyan)
			case col == 1:
				return s.Inherit(tagStyle(row))
			case col > 1:
				return s.Align(lipgloss.Right)
			}
			return s.Foreground(colorDim)
		})

	for i, tag := range tags {
		font := ""
		if tag.FontSize > 0 {
			font = strconv.FormatFloat(tag.FontSize, 'f', 1, 64)
		}
		t.Row(
			strconv.Itoa(i+1),
			tag.Label,
			strconv.Itoa(tag.X),
			strconv.Itoa(tag.Y),
			strconv.Itoa(tag.Width),
			strconv.Itoa(tag.Height),
			font,
		)
	}
	return t
}
