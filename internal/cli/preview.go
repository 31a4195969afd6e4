package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	tcio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

const (
	defaultPreviewInterval = 80 * time.Millisecond
	defaultPreviewCols     = 80
	defaultPreviewRows     = 24

	// previewChrome is the number of terminal lines used by the header and
	// the help line.
	previewChrome = 3
)

// previewCommand creates the preview command that animates placement.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		center   string
		noCache  bool
		interval time.Duration
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [layout.json]",
		Short: "Animate tag placement in the terminal",
		Long: `Animate tag placement in the terminal.

Tags appear one at a time in placement order, scaled to fit the terminal.
Without an argument the tags are built and placed from the source flags.

Keys: space pauses, r restarts, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var doc *tcio.Document
			var err error
			if len(args) == 1 {
				doc, err = tcio.ImportJSON(args[0])
				if err != nil {
					return fmt.Errorf("load layout %s: %w", args[0], err)
				}
			} else {
				if err := c.applyConfig(cmd, &opts); err != nil {
					return err
				}
				if err := resolveCenter(&opts, center); err != nil {
					return err
				}
				if doc, err = c.previewLayout(ctx, opts, noCache); err != nil {
					return err
				}
			}
			if len(doc.Tags) == 0 {
				printWarning("Layout has no tags")
				return nil
			}

			m := newPreviewModel(doc, interval)
			_, err = tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", defaultPreviewInterval, "delay between tags")
	cacheFlags(cmd, &opts, &noCache)
	sourceFlags(cmd, &opts)
	layoutFlags(cmd, &opts, &center)

	return cmd
}

func (c *CLI) previewLayout(ctx context.Context, opts pipeline.Options, noCache bool) (*tcio.Document, error) {
	opts.Logger = c.Logger
	entries, err := pipeline.Entries(opts)
	if err != nil {
		return nil, fmt.Errorf("build tags: %w", err)
	}
	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	return runner.Layout(ctx, entries, opts)
}

// =============================================================================
// Bubbletea model
// =============================================================================

type previewTickMsg time.Time

// previewModel reveals the tags of a document one per tick.
type previewModel struct {
	doc      *tcio.Document
	interval time.Duration
	shown    int
	paused   bool
	cols     int
	rows     int
}

func newPreviewModel(doc *tcio.Document, interval time.Duration) previewModel {
	if interval <= 0 {
		interval = defaultPreviewInterval
	}
	return previewModel{
		doc:      doc,
		interval: interval,
		cols:     defaultPreviewCols,
		rows:     defaultPreviewRows - previewChrome,
	}
}

func (m previewModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return previewTickMsg(t) })
}

func (m previewModel) done() bool { return m.shown >= len(m.doc.Tags) }

func (m previewModel) Init() tea.Cmd {
	return m.tick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			restart := m.done()
			m.shown = 0
			if restart {
				return m, m.tick()
			}
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-previewChrome, 1)
	case previewTickMsg:
		if m.done() {
			return m, nil
		}
		if !m.paused {
			m.shown++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder
	status := fmt.Sprintf("placed %d/%d", m.shown, len(m.doc.Tags))
	if m.paused {
		status += " · paused"
	}
	b.WriteString(StyleTitle.Render(appName+" preview") + "  " + StyleDim.Render(status) + "\n\n")
	b.WriteString(m.grid())
	b.WriteString(StyleDim.Render("space pause · r restart · q quit"))
	return b.String()
}

// grid draws the shown tags scaled into a cols x rows character grid.
// Terminal cells are about twice as tall as wide, so y is squeezed by half.
func (m previewModel) grid() string {
	bounds := m.doc.Bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return ""
	}
	k := math.Min(float64(m.cols)/float64(bounds.Width), 2*float64(m.rows)/float64(bounds.Height))
	sx, sy := k, k/2
	cols := min(m.cols, int(math.Ceil(float64(bounds.Width)*sx)))
	rows := min(m.rows, int(math.Ceil(float64(bounds.Height)*sy)))

	owner := make([][]int, rows)
	text := make([][]rune, rows)
	for r := range owner {
		owner[r] = make([]int, cols)
		text[r] = []rune(strings.Repeat(" ", cols))
		for c := range owner[r] {
			owner[r][c] = -1
		}
	}

	for i, t := range m.doc.Tags[:m.shown] {
		c0 := clampInt(int(float64(t.X-bounds.X)*sx), 0, cols-1)
		r0 := clampInt(int(float64(t.Y-bounds.Y)*sy), 0, rows-1)
		c1 := clampInt(int(math.Ceil(float64(t.X+t.Width-bounds.X)*sx)), c0+1, cols)
		r1 := clampInt(int(math.Ceil(float64(t.Y+t.Height-bounds.Y)*sy)), r0+1, rows)
		for r := r0; r < r1; r++ {
			for c := c0; c < c1; c++ {
				owner[r][c] = i
				text[r][c] = ' '
			}
		}
		label := []rune(t.Label)
		if width := c1 - c0; len(label) > width {
			label = label[:width]
		}
		mid := (r0 + r1 - 1) / 2
		start := c0 + (c1-c0-len(label))/2
		copy(text[mid][start:], label)
	}

	var b strings.Builder
	for r := range owner {
		for c := 0; c < cols; {
			end := c + 1
			for end < cols && owner[r][end] == owner[r][c] {
				end++
			}
			run := string(text[r][c:end])
			if o := owner[r][c]; o >= 0 {
				run = m.cellStyle(o).Render(run)
			}
			b.WriteString(run)
			c = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellStyle colors tag i; the most recently placed tag stands out.
func (m previewModel) cellStyle(i int) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	if i == m.shown-1 && !m.done() {
		return s.Background(colorWhite).Bold(true)
	}
	return s.Background(tagColors[i%len(tagColors)])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
