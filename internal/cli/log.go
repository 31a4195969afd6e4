// Package cli implements the tagcloud command-line interface.
//
// The commands cover the whole pipeline and its pieces: generate runs
// source → layout → render in one go, layout and render split it at the
// layout.json boundary, inspect and preview show a layout in the terminal, and
// serve exposes the same pipeline over HTTP. Built on cobra, with
// charmbracelet/log for logging and lipgloss/bubbletea for terminal output.
//
// # Commands
//
//   - generate: Build tags from a source, place them and render artifacts
//   - layout: Place tags and write a layout.json document
//   - render: Render a layout.json to SVG, PNG, PDF, JSON or DOT
//   - inspect: Print the placed tags of a layout as a table
//   - preview: Animate placement in the terminal
//   - serve: Run the HTTP API
//   - cache: Manage the local layout and artifact cache
//
// # Configuration
//
// Options may come from a TOML file (--config, or the default location in the
// user config directory). Flags given on the command line win over the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// per-tag placement diagnostics from the engine.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// e.g. "Placed 42 tags (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
