// Package cli implements the framecode command-line interface.
//
// The commands convert design documents into markup and stylesheets,
// inspect the intermediate styled tree, drive a selection session
// interactively and serve the pipeline to design-tool plugins. The CLI is
// built using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - convert: Generate markup and a stylesheet from a document
//   - tree: Print the styled tree, or draw it with Graphviz
//   - select: Pick nodes interactively and preview each rebuild
//   - serve: Expose the pipeline over HTTP and websockets
//
// # Configuration
//
// Defaults come from a TOML file (see package config); flags override it.
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
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

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Converted 12 nodes (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
