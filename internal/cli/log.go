// Package cli implements the floorsmith command-line interface.
//
// Commands read room programs (TOML, YAML or JSON), synthesize floor plans,
// overlay structural columns, render SVG and adjacency diagrams, edit plans
// interactively in the terminal and serve the HTTP API. The CLI is built on
// cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - generate: Synthesize one variant and write SVG/JSON/DOT outputs
//   - variants: Synthesize all four variants side by side
//   - columns: Compute the column grid of a saved plan
//   - render: Render a saved (possibly edited) plan
//   - validate: Report overlap, overflow and score of a saved plan
//   - palette: List the room catalogue
//   - edit: Drag and resize rooms with the mouse in a terminal UI
//   - serve: Run the HTTP API
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a stderr-style logger with short wall-clock timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a command stage took. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Synthesized 4 variants (12ms)".
// keyvals are passed through as structured fields.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or log.Default() outside a
// command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
