// Package cli implements the locusmap command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Every
// command accepts --verbose (-v) for debug output, which includes one line
// per drawn locus. Loggers travel through context.Context so that helpers
// need no extra parameters.
//
// # Commands
//
//   - plot: Draw plot.png for a classifier output directory
//   - loci: Print the normalised span of every CRISPR-Cas locus
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Options come from, in increasing precedence: built-in defaults, a TOML
// file given with --config, the LOCUSMAP_DB environment variable (also read
// from a .env file), the directory argument and explicit flags.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, with timestamps such as
// "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a step took. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond, e.g.
// "Plotted 12 loci (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
