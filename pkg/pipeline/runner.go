package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/locusmap/pkg/errors"
	"github.com/matzehuels/locusmap/pkg/fonts"
	"github.com/matzehuels/locusmap/pkg/genome"
	"github.com/matzehuels/locusmap/pkg/layout"
	"github.com/matzehuels/locusmap/pkg/observability"
	"github.com/matzehuels/locusmap/pkg/render"
	"github.com/matzehuels/locusmap/pkg/tables"
)

// Runner executes the map pipeline.
//
// The Runner holds no state besides its logger; bundles and options are
// passed per call.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute reads the tables in opts.Out and plots them.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	b, err := r.Read(ctx, opts.Out)
	if err != nil {
		return nil, err
	}
	return r.Plot(ctx, b, opts)
}

// Read loads the classifier tables from dir.
func (r *Runner) Read(ctx context.Context, dir string) (*genome.Bundle, error) {
	start := time.Now()
	b, err := tables.Load(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	r.Logger.Debug("read tables",
		"genes", len(b.Genes),
		"arrays", len(b.Arrays),
		"operons", len(b.Operons),
		"duration", time.Since(start))
	return b, nil
}

// Plot draws every locus of b and writes <opts.Out>/plot.png.
//
// Nothing is written when plotting is disabled or b has no loci. Fonts are
// loaded and all rows built before the canvas is allocated, so a
// configuration error or an unresolved reference leaves no file behind.
func (r *Runner) Plot(ctx context.Context, b *genome.Bundle, opts Options) (res *Result, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	if opts.NoPlot {
		r.Logger.Debug("plotting disabled")
		return &Result{Skipped: true}, nil
	}
	total := b.TotalRows()
	if total == 0 {
		r.Logger.Debug("no loci to plot")
		return &Result{Skipped: true}, nil
	}

	r.Logger.Info("Plotting map of CRISPR-Cas loci")
	start := time.Now()
	observability.Plot().OnPlotStart(ctx, total)
	defer func() {
		observability.Plot().OnPlotComplete(ctx, total, time.Since(start), err)
	}()

	faces, err := fonts.Load(opts.DB, opts.Font)
	if err != nil {
		return nil, err
	}

	l, err := layout.Build(b, layout.WithFlank(opts.Expand, opts.PlotExpand))
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	w, h := render.CanvasSize(l.Width, len(l.Rows), opts.Scale)
	canvas := render.NewCanvas(w, h)
	rn := render.New(canvas, faces, opts.Scale)
	if !opts.NoGrid {
		rn.DrawGrid()
	}
	for _, row := range l.Rows {
		r.Logger.Debug("Plotting "+row.ID, "category", row.Category)
		observability.Plot().OnRow(ctx, row.Index, row.ID, string(row.Category))
		rn.DrawRow(row)
	}

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", opts.Out)
	}
	path := filepath.Join(opts.Out, OutputFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}

	r.Logger.Info("wrote map",
		"path", path,
		"rows", len(l.Rows),
		"size", fmt.Sprintf("%dx%d", w, h),
		"duration", time.Since(start))

	return &Result{Path: path, Rows: len(l.Rows), Width: w, Height: h}, nil
}

// Locus is one CRISPR-Cas locus with its normalised span.
type Locus struct {
	ID         string
	Contig     string
	Prediction string
	Span       genome.Span
}

// Loci returns the normalised span of every CRISPR-Cas locus in b, in map
// order, without drawing anything.
func (r *Runner) Loci(ctx context.Context, b *genome.Bundle) ([]Locus, error) {
	spans, err := layout.Spans(b)
	if err != nil {
		return nil, fmt.Errorf("normalise loci: %w", err)
	}
	loci := b.CrisprCasLoci()
	out := make([]Locus, len(loci))
	for i, cc := range loci {
		out[i] = Locus{ID: cc.Operon, Contig: cc.Contig, Prediction: cc.Prediction, Span: spans[i]}
	}
	r.Logger.Debug("normalised loci", "count", len(out))
	return out, nil
}
