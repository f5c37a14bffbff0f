// Package pipeline provides the map pipeline for locusmap.
//
// This package implements the read → layout → render pipeline shared by
// every command, so the CLI and tests see the same behaviour.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Read: Load the classifier tables into a [genome.Bundle]
//  2. Layout: Normalise loci and build drawing rows
//  3. Render: Draw the rows on a canvas and write plot.png
//
// All rows are built before the canvas is allocated, so a dangling
// reference aborts the run without leaving a partial file behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Out: "results/",
//	    DB:  "/opt/cctyper/db",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path)
//
// [genome.Bundle]: github.com/matzehuels/locusmap/pkg/genome.Bundle
package pipeline

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/locusmap/pkg/errors"
	"github.com/matzehuels/locusmap/pkg/fonts"
	"github.com/matzehuels/locusmap/pkg/layout"
)

const (
	// DefaultExpand is the number of context genes drawn on each side of a locus.
	DefaultExpand = layout.DefaultExpand

	// DefaultPlotExpand is the genomic width, in bp, reserved per context gene.
	DefaultPlotExpand = layout.DefaultMultiplier

	// DefaultScale is the drawing scale: 50 bp per pixel at scale 1.
	DefaultScale = 5.0

	// OutputFile is the name of the map written to the output directory.
	OutputFile = "plot.png"
)

// Options contains all configuration for a pipeline run.
// It can be loaded from a TOML file with [LoadConfig].
type Options struct {
	Out  string `toml:"out"`  // directory holding the input tables and receiving plot.png
	DB   string `toml:"db"`   // resource directory holding the font
	Font string `toml:"font"` // font file name inside DB

	Expand     int     `toml:"expand"`
	PlotExpand int     `toml:"plot_expand"`
	Scale      float64 `toml:"scale"`
	NoGrid     bool    `toml:"no_grid"`
	NoPlot     bool    `toml:"no_plot"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-"`
}

// Result describes the outcome of a pipeline run.
type Result struct {
	// Path is the written map, empty when Skipped.
	Path string

	// Skipped is set when plotting is disabled or there is nothing to draw.
	Skipped bool

	// Rows is the number of drawn loci.
	Rows int

	// Width and Height are the canvas size in pixels.
	Width, Height int
}

// DefaultOptions returns Options with every default applied, including
// DefaultExpand and DefaultPlotExpand.
func DefaultOptions() Options {
	o := Options{Expand: DefaultExpand, PlotExpand: DefaultPlotExpand}
	o.SetDefaults()
	return o
}

// SetDefaults fills zero-valued fields with defaults. Expand and PlotExpand
// are left alone: zero is valid for both (no context genes, no reserved
// flank width).
func (o *Options) SetDefaults() {
	if o.Font == "" {
		o.Font = fonts.DefaultFile
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks required fields and value ranges.
func (o *Options) Validate() error {
	if o.Out == "" {
		return errors.New(errors.ErrCodeConfiguration, "output directory is required")
	}
	if !o.NoPlot && o.DB == "" {
		return errors.New(errors.ErrCodeConfiguration, "resource directory (db) is required")
	}
	if o.Expand < 0 {
		return errors.New(errors.ErrCodeConfiguration, "expand must not be negative, got %d", o.Expand)
	}
	if o.PlotExpand < 0 {
		return errors.New(errors.ErrCodeConfiguration, "plot_expand must not be negative, got %d", o.PlotExpand)
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "scale must be positive, got %v", o.Scale)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// LoadConfig reads Options from a TOML file on top of DefaultOptions, so
// keys missing from the file keep their defaults.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrap(errors.ErrCodeConfiguration, err, "parse config %s", path)
	}
	return opts, nil
}
