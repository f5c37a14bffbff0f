package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/locusmap/pkg/buildinfo"
	"github.com/matzehuels/locusmap/pkg/pipeline"
)

const (
	// appName is the application name used for display.
	appName = "locusmap"

	// EnvDB names the environment variable holding the default resource
	// directory. It may also be set in a .env file.
	EnvDB = "LOCUSMAP_DB"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Locusmap draws maps of predicted CRISPR-Cas loci",
		Long:         `Locusmap renders the output tables of a CRISPR-Cas classifier as a PNG map: one row per locus with gene arrows, CRISPR arrays and flanking genes, including loci that wrap the origin of circular contigs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.plotCommand())
	root.AddCommand(c.lociCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// optionFlags are the command-line overrides for pipeline.Options.
type optionFlags struct {
	config     string
	db         string
	font       string
	expand     int
	plotExpand int
	scale      float64
	noGrid     bool
	noPlot     bool
}

// register adds the option flags to fs, with pipeline defaults.
func (f *optionFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.config, "config", "c", "", "TOML config file")
	fs.StringVar(&f.db, "db", "", "resource directory holding the font (default $"+EnvDB+")")
	fs.StringVar(&f.font, "font", pipeline.DefaultOptions().Font, "font file inside the resource directory")
	fs.IntVar(&f.expand, "expand", pipeline.DefaultExpand, "context genes drawn on each side of a locus")
	fs.IntVar(&f.plotExpand, "plot-expand", pipeline.DefaultPlotExpand, "bp reserved per context gene")
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "drawing scale")
	fs.BoolVar(&f.noGrid, "no-grid", false, "do not draw the distance grid")
	fs.BoolVar(&f.noPlot, "no-plot", false, "read and check the tables without writing a map")
}

// resolveOptions merges, from lowest to highest precedence: pipeline
// defaults, the config file, $LOCUSMAP_DB, the directory argument and
// explicitly set flags.
func (f *optionFlags) resolveOptions(fs *pflag.FlagSet, args []string) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = pipeline.LoadConfig(f.config); err != nil {
			return opts, err
		}
	}

	if opts.DB == "" {
		opts.DB = os.Getenv(EnvDB)
	}
	if len(args) > 0 {
		opts.Out = args[0]
	}

	if fs.Changed("db") {
		opts.DB = f.db
	}
	if fs.Changed("font") {
		opts.Font = f.font
	}
	if fs.Changed("expand") {
		opts.Expand = f.expand
	}
	if fs.Changed("plot-expand") {
		opts.PlotExpand = f.plotExpand
	}
	if fs.Changed("scale") {
		opts.Scale = f.scale
	}
	if fs.Changed("no-grid") {
		opts.NoGrid = f.noGrid
	}
	if fs.Changed("no-plot") {
		opts.NoPlot = f.noPlot
	}
	return opts, nil
}
