package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/locusmap/pkg/pipeline"
)

// plotCommand creates the plot command, which reads the classifier tables
// in a directory and writes plot.png next to them.
func (c *CLI) plotCommand() *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "plot [dir]",
		Short: "Draw a map of the CRISPR-Cas loci in a classifier output directory",
		Long: `Draw a map of the CRISPR-Cas loci in a classifier output directory.

The directory must hold genes.tab, hmmer.tab and contigs.tab; the locus
tables (CRISPR_Cas.tab, cas_operons.tab, crisprs_all.tab and the orphan
tables) are optional. The map is written to plot.png in the same directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolveOptions(cmd.Flags(), args)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return runPlot(ctx, cmd.OutOrStdout(), opts)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func runPlot(ctx context.Context, w io.Writer, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	res, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}
	out := status{w}
	if res.Skipped {
		out.warn("Nothing to plot")
		return nil
	}

	prog.done(fmt.Sprintf("Plotted %d loci", res.Rows))
	out.success("Map written")
	out.file(res.Path)
	out.field("loci", res.Rows)
	out.field("size", fmt.Sprintf("%dx%d px", res.Width, res.Height))
	return nil
}
