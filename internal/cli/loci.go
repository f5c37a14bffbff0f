package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/locusmap/pkg/pipeline"
)

// lociCommand creates the loci command, which prints the normalised span
// of every CRISPR-Cas locus without drawing.
func (c *CLI) lociCommand() *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "loci [dir]",
		Short: "List CRISPR-Cas loci with their normalised spans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolveOptions(cmd.Flags(), args)
			if err != nil {
				return err
			}
			if opts.Out == "" {
				return fmt.Errorf("input directory is required")
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return runLoci(ctx, cmd.OutOrStdout(), opts.Out)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "TOML config file")
	return cmd
}

func runLoci(ctx context.Context, w io.Writer, dir string) error {
	r := pipeline.NewRunner(loggerFromContext(ctx))
	b, err := r.Read(ctx, dir)
	if err != nil {
		return err
	}
	loci, err := r.Loci(ctx, b)
	if err != nil {
		return err
	}
	if len(loci) == 0 {
		status{w}.warn("No CRISPR-Cas loci")
		return nil
	}

	fmt.Fprintln(w, StyleTitle.Render("locus\tcontig\tprediction\tstart\tend\tlength\tspans_origin"))
	for _, l := range loci {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%t\n",
			l.ID, l.Contig, l.Prediction, l.Span.Start, l.Span.End, l.Span.Length(), l.Span.SpansOrigin)
	}
	return nil
}
