package pipeline

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/locusmap/pkg/errors"
	"github.com/matzehuels/locusmap/pkg/observability"
)

func writeFile(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

// fixture writes a complete input directory holding one CRISPR-Cas locus
// that wraps the origin of a 10 kb contig, and a resource directory with a
// usable font.
func fixture(t *testing.T) (out, db string) {
	t.Helper()
	out, db = t.TempDir(), t.TempDir()

	writeFile(t, out, "genes.tab",
		"Contig\tPos\tStart\tEnd\tStrand",
		"c1\t1\t9900\t9950\t1",
		"c1\t2\t9960\t9990\t1",
		"c1\t3\t50\t200\t-1",
		"c1\t4\t400\t600\t1",
	)
	writeFile(t, out, "hmmer.tab",
		"Acc\tPos\tHmm\tstart\tend\tstrand",
		"c1\t1\tCas1_0_I-E\t9900\t9950\t1",
		"c1\t2\tCas2_0_I-E\t9960\t9990\t1",
		"c1\t3\tCas3_0_I-E\t50\t200\t-1",
	)
	writeFile(t, out, "contigs.tab",
		"Contig\tLength",
		"c1\t10000",
	)
	writeFile(t, out, "crisprs_all.tab",
		"Contig\tCRISPR\tStart\tEnd\tPrediction",
		"c1\tc1_1\t150\t300\tI-E",
	)
	writeFile(t, out, "cas_operons.tab",
		"Contig\tOperon\tStart\tEnd\tPrediction\tPositions\tGenes",
		"c1\tc1@1\t9900\t200\tI-E\t[1, 2, 3]\t['Cas1_0_I-E', 'Cas2_0_I-E', 'Cas3_0_I-E']",
	)
	writeFile(t, out, "CRISPR_Cas.tab",
		"Contig\tOperon\tOperon_Pos\tPrediction\tCRISPRs",
		"c1\tc1@1\t[9900, 200]\tI-E\t['c1_1']",
	)
	writeFile(t, out, "crisprs_orphan.tab",
		"Contig\tCRISPR\tStart\tEnd\tPrediction",
	)

	if err := os.WriteFile(filepath.Join(db, "arial.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	return out, db
}

func TestExecute(t *testing.T) {
	out, db := fixture(t)

	opts := DefaultOptions()
	opts.Out, opts.DB, opts.Scale = out, db, 1

	res, err := NewRunner(nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Skipped || res.Rows != 1 {
		t.Fatalf("Execute() = %+v, want one drawn row", res)
	}

	// longest 400 + 2*4*500 flank = 4400 bp; 4400/50 + 10 = 98 px wide,
	// (1+1)*20 = 40 px high.
	if res.Width != 98 || res.Height != 40 {
		t.Errorf("canvas = %dx%d, want 98x40", res.Width, res.Height)
	}

	f, err := os.Open(filepath.Join(out, OutputFile))
	if err != nil {
		t.Fatalf("plot.png not written: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 98 || cfg.Height != 40 {
		t.Errorf("png = %dx%d, want 98x40", cfg.Width, cfg.Height)
	}
}

func TestExecuteSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, out string)
		opts  func(o *Options)
	}{
		{
			name: "plotting disabled",
			opts: func(o *Options) { o.NoPlot = true },
		},
		{
			name: "no loci",
			setup: func(t *testing.T, out string) {
				for _, f := range []string{"crisprs_all.tab", "cas_operons.tab", "CRISPR_Cas.tab"} {
					if err := os.Remove(filepath.Join(out, f)); err != nil {
						t.Fatal(err)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, db := fixture(t)
			if tt.setup != nil {
				tt.setup(t, out)
			}
			opts := Options{Out: out, DB: db}
			if tt.opts != nil {
				tt.opts(&opts)
			}

			res, err := NewRunner(nil).Execute(context.Background(), opts)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !res.Skipped || res.Path != "" {
				t.Errorf("Execute() = %+v, want skipped", res)
			}
			if _, err := os.Stat(filepath.Join(out, OutputFile)); !os.IsNotExist(err) {
				t.Errorf("plot.png should not exist, stat error = %v", err)
			}
		})
	}
}

func TestExecuteFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, out, db string)
		code  errors.Code
	}{
		{
			name: "dangling array reference",
			setup: func(t *testing.T, out, _ string) {
				writeFile(t, out, "CRISPR_Cas.tab",
					"Contig\tOperon\tOperon_Pos\tPrediction\tCRISPRs",
					"c1\tc1@1\t[9900, 200]\tI-E\t['c1_9']",
				)
			},
			code: errors.ErrCodeLookupMiss,
		},
		{
			name: "unknown contig",
			setup: func(t *testing.T, out, _ string) {
				writeFile(t, out, "contigs.tab", "Contig\tLength", "c2\t10")
			},
			code: errors.ErrCodeLookupMiss,
		},
		{
			name: "missing font",
			setup: func(t *testing.T, _, db string) {
				if err := os.Remove(filepath.Join(db, "arial.ttf")); err != nil {
					t.Fatal(err)
				}
			},
			code: errors.ErrCodeConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, db := fixture(t)
			tt.setup(t, out, db)

			_, err := NewRunner(nil).Execute(context.Background(), Options{Out: out, DB: db})
			if !errors.Is(err, tt.code) {
				t.Fatalf("Execute() error = %v, want %s", err, tt.code)
			}
			if _, err := os.Stat(filepath.Join(out, OutputFile)); !os.IsNotExist(err) {
				t.Errorf("plot.png should not exist after a failed run")
			}
		})
	}
}

func TestLoci(t *testing.T) {
	out, _ := fixture(t)
	r := NewRunner(nil)
	b, err := r.Read(context.Background(), out)
	if err != nil {
		t.Fatal(err)
	}

	loci, err := r.Loci(context.Background(), b)
	if err != nil {
		t.Fatalf("Loci() error = %v", err)
	}
	if len(loci) != 1 {
		t.Fatalf("len(Loci()) = %d, want 1", len(loci))
	}
	s := loci[0].Span
	if s.Start != 9900 || s.End != 300 || !s.SpansOrigin || s.Length() != 400 {
		t.Errorf("span = %+v, want 9900-300 across the origin", s)
	}
}

type recordingHooks struct {
	observability.NoopPlotHooks
	started, rows, completed int
	err                      error
}

func (h *recordingHooks) OnPlotStart(context.Context, int) { h.started++ }

func (h *recordingHooks) OnRow(context.Context, int, string, string) { h.rows++ }

func (h *recordingHooks) OnPlotComplete(_ context.Context, _ int, _ time.Duration, err error) {
	h.completed++
	h.err = err
}

func TestPlotHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPlotHooks(hooks)
	defer observability.Reset()

	out, db := fixture(t)
	if _, err := NewRunner(nil).Execute(context.Background(), Options{Out: out, DB: db, Scale: 1}); err != nil {
		t.Fatal(err)
	}
	if hooks.started != 1 || hooks.rows != 1 || hooks.completed != 1 || hooks.err != nil {
		t.Errorf("hooks = %+v, want one start, row and clean completion", hooks)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid", Options{Out: "o", DB: "d"}, false},
		{"no output", Options{DB: "d"}, true},
		{"no db", Options{Out: "o"}, true},
		{"no db without plotting", Options{Out: "o", NoPlot: true}, false},
		{"negative expand", Options{Out: "o", DB: "d", Expand: -1}, true},
		{"zero plot expand", Options{Out: "o", DB: "d", Expand: 4}, false},
		{"negative plot expand", Options{Out: "o", DB: "d", PlotExpand: -1}, true},
		{"negative scale", Options{Out: "o", DB: "d", Scale: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Errorf("error code = %s, want CONFIGURATION", errors.GetCode(err))
			}
		})
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.Font != "arial.ttf" || o.Scale != DefaultScale || o.Logger == nil {
		t.Errorf("SetDefaults() = %+v", o)
	}
	if o.Expand != 0 || o.PlotExpand != 0 {
		t.Errorf("SetDefaults() Expand, PlotExpand = %d, %d; want 0 kept", o.Expand, o.PlotExpand)
	}
	if d := DefaultOptions(); d.Expand != DefaultExpand || d.PlotExpand != DefaultPlotExpand {
		t.Errorf("DefaultOptions() Expand, PlotExpand = %d, %d; want %d, %d",
			d.Expand, d.PlotExpand, DefaultExpand, DefaultPlotExpand)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locusmap.toml")
	writeFile(t, dir, "locusmap.toml",
		`out = "results"`,
		`db = "/opt/db"`,
		`scale = 10.0`,
		`expand = 0`,
		`no_grid = true`,
	)

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if opts.Out != "results" || opts.DB != "/opt/db" || opts.Scale != 10 || !opts.NoGrid {
		t.Errorf("LoadConfig() = %+v", opts)
	}
	if opts.Expand != 0 || opts.PlotExpand != DefaultPlotExpand || opts.Font != "arial.ttf" {
		t.Errorf("LoadConfig() defaults = expand %d, plot_expand %d, font %s", opts.Expand, opts.PlotExpand, opts.Font)
	}

	writeFile(t, dir, "flush.toml", `out = "o"`, `db = "d"`, `plot_expand = 0`)
	flush, err := LoadConfig(filepath.Join(dir, "flush.toml"))
	if err != nil {
		t.Fatalf("LoadConfig(flush) error = %v", err)
	}
	if err := flush.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if flush.PlotExpand != 0 || flush.Expand != DefaultExpand {
		t.Errorf("plot_expand = 0: PlotExpand, Expand = %d, %d; want 0, %d", flush.PlotExpand, flush.Expand, DefaultExpand)
	}

	writeFile(t, dir, "bad.toml", `scale = "big"`)
	if _, err := LoadConfig(filepath.Join(dir, "bad.toml")); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("LoadConfig(bad) error = %v, want CONFIGURATION", err)
	}
	if _, err := LoadConfig(filepath.Join(dir, "nope.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
