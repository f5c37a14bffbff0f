package tables

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/grailbio/base/tsv"

	"github.com/matzehuels/locusmap/pkg/errors"
	"github.com/matzehuels/locusmap/pkg/genome"
	"github.com/matzehuels/locusmap/pkg/observability"
)

// Table file names inside the input directory.
const (
	GenesFile        = "genes.tab"
	HitsFile         = "hmmer.tab"
	ContigsFile      = "contigs.tab"
	ArraysFile       = "crisprs_all.tab"
	OperonsFile      = "cas_operons.tab"
	CrisprCasFile    = "CRISPR_Cas.tab"
	OrphanCasFile    = "cas_operons_orphan.tab"
	OrphanArraysFile = "crisprs_orphan.tab"
	OriginLinksFile  = "origin_links.tab"
)

// Load reads every table in dir into a Bundle.
func Load(ctx context.Context, dir string) (*genome.Bundle, error) {
	b := &genome.Bundle{}
	var err error

	if b.Genes, err = required(ctx, dir, GenesFile, geneRow.gene); err != nil {
		return nil, err
	}
	if b.CasHits, err = required(ctx, dir, HitsFile, hitRow.hit); err != nil {
		return nil, err
	}
	if b.ContigLengths, err = contigLengths(ctx, dir); err != nil {
		return nil, err
	}

	if b.Arrays, _, err = read(ctx, dir, ArraysFile, arrayRow.array); err != nil {
		return nil, err
	}
	if b.Operons, _, err = read(ctx, dir, OperonsFile, operonRow.operon); err != nil {
		return nil, err
	}

	if b.CrisprCas, err = optional(ctx, dir, CrisprCasFile, crisprCasRow.crisprCas); err != nil {
		return nil, err
	}
	if b.OrphanCas, err = optional(ctx, dir, OrphanCasFile, operonRow.operon); err != nil {
		return nil, err
	}
	if b.OrphanArrays, err = optional(ctx, dir, OrphanArraysFile, arrayRow.array); err != nil {
		return nil, err
	}

	if b.OriginStart, b.OriginEnd, err = originLinks(ctx, dir); err != nil {
		return nil, err
	}
	return b, nil
}

// read parses dir/name with convert applied to every row. A missing file
// reports ok == false and no error.
func read[R, T any](ctx context.Context, dir, name string, convert func(R) (T, error)) (rows []T, ok bool, err error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		observability.Tables().OnTableRead(ctx, name, 0, false)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	r := tsv.NewReader(f)
	r.HasHeaderRow = true
	r.UseHeaderNames = true

	for line := 2; ; line++ {
		var raw R
		if err := r.Read(&raw); err != nil {
			if err == io.EOF {
				break
			}
			return nil, true, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", name)
		}
		v, err := convert(raw)
		if err != nil {
			return nil, true, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s:%d", name, line)
		}
		rows = append(rows, v)
	}
	observability.Tables().OnTableRead(ctx, name, len(rows), true)
	return rows, true, nil
}

func required[R, T any](ctx context.Context, dir, name string, convert func(R) (T, error)) ([]T, error) {
	rows, ok, err := read(ctx, dir, name, convert)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingTable, "%s not found in %s", name, dir)
	}
	return rows, nil
}

func optional[R, T any](ctx context.Context, dir, name string, convert func(R) (T, error)) (genome.Table[T], error) {
	rows, ok, err := read(ctx, dir, name, convert)
	if err != nil || !ok {
		return genome.Absent[T](), err
	}
	return genome.Present(rows), nil
}

func contigLengths(ctx context.Context, dir string) (map[string]int, error) {
	rows, err := required(ctx, dir, ContigsFile, func(r contigRow) (contigRow, error) { return r, nil })
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		if _, ok := out[r.Contig]; !ok {
			out[r.Contig] = int(r.Length)
		}
	}
	return out, nil
}

// originLinks reads origin_links.tab into the origin-start and origin-end
// maps. A missing file gives empty maps.
func originLinks(ctx context.Context, dir string) (start, end map[string][]string, err error) {
	rows, _, err := read(ctx, dir, OriginLinksFile, func(r originRow) (originRow, error) { return r, nil })
	if err != nil {
		return nil, nil, err
	}
	start = make(map[string][]string)
	end = make(map[string][]string)
	for _, r := range rows {
		ids, err := ParseStrings(r.CRISPRs)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: operon %s", OriginLinksFile, r.Operon)
		}
		switch r.Side {
		case SideStart:
			start[r.Operon] = append(start[r.Operon], ids...)
		case SideEnd:
			end[r.Operon] = append(end[r.Operon], ids...)
		default:
			return nil, nil, errors.New(errors.ErrCodeInvalidInput,
				"%s: operon %s: side must be %q or %q, got %q", OriginLinksFile, r.Operon, SideStart, SideEnd, r.Side)
		}
	}
	return start, end, nil
}
