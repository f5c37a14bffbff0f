package layout

import "github.com/matzehuels/locusmap/pkg/genome"

// Longest returns the longest apparent length across orphan arrays, Cas
// operons and normalised CRISPR-Cas spans. Empty inputs contribute 0.
//
// Operons are split into linear (Start < End) and wrapping (Start > End)
// subsets; wrapping lengths need the contig length and fail with
// LOOKUP_MISS if it is unknown.
func Longest(x *genome.Index, arrays []genome.Array, operons []genome.Operon, loci []genome.Span) (int, error) {
	arrayMax := 0
	for _, a := range arrays {
		arrayMax = max(arrayMax, a.End-a.Start)
	}

	wrapped, err := wrappedLengths(x, operons)
	if err != nil {
		return 0, err
	}
	operonMax := max(maxOf(linearLengths(operons)), maxOf(wrapped))

	locusMax := 0
	for _, s := range loci {
		locusMax = max(locusMax, s.Length())
	}

	return max(arrayMax, operonMax, locusMax), nil
}

func linearLengths(operons []genome.Operon) []int {
	var out []int
	for _, o := range operons {
		if o.Start < o.End {
			out = append(out, o.End-o.Start)
		}
	}
	return out
}

func wrappedLengths(x *genome.Index, operons []genome.Operon) ([]int, error) {
	var out []int
	for _, o := range operons {
		if !o.SpansOrigin() {
			continue
		}
		size, err := x.ContigLength(o.Contig)
		if err != nil {
			return nil, err
		}
		out = append(out, genome.Span{Start: o.Start, End: o.End, SeqSize: size, SpansOrigin: true}.Length())
	}
	return out, nil
}

func maxOf(xs []int) int {
	m := 0
	for _, v := range xs {
		m = max(m, v)
	}
	return m
}
