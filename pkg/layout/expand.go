package layout

import (
	"slices"
	"strconv"

	"github.com/matzehuels/locusmap/pkg/genome"
)

// Expander adds flanking context genes around a locus.
type Expander struct {
	index  *genome.Index
	expand int // genes on each side
}

// NewExpander returns an Expander adding expand genes on each side.
func NewExpander(x *genome.Index, expand int) Expander {
	return Expander{index: x, expand: expand}
}

// Window returns the gene positions to add around positions.
//
// For a gene locus the window runs from expand positions before the first
// locus gene to expand positions after the last, without the locus genes
// themselves. For an array locus, positions holds the nearest gene before
// and after the array, 0 where the array lies past the end of the genes,
// and the window takes expand genes on each side counting the anchors.
func (e Expander) Window(positions []int, arrayOnly bool) []int {
	if len(positions) == 0 {
		return nil
	}
	if arrayOnly {
		return e.arrayWindow(positions[0], positions[len(positions)-1])
	}
	first, last := slices.Min(positions), slices.Max(positions)

	var out []int
	for p := first - e.expand; p <= last+e.expand; p++ {
		if !slices.Contains(positions, p) {
			out = append(out, p)
		}
	}
	return out
}

func (e Expander) arrayWindow(before, after int) []int {
	lo, hi := before-e.expand+1, after+e.expand-1
	switch {
	case before == 0 && after == 0:
		return nil
	case before == 0:
		lo = after
	case after == 0:
		hi = before
	}
	var out []int
	for p := max(lo, 1); p <= hi; p++ {
		out = append(out, p)
	}
	return out
}

// Flank returns the flanking genes of a locus on contig, projected with p.
// Positions without a gene (past either end of the contig) are skipped.
// Genes with a Cas HMM hit are coloured ColorFlankCas and labelled with the
// HMM name; the rest are ColorFlankGene labelled with their position.
func (e Expander) Flank(contig string, positions []int, p Projector, arrayOnly bool) []Element {
	var out []Element
	for _, pos := range e.Window(positions, arrayOnly) {
		g, ok := e.index.GeneAt(contig, pos)
		if !ok {
			continue
		}
		start, end := p.Interval(g.Start, g.End)
		el := Element{
			Kind:   KindGene,
			Start:  start,
			End:    end,
			Strand: g.Strand,
			Label:  strconv.Itoa(g.Pos),
			Color:  ColorFlankGene,
		}
		if h, ok := e.index.HitAt(contig, pos); ok {
			el.Label = h.Hmm
			el.Color = ColorFlankCas
		}
		out = append(out, el)
	}
	return out
}
