package layout

import (
	"github.com/matzehuels/locusmap/pkg/genome"
)

// Default flank settings.
const (
	DefaultExpand     = 4
	DefaultMultiplier = 500
)

// Option configures Build.
type Option func(*builder)

// WithFlank sets the number of context genes drawn on each side of a locus
// and the genomic width reserved per context gene.
func WithFlank(expand, multiplier int) Option {
	return func(b *builder) {
		b.expand = expand
		b.multiplier = multiplier
	}
}

type builder struct {
	expand     int
	multiplier int

	index    *genome.Index
	norm     *Normalizer
	expander Expander
}

func (b *builder) margin() int { return b.expand * b.multiplier }
func (b *builder) offset() int { return b.margin() + 1 }

// Build lays out every locus of bundle. It fails on the first unresolved
// reference; no partial layout is returned.
func Build(bundle *genome.Bundle, opts ...Option) (Layout, error) {
	b := &builder{expand: DefaultExpand, multiplier: DefaultMultiplier}
	for _, opt := range opts {
		opt(b)
	}
	b.index = genome.NewIndex(bundle)
	b.norm = NewNormalizer(b.index, bundle)
	b.expander = NewExpander(b.index, b.expand)

	loci := bundle.CrisprCasLoci()
	cas := bundle.CasRows()
	arrays := bundle.ArrayRows()

	spans := make([]genome.Span, 0, len(loci))
	for _, cc := range loci {
		s, err := b.norm.Span(cc)
		if err != nil {
			return Layout{}, err
		}
		spans = append(spans, s)
	}

	longest, err := Longest(b.index, arrays, cas, spans)
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Longest: longest,
		Width:   longest + 2*b.margin(),
		Rows:    make([]Row, 0, len(loci)+len(cas)+len(arrays)),
	}

	for _, cc := range loci {
		r, err := b.crisprCasRow(cc)
		if err != nil {
			return Layout{}, err
		}
		l.Rows = append(l.Rows, r)
	}
	for _, o := range cas {
		r, err := b.casRow(o)
		if err != nil {
			return Layout{}, err
		}
		l.Rows = append(l.Rows, r)
	}
	for _, a := range arrays {
		l.Rows = append(l.Rows, b.arrayRow(a))
	}

	for i := range l.Rows {
		l.Rows[i].Index = i + 1
	}
	return l, nil
}

// Spans returns the normalised span of every CRISPR-Cas locus in row order.
func Spans(bundle *genome.Bundle) ([]genome.Span, error) {
	x := genome.NewIndex(bundle)
	norm := NewNormalizer(x, bundle)
	var out []genome.Span
	for _, cc := range bundle.CrisprCasLoci() {
		s, err := norm.Span(cc)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (b *builder) crisprCasRow(cc genome.CrisprCas) (Row, error) {
	span, err := b.norm.Span(cc)
	if err != nil {
		return Row{}, err
	}
	op, err := b.index.Operon(cc.Operon)
	if err != nil {
		return Row{}, err
	}
	p := NewProjector(b.offset(), span)

	genes, err := b.locusGenes(cc.Contig, op, p)
	if err != nil {
		return Row{}, err
	}
	linked, err := b.index.Arrays(cc.CRISPRs)
	if err != nil {
		return Row{}, err
	}

	els := genes
	els = append(els, b.expander.Flank(cc.Contig, op.Positions, p, false)...)
	for _, a := range linked {
		els = append(els, arrayElement(a, p))
	}
	SortElements(els)

	return Row{
		ID:          cc.Operon,
		Contig:      cc.Contig,
		Prediction:  cc.Prediction,
		Category:    CategoryCrisprCas,
		HeaderStart: span.Start,
		HeaderEnd:   span.End,
		Span:        span,
		Elements:    els,
		Origin:      originMark(p),
	}, nil
}

func (b *builder) casRow(op genome.Operon) (Row, error) {
	seqSize, err := b.index.ContigLength(op.Contig)
	if err != nil {
		return Row{}, err
	}
	span := genome.Span{Start: op.Start, End: op.End, SeqSize: seqSize, SpansOrigin: op.SpansOrigin()}
	p := NewProjector(b.offset(), span)

	els, err := b.locusGenes(op.Contig, op, p)
	if err != nil {
		return Row{}, err
	}
	headerStart, headerEnd, err := b.hitExtent(op)
	if err != nil {
		return Row{}, err
	}
	els = append(els, b.expander.Flank(op.Contig, op.Positions, p, false)...)
	SortElements(els)

	return Row{
		ID:          op.ID,
		Contig:      op.Contig,
		Prediction:  op.Prediction,
		Category:    CategoryCas,
		HeaderStart: headerStart,
		HeaderEnd:   headerEnd,
		Span:        span,
		Elements:    els,
		Origin:      originMark(p),
	}, nil
}

func (b *builder) arrayRow(a genome.Array) Row {
	span := genome.Span{Start: a.Start, End: a.End}
	p := NewProjector(b.offset(), span)

	var els []Element
	if b.expand > 0 {
		before, after := b.neighbours(a)
		els = append(els, b.expander.Flank(a.Contig, []int{before, after}, p, true)...)
		for _, n := range b.nearbyArrays(a) {
			els = append(els, arrayElement(n, p))
		}
	}
	els = append(els, arrayElement(a, p))
	SortElements(els)

	return Row{
		ID:          a.ID,
		Contig:      a.Contig,
		Prediction:  a.Prediction,
		Category:    CategoryCRISPR,
		HeaderStart: a.Start,
		HeaderEnd:   a.End,
		Span:        span,
		Elements:    els,
	}
}

// locusGenes returns the operon's own genes, with coordinates and strand
// taken from the Cas HMM hits at each position.
func (b *builder) locusGenes(contig string, op genome.Operon, p Projector) ([]Element, error) {
	out := make([]Element, 0, len(op.Positions))
	for i, pos := range op.Positions {
		h, err := b.index.CasHit(contig, pos)
		if err != nil {
			return nil, err
		}
		label := h.Hmm
		if i < len(op.Genes) {
			label = op.Genes[i]
		}
		start, end := p.Interval(h.Start, h.End)
		out = append(out, Element{
			Kind:   KindGene,
			Start:  start,
			End:    end,
			Strand: h.Strand,
			Label:  label,
			Color:  ColorLocusGene,
		})
	}
	return out, nil
}

func (b *builder) hitExtent(op genome.Operon) (int, int, error) {
	var start, end int
	for i, pos := range op.Positions {
		h, err := b.index.CasHit(op.Contig, pos)
		if err != nil {
			return 0, 0, err
		}
		if i == 0 {
			start, end = h.Start, h.End
			continue
		}
		start = min(start, h.Start)
		end = max(end, h.End)
	}
	return start, end, nil
}

// neighbours returns the position of the last gene ending before a and the
// first gene starting after it, 0 where there is none.
func (b *builder) neighbours(a genome.Array) (before, after int) {
	for _, g := range b.index.GenesOn(a.Contig) {
		if g.End < a.Start {
			before = g.Pos
		}
		if g.Start > a.End && after == 0 {
			after = g.Pos
		}
	}
	return before, after
}

// nearbyArrays returns the other arrays on a's contig that overlap the flank
// margin around a.
func (b *builder) nearbyArrays(a genome.Array) []genome.Array {
	lo, hi := a.Start-b.margin(), a.End+b.margin()
	var out []genome.Array
	for _, o := range b.index.ArraysOn(a.Contig) {
		if o.ID == a.ID {
			continue
		}
		if o.End > lo && o.Start < hi {
			out = append(out, o)
		}
	}
	return out
}

func arrayElement(a genome.Array, p Projector) Element {
	start, end := p.Interval(a.Start, a.End)
	return Element{
		Kind:  KindArray,
		Start: start,
		End:   end,
		Label: a.Prediction,
		Color: ColorArray,
	}
}

func originMark(p Projector) *int {
	if !p.SpansOrigin {
		return nil
	}
	x := p.OriginMark()
	return &x
}
