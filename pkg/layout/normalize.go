package layout

import "github.com/matzehuels/locusmap/pkg/genome"

// Normalizer computes the canonical span of each CRISPR-Cas locus, combining
// the operon with its linked arrays. Results are memoised per operon id so
// the width pass and the drawing pass see the same span.
type Normalizer struct {
	index       *genome.Index
	originStart map[string][]string
	originEnd   map[string][]string
	spans       map[string]genome.Span
}

// NewNormalizer returns a Normalizer over the bundle's origin-adjacency maps.
func NewNormalizer(x *genome.Index, b *genome.Bundle) *Normalizer {
	return &Normalizer{
		index:       x,
		originStart: b.OriginStart,
		originEnd:   b.OriginEnd,
		spans:       make(map[string]genome.Span),
	}
}

// Span returns the normalised span of cc.
//
// Loci not registered in either origin map span from the smaller of the
// operon start and the linked array starts to the larger of the ends, and
// wrap only if the operon itself wraps; for a wrapping operon each linked
// array extends the side of the origin it lies on. A locus in the origin-start map
// takes its end from that group's arrays; one in the origin-end map takes
// its start from that group's arrays. Both rules may apply, and either one
// forces the span to wrap.
func (n *Normalizer) Span(cc genome.CrisprCas) (genome.Span, error) {
	if s, ok := n.spans[cc.Operon]; ok {
		return s, nil
	}

	seqSize, err := n.index.ContigLength(cc.Contig)
	if err != nil {
		return genome.Span{}, err
	}

	s := genome.Span{
		Start:       cc.OperonStart,
		End:         cc.OperonEnd,
		SeqSize:     seqSize,
		SpansOrigin: cc.OperonStart > cc.OperonEnd,
	}

	atStart, inStart := n.originStart[cc.Operon]
	atEnd, inEnd := n.originEnd[cc.Operon]

	if !inStart && !inEnd {
		linked, err := n.index.Arrays(cc.CRISPRs)
		if err != nil {
			return genome.Span{}, err
		}
		for _, a := range linked {
			switch {
			case !s.SpansOrigin:
				s.Start = min(s.Start, a.Start)
				s.End = max(s.End, a.End)
			case afterOrigin(a, cc.OperonStart, cc.OperonEnd):
				s.End = max(s.End, a.End)
			default:
				s.Start = min(s.Start, a.Start)
			}
		}
	}

	if inStart {
		group, err := n.index.Arrays(atStart)
		if err != nil {
			return genome.Span{}, err
		}
		if len(group) > 0 {
			s.End = group[0].End
			for _, a := range group[1:] {
				s.End = max(s.End, a.End)
			}
		}
		s.SpansOrigin = true
	}

	if inEnd {
		group, err := n.index.Arrays(atEnd)
		if err != nil {
			return genome.Span{}, err
		}
		if len(group) > 0 {
			s.Start = group[0].Start
			for _, a := range group[1:] {
				s.Start = min(s.Start, a.Start)
			}
		}
		s.SpansOrigin = true
	}

	n.spans[cc.Operon] = s
	return s, nil
}

// afterOrigin reports whether array a, linked to an operon that wraps from
// opStart past the origin to opEnd, lies on the post-origin side: it starts
// before the operon end, or is nearer to the operon end than to its start.
func afterOrigin(a genome.Array, opStart, opEnd int) bool {
	if a.Start >= opStart {
		return false
	}
	if a.Start <= opEnd {
		return true
	}
	return a.Start-opEnd < opStart-a.End
}
