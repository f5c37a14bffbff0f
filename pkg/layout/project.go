package layout

import "github.com/matzehuels/locusmap/pkg/genome"

// Bound selects which comparison a coordinate uses at the wrap point.
type Bound int

const (
	// StartBound is used for feature starts: x >= origin stays unwrapped.
	StartBound Bound = iota
	// EndBound is used for feature ends: x > origin stays unwrapped.
	EndBound
)

// Projector maps native contig coordinates of one locus into local row
// coordinates.
type Projector struct {
	Offset      int // reserved flank width plus one
	Origin      int // native coordinate drawn at Offset
	SeqSize     int
	SpansOrigin bool
}

// NewProjector returns the projector for a locus whose reference origin is
// span.Start.
func NewProjector(offset int, span genome.Span) Projector {
	return Projector{
		Offset:      offset,
		Origin:      span.Start,
		SeqSize:     span.SeqSize,
		SpansOrigin: span.SpansOrigin,
	}
}

// Project maps x to local coordinates.
func (p Projector) Project(x int, b Bound) int {
	if !p.SpansOrigin || p.unwrapped(x, b) {
		return p.Offset + x - p.Origin
	}
	return p.Offset + x + p.SeqSize - p.Origin
}

func (p Projector) unwrapped(x int, b Bound) bool {
	if b == EndBound {
		return x > p.Origin
	}
	return x >= p.Origin
}

// Interval projects a start/end pair.
func (p Projector) Interval(start, end int) (int, int) {
	return p.Project(start, StartBound), p.Project(end, EndBound)
}

// OriginMark returns the local coordinate of contig position 0 for a
// wrapping locus.
func (p Projector) OriginMark() int {
	return p.Offset + p.SeqSize - p.Origin
}
