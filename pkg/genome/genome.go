package genome

import "fmt"

// Strand is the coding direction of a gene: +1 forward, -1 reverse.
type Strand int

const (
	Forward Strand = 1
	Reverse Strand = -1
)

// IsForward reports whether s points right on the map.
func (s Strand) IsForward() bool { return s > 0 }

// Gene is one predicted open reading frame.
type Gene struct {
	Contig string
	Pos    int // 1-based gene index along the contig
	Start  int
	End    int
	Strand Strand
}

// CasHit is an HMM match of a gene against a Cas protein family.
type CasHit struct {
	Contig string
	Pos    int
	Hmm    string // Cas family label, e.g. "Cas9_1_II"
	Start  int
	End    int
	Strand Strand
}

// Array is a predicted CRISPR array.
type Array struct {
	ID         string
	Contig     string
	Start      int
	End        int
	Prediction string
}

// Operon is a predicted Cas operon.
type Operon struct {
	ID         string
	Contig     string
	Positions  []int    // gene positions in the operon
	Genes      []string // gene labels, parallel to Positions
	Prediction string
	Start      int
	End        int
}

// SpansOrigin reports whether the operon wraps past the end of its contig.
// A single-coordinate operon (Start == End) does not wrap.
func (o Operon) SpansOrigin() bool { return o.Start > o.End }

// Prediction labels with special meaning for row selection.
const (
	PredictionAmbiguous = "Ambiguous"
	PredictionPartial   = "Partial"
	PredictionFalse     = "False"
)

// CrisprCas links a Cas operon to one or more CRISPR arrays.
type CrisprCas struct {
	Operon      string
	Contig      string
	CRISPRs     []string
	Prediction  string
	OperonStart int
	OperonEnd   int
}

// Span is the extent of one rendered locus in native contig coordinates.
type Span struct {
	Start       int
	End         int
	SeqSize     int // total length of the owning contig
	SpansOrigin bool
}

// Length returns the apparent length of the span. For origin-spanning
// spans this is End + SeqSize - Start; otherwise End - Start.
func (s Span) Length() int {
	if s.SpansOrigin {
		return s.End + s.SeqSize - s.Start
	}
	return s.End - s.Start
}

func (s Span) String() string {
	if s.SpansOrigin {
		return fmt.Sprintf("%d-%d (wraps %d)", s.Start, s.End, s.SeqSize)
	}
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
