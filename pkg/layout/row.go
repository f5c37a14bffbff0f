package layout

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/matzehuels/locusmap/pkg/genome"
)

// Kind distinguishes the two drawable element types.
type Kind int

const (
	KindGene Kind = iota
	KindArray
)

// Element colours.
var (
	ColorLocusGene = color.RGBA{255, 0, 0, 255}
	ColorFlankGene = color.RGBA{150, 150, 150, 255}
	ColorFlankCas  = color.RGBA{0, 150, 0, 255}
	ColorArray     = color.RGBA{0, 0, 255, 255}
)

// Element is one gene arrow or array box in local coordinates.
type Element struct {
	Kind   Kind
	Start  int
	End    int
	Strand genome.Strand // genes only
	Label  string
	Color  color.RGBA
}

// Category identifies which locus table a row came from.
type Category string

const (
	CategoryCrisprCas Category = "crispr-cas"
	CategoryCas       Category = "cas"
	CategoryCRISPR    Category = "crispr"
)

// Row is one rendered locus.
type Row struct {
	Index      int // 1-based, top to bottom
	ID         string
	Contig     string
	Prediction string
	Category   Category

	// HeaderStart and HeaderEnd are the native coordinates printed in the
	// row header.
	HeaderStart int
	HeaderEnd   int

	Span     genome.Span
	Elements []Element // sorted by Start

	// Origin is the local coordinate of contig position 0 when the locus
	// wraps, nil otherwise.
	Origin *int
}

// Genes returns the gene elements of the row in drawing order.
func (r Row) Genes() []Element {
	return r.filter(KindGene)
}

// Arrays returns the array elements of the row in drawing order.
func (r Row) Arrays() []Element {
	return r.filter(KindArray)
}

func (r Row) filter(k Kind) []Element {
	var out []Element
	for _, e := range r.Elements {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// SortElements orders elements by local start; ties keep input order.
func SortElements(els []Element) {
	slices.SortStableFunc(els, func(a, b Element) int {
		return cmp.Compare(a.Start, b.Start)
	})
}

// Layout is the complete drawing plan.
type Layout struct {
	// Longest is the longest apparent locus length.
	Longest int
	// Width is Longest plus the flank margin on both sides, in genomic units.
	Width int
	Rows  []Row
}
