package genome

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/locusmap/pkg/errors"
)

type posKey struct {
	contig string
	pos    int
}

func (k posKey) String() string { return fmt.Sprintf("%s:%d", k.contig, k.pos) }

// Index is a keyed, read-only view over a Bundle.
type Index struct {
	genes          map[posKey]Gene
	genesByContig  map[string][]Gene
	hits           map[posKey]CasHit
	operons        map[string]Operon
	arrays         map[string]Array
	arraysByContig map[string][]Array
	contigs        map[string]int
}

// NewIndex builds lookup tables for b. When a key occurs more than once the
// first row wins, matching table order.
func NewIndex(b *Bundle) *Index {
	x := &Index{
		genes:          make(map[posKey]Gene, len(b.Genes)),
		genesByContig:  make(map[string][]Gene),
		hits:           make(map[posKey]CasHit, len(b.CasHits)),
		operons:        make(map[string]Operon, len(b.Operons)),
		arrays:         make(map[string]Array, len(b.Arrays)),
		arraysByContig: make(map[string][]Array),
		contigs:        b.ContigLengths,
	}

	for _, g := range b.Genes {
		k := posKey{g.Contig, g.Pos}
		if _, ok := x.genes[k]; ok {
			continue
		}
		x.genes[k] = g
		x.genesByContig[g.Contig] = append(x.genesByContig[g.Contig], g)
	}
	for contig := range x.genesByContig {
		slices.SortStableFunc(x.genesByContig[contig], func(a, b Gene) int {
			return cmp.Compare(a.Pos, b.Pos)
		})
	}

	for _, h := range b.CasHits {
		k := posKey{h.Contig, h.Pos}
		if _, ok := x.hits[k]; !ok {
			x.hits[k] = h
		}
	}

	for _, o := range b.Operons {
		if _, ok := x.operons[o.ID]; !ok {
			x.operons[o.ID] = o
		}
	}

	for _, a := range b.Arrays {
		if _, ok := x.arrays[a.ID]; ok {
			continue
		}
		x.arrays[a.ID] = a
		x.arraysByContig[a.Contig] = append(x.arraysByContig[a.Contig], a)
	}
	return x
}

// GeneAt returns the gene at pos on contig. Flank windows may run past the
// first or last gene of a contig, so a miss is not an error.
func (x *Index) GeneAt(contig string, pos int) (Gene, bool) {
	g, ok := x.genes[posKey{contig, pos}]
	return g, ok
}

// GenesOn returns the genes of contig ordered by position.
func (x *Index) GenesOn(contig string) []Gene {
	return x.genesByContig[contig]
}

// CasHit returns the Cas HMM hit at pos on contig.
func (x *Index) CasHit(contig string, pos int) (CasHit, error) {
	h, ok := x.HitAt(contig, pos)
	if !ok {
		return CasHit{}, errors.Missing("hmmer", posKey{contig, pos}.String())
	}
	return h, nil
}

// HitAt is CasHit without the error, for positions that may legitimately
// have no hit.
func (x *Index) HitAt(contig string, pos int) (CasHit, bool) {
	h, ok := x.hits[posKey{contig, pos}]
	return h, ok
}

// Operon returns the predicted operon with the given id.
func (x *Index) Operon(id string) (Operon, error) {
	o, ok := x.operons[id]
	if !ok {
		return Operon{}, errors.Missing("cas_operons", id)
	}
	return o, nil
}

// Array returns the array with the given id.
func (x *Index) Array(id string) (Array, error) {
	a, ok := x.arrays[id]
	if !ok {
		return Array{}, errors.Missing("crisprs", id)
	}
	return a, nil
}

// Arrays resolves every id in ids, failing on the first missing one.
func (x *Index) Arrays(ids []string) ([]Array, error) {
	out := make([]Array, 0, len(ids))
	for _, id := range ids {
		a, err := x.Array(id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// ArraysOn returns the arrays of contig in table order.
func (x *Index) ArraysOn(contig string) []Array {
	return x.arraysByContig[contig]
}

// ContigLength returns the sequence length of contig.
func (x *Index) ContigLength(contig string) (int, error) {
	n, ok := x.contigs[contig]
	if !ok {
		return 0, errors.Missing("contigs", contig)
	}
	return n, nil
}
