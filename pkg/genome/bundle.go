package genome

import "slices"

// Bundle is the complete set of classifier outputs for one run.
// Nothing in this package or its consumers mutates a Bundle.
type Bundle struct {
	Genes   []Gene
	CasHits []CasHit
	Arrays  []Array  // every predicted array
	Operons []Operon // every predicted operon, any prediction

	CrisprCas    Table[CrisprCas]
	OrphanCas    Table[Operon]
	OrphanArrays Table[Array]

	ContigLengths map[string]int

	// OriginStart maps an operon id to the arrays that sit at the start of
	// its contig while the operon sits at the end (the locus wraps).
	OriginStart map[string][]string
	// OriginEnd maps an operon id to the arrays that sit at the end of its
	// contig while the operon sits at the start.
	OriginEnd map[string][]string
}

// AnyOperon reports whether the classifier produced any Cas operon.
func (b *Bundle) AnyOperon() bool { return len(b.Operons) > 0 }

// CrisprCasLoci returns the combined loci; an absent table means none.
func (b *Bundle) CrisprCasLoci() []CrisprCas {
	return b.CrisprCas.OrElse(func() []CrisprCas { return nil })
}

// OrphanOperons returns the orphan Cas operons, deriving them when the
// table was not supplied.
func (b *Bundle) OrphanOperons() []Operon {
	return b.OrphanCas.OrElse(func() []Operon {
		return DeriveOrphanOperons(b.Operons)
	})
}

// ArrayRows returns the orphan arrays to draw. When the orphan table was not
// supplied every array is treated as an orphan.
func (b *Bundle) ArrayRows() []Array {
	return b.OrphanArrays.OrElse(func() []Array {
		return DeriveOrphanArrays(b.Arrays)
	})
}

// CasRows returns orphan and ambiguous operons in row order, without
// duplicates and without operons already drawn as part of a CRISPR-Cas locus.
func (b *Bundle) CasRows() []Operon {
	if !b.AnyOperon() {
		return nil
	}

	inLocus := make(map[string]bool)
	for _, cc := range b.CrisprCasLoci() {
		inLocus[cc.Operon] = true
	}

	candidates := slices.Concat(b.OrphanOperons(), ambiguous(b.Operons))
	seen := make(map[string]bool, len(candidates))
	var out []Operon
	for _, o := range candidates {
		if inLocus[o.ID] || seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		out = append(out, o)
	}
	return out
}

// TotalRows is the number of rows the map will have.
func (b *Bundle) TotalRows() int {
	return len(b.CrisprCasLoci()) + len(b.CasRows()) + len(b.ArrayRows())
}

// DeriveOrphanOperons selects the operons that count as orphans when no
// explicit orphan table exists: every operon whose prediction is not
// False, Ambiguous or Partial.
func DeriveOrphanOperons(operons []Operon) []Operon {
	var out []Operon
	for _, o := range operons {
		switch o.Prediction {
		case PredictionFalse, PredictionAmbiguous, PredictionPartial:
			continue
		}
		out = append(out, o)
	}
	return out
}

// DeriveOrphanArrays selects the arrays that count as orphans when no
// explicit orphan table exists: all of them.
func DeriveOrphanArrays(arrays []Array) []Array {
	return slices.Clone(arrays)
}

func ambiguous(operons []Operon) []Operon {
	var out []Operon
	for _, o := range operons {
		if o.Prediction == PredictionAmbiguous {
			out = append(out, o)
		}
	}
	return out
}
