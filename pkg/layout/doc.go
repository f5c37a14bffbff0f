// Package layout converts genomic loci into drawing coordinates.
//
// # Overview
//
// Each locus becomes one [Row]. A row holds the locus genes, flanking
// context genes and CRISPR arrays as [Element] values whose Start and End
// are local coordinates: genomic distance from the left edge of the row,
// already corrected for loci that wrap around the origin of a circular
// contig. Rendering only has to scale them.
//
// Rows are produced in a fixed order: CRISPR-Cas loci, then orphan and
// ambiguous Cas operons, then orphan CRISPR arrays.
//
// # Building a Layout
//
//	l, err := layout.Build(bundle,
//	    layout.WithFlank(4, 500),
//	)
//
// Build fails with a LOOKUP_MISS error when a locus references a gene
// position, array, operon or contig that is not in the bundle. No partial
// layout is returned.
//
// # Coordinates
//
// The local coordinate of native position x, for a locus starting at s on
// a contig of length n, is
//
//	offset + x - s              if the locus does not wrap, or x is past s
//	offset + x + n - s          otherwise
//
// where offset = expand*multiplier + 1 reserves room for flanking genes.
// For wrapping loci, start coordinates compare with >= and end coordinates
// with >, so a feature ending exactly at s is placed after the origin. See
// [Projector].
//
// # Canvas Width
//
// [Longest] returns the longest apparent locus length; [Layout.Width] adds
// the flank margin on both sides.
package layout
