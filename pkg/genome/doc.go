// Package genome holds the read-only data model of a locus map: contigs,
// genes, Cas HMM hits, CRISPR arrays, Cas operons and combined CRISPR-Cas
// loci, as produced by an upstream classifier.
//
// # Tables
//
// Some inputs are optional. A [Table] records whether a table was supplied
// at all, which matters because an absent table and an empty table have
// different defaults:
//
//	orphans := bundle.OrphanCas           // Table[Operon]
//	rows := bundle.OrphanOperons()        // explicit rows, or derived when absent
//
// The derivation rules live in [DeriveOrphanOperons] and [DeriveOrphanArrays].
//
// # Coordinates
//
// Contigs are circular. A [Span] whose Start is greater than its End wraps
// past the end of the contig back to position 0; [Span.Length] accounts for
// the wrap.
//
// # Lookups
//
// [NewIndex] builds the keyed views used while laying out rows. Every lookup
// returns a LOOKUP_MISS error naming the missing key instead of a zero value.
package genome
