// Package pkg holds the libraries behind locusmap.
//
// Data flows through the packages in one direction:
//
//	classifier tables (.tab)
//	         ↓
//	    [tables]   read and validate into a genome.Bundle
//	         ↓
//	    [layout]   normalise loci, pick flanking genes, build rows
//	         ↓
//	    [render]   draw rows on a gg canvas
//	         ↓
//	    plot.png
//
// [pipeline] runs the three stages; [fonts], [errors], [observability]
// and [buildinfo] support them.
//
// [tables]: github.com/matzehuels/locusmap/pkg/tables
// [layout]: github.com/matzehuels/locusmap/pkg/layout
// [render]: github.com/matzehuels/locusmap/pkg/render
// [pipeline]: github.com/matzehuels/locusmap/pkg/pipeline
// [fonts]: github.com/matzehuels/locusmap/pkg/fonts
// [errors]: github.com/matzehuels/locusmap/pkg/errors
// [observability]: github.com/matzehuels/locusmap/pkg/observability
// [buildinfo]: github.com/matzehuels/locusmap/pkg/buildinfo
package pkg
