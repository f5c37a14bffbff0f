// Package tables reads classifier output tables into a [genome.Bundle].
//
// All tables are tab-separated with a header row; columns are matched by
// header name, so extra columns written upstream are ignored. List-valued
// cells use the literal list syntax written by the classifier, for example
// "[1, 2, 3]" and "['c1_1', 'c1_2']".
//
// genes.tab, hmmer.tab and contigs.tab are required. The remaining tables
// are optional: crisprs_all.tab and cas_operons.tab read as empty when
// missing, while CRISPR_Cas.tab, cas_operons_orphan.tab and
// crisprs_orphan.tab become absent tables so that [genome.Bundle] can apply
// its default derivations.
//
// [genome.Bundle]: github.com/matzehuels/locusmap/pkg/genome.Bundle
package tables
