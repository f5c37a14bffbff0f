package tables

import (
	"github.com/matzehuels/locusmap/pkg/errors"
	"github.com/matzehuels/locusmap/pkg/genome"
)

// geneRow is one line of genes.tab.
type geneRow struct {
	Contig string `tsv:"Contig"`
	Pos    int64  `tsv:"Pos"`
	Start  int64  `tsv:"Start"`
	End    int64  `tsv:"End"`
	Strand int64  `tsv:"Strand"`
}

func (r geneRow) gene() (genome.Gene, error) {
	s, err := strand(r.Strand)
	if err != nil {
		return genome.Gene{}, err
	}
	return genome.Gene{
		Contig: r.Contig,
		Pos:    int(r.Pos),
		Start:  int(r.Start),
		End:    int(r.End),
		Strand: s,
	}, nil
}

// hitRow is one line of hmmer.tab. Acc is the contig accession.
type hitRow struct {
	Acc    string `tsv:"Acc"`
	Pos    int64  `tsv:"Pos"`
	Hmm    string `tsv:"Hmm"`
	Start  int64  `tsv:"start"`
	End    int64  `tsv:"end"`
	Strand int64  `tsv:"strand"`
}

func (r hitRow) hit() (genome.CasHit, error) {
	s, err := strand(r.Strand)
	if err != nil {
		return genome.CasHit{}, err
	}
	return genome.CasHit{
		Contig: r.Acc,
		Pos:    int(r.Pos),
		Hmm:    r.Hmm,
		Start:  int(r.Start),
		End:    int(r.End),
		Strand: s,
	}, nil
}

// contigRow is one line of contigs.tab.
type contigRow struct {
	Contig string `tsv:"Contig"`
	Length int64  `tsv:"Length"`
}

// arrayRow is one line of crisprs_all.tab or crisprs_orphan.tab.
type arrayRow struct {
	Contig     string `tsv:"Contig"`
	CRISPR     string `tsv:"CRISPR"`
	Start      int64  `tsv:"Start"`
	End        int64  `tsv:"End"`
	Prediction string `tsv:"Prediction"`
}

func (r arrayRow) array() (genome.Array, error) {
	return genome.Array{
		ID:         r.CRISPR,
		Contig:     r.Contig,
		Start:      int(r.Start),
		End:        int(r.End),
		Prediction: r.Prediction,
	}, nil
}

// operonRow is one line of cas_operons.tab or cas_operons_orphan.tab.
type operonRow struct {
	Contig     string `tsv:"Contig"`
	Operon     string `tsv:"Operon"`
	Start      int64  `tsv:"Start"`
	End        int64  `tsv:"End"`
	Prediction string `tsv:"Prediction"`
	Positions  string `tsv:"Positions"`
	Genes      string `tsv:"Genes"`
}

func (r operonRow) operon() (genome.Operon, error) {
	pos, err := ParseInts(r.Positions)
	if err != nil {
		return genome.Operon{}, err
	}
	genes, err := ParseStrings(r.Genes)
	if err != nil {
		return genome.Operon{}, err
	}
	return genome.Operon{
		ID:         r.Operon,
		Contig:     r.Contig,
		Positions:  pos,
		Genes:      genes,
		Prediction: r.Prediction,
		Start:      int(r.Start),
		End:        int(r.End),
	}, nil
}

// crisprCasRow is one line of CRISPR_Cas.tab.
type crisprCasRow struct {
	Contig     string `tsv:"Contig"`
	Operon     string `tsv:"Operon"`
	OperonPos  string `tsv:"Operon_Pos"`
	Prediction string `tsv:"Prediction"`
	CRISPRs    string `tsv:"CRISPRs"`
}

func (r crisprCasRow) crisprCas() (genome.CrisprCas, error) {
	pos, err := ParseInts(r.OperonPos)
	if err != nil {
		return genome.CrisprCas{}, err
	}
	if len(pos) != 2 {
		return genome.CrisprCas{}, errors.New(errors.ErrCodeInvalidInput,
			"operon %s: Operon_Pos %q must hold start and end", r.Operon, r.OperonPos)
	}
	arrays, err := ParseStrings(r.CRISPRs)
	if err != nil {
		return genome.CrisprCas{}, err
	}
	return genome.CrisprCas{
		Operon:      r.Operon,
		Contig:      r.Contig,
		CRISPRs:     arrays,
		Prediction:  r.Prediction,
		OperonStart: pos[0],
		OperonEnd:   pos[1],
	}, nil
}

// originRow is one line of origin_links.tab.
type originRow struct {
	Operon  string `tsv:"Operon"`
	Side    string `tsv:"Side"`
	CRISPRs string `tsv:"CRISPRs"`
}

// Origin link sides.
const (
	SideStart = "start"
	SideEnd   = "end"
)

func strand(v int64) (genome.Strand, error) {
	switch v {
	case 1:
		return genome.Forward, nil
	case -1:
		return genome.Reverse, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "strand must be 1 or -1, got %d", v)
}
