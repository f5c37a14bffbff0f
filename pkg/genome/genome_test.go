package genome

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/locusmap/pkg/errors"
)

func TestSpanLength(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want int
	}{
		{"linear", Span{Start: 100, End: 400, SeqSize: 10000}, 300},
		{"wraps origin", Span{Start: 9900, End: 300, SeqSize: 10000, SpansOrigin: true}, 400},
		{"zero length", Span{Start: 50, End: 50, SeqSize: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Length(); got != tt.want {
				t.Errorf("Length() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOperonSpansOrigin(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"linear", 100, 400, false},
		{"wraps", 9900, 200, true},
		{"single coordinate", 500, 500, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Operon{Start: tt.start, End: tt.end}).SpansOrigin(); got != tt.want {
				t.Errorf("SpansOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanLengthProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		size := 1 + r.IntN(1_000_000)
		start, end := r.IntN(size), r.IntN(size)

		lin := Span{Start: start, End: end, SeqSize: size}
		if got := lin.Length(); got != end-start {
			t.Fatalf("linear %v: Length() = %d, want %d", lin, got, end-start)
		}
		circ := Span{Start: start, End: end, SeqSize: size, SpansOrigin: true}
		if got := circ.Length(); got != end+size-start {
			t.Fatalf("circular %v: Length() = %d, want %d", circ, got, end+size-start)
		}
	}
}

func TestTable(t *testing.T) {
	var zero Table[int]
	if zero.IsPresent() {
		t.Error("zero Table should be absent")
	}

	absent := Absent[int]()
	if got := absent.OrElse(func() []int { return []int{7} }); len(got) != 1 || got[0] != 7 {
		t.Errorf("Absent.OrElse() = %v, want [7]", got)
	}

	empty := Present[int](nil)
	if !empty.IsPresent() {
		t.Error("Present(nil) should be present")
	}
	if got := empty.OrElse(func() []int { return []int{7} }); len(got) != 0 {
		t.Errorf("Present(nil).OrElse() = %v, want empty", got)
	}

	rows, ok := Present([]int{1, 2}).Get()
	if !ok || len(rows) != 2 {
		t.Errorf("Get() = %v, %v; want [1 2], true", rows, ok)
	}
}

func TestDeriveOrphanOperons(t *testing.T) {
	ops := []Operon{
		{ID: "a", Prediction: "I-E"},
		{ID: "b", Prediction: PredictionFalse},
		{ID: "c", Prediction: PredictionAmbiguous},
		{ID: "d", Prediction: PredictionPartial},
		{ID: "e", Prediction: "II-A"},
	}
	got := DeriveOrphanOperons(ops)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "e" {
		t.Errorf("DeriveOrphanOperons() = %v, want [a e]", ids(got))
	}
}

func TestCasRows(t *testing.T) {
	ops := []Operon{
		{ID: "op1", Prediction: "I-E"},
		{ID: "op2", Prediction: PredictionAmbiguous},
		{ID: "op3", Prediction: PredictionAmbiguous},
		{ID: "op4", Prediction: PredictionFalse},
		{ID: "op5", Prediction: "II-A"},
	}
	cc := []CrisprCas{{Operon: "op3"}, {Operon: "op5"}}

	tests := []struct {
		name   string
		bundle Bundle
		want   []string
	}{
		{
			name:   "explicit orphans plus ambiguous minus loci",
			bundle: Bundle{Operons: ops, CrisprCas: Present(cc), OrphanCas: Present([]Operon{ops[0]})},
			want:   []string{"op1", "op2"},
		},
		{
			name:   "derived orphans exclude loci",
			bundle: Bundle{Operons: ops, CrisprCas: Present(cc)},
			want:   []string{"op1", "op2"},
		},
		{
			name:   "derived orphans without loci table",
			bundle: Bundle{Operons: ops},
			want:   []string{"op1", "op5", "op2", "op3"},
		},
		{
			name:   "ambiguous listed as orphan is not duplicated",
			bundle: Bundle{Operons: ops, OrphanCas: Present([]Operon{ops[1]})},
			want:   []string{"op2", "op3"},
		},
		{
			name:   "no operons",
			bundle: Bundle{OrphanCas: Present([]Operon{ops[0]})},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.bundle.CasRows())
			if len(got) != len(tt.want) {
				t.Fatalf("CasRows() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CasRows()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestArrayRowsAndTotal(t *testing.T) {
	arrays := []Array{{ID: "c1"}, {ID: "c2"}}

	b := Bundle{Arrays: arrays}
	if got := len(b.ArrayRows()); got != 2 {
		t.Errorf("absent orphan table: len(ArrayRows()) = %d, want 2", got)
	}

	b.OrphanArrays = Present([]Array{arrays[1]})
	if got := len(b.ArrayRows()); got != 1 {
		t.Errorf("explicit orphan table: len(ArrayRows()) = %d, want 1", got)
	}

	b.CrisprCas = Present([]CrisprCas{{Operon: "op1"}})
	b.Operons = []Operon{{ID: "op1", Prediction: "I-E"}, {ID: "op2", Prediction: "I-B"}}
	if got := b.TotalRows(); got != 3 {
		t.Errorf("TotalRows() = %d, want 3", got)
	}

	if got := (&Bundle{}).TotalRows(); got != 0 {
		t.Errorf("empty TotalRows() = %d, want 0", got)
	}
}

func TestIndex(t *testing.T) {
	b := &Bundle{
		Genes: []Gene{
			{Contig: "c1", Pos: 2, Start: 300, End: 400},
			{Contig: "c1", Pos: 1, Start: 100, End: 200},
			{Contig: "c2", Pos: 1, Start: 5, End: 50},
		},
		CasHits: []CasHit{
			{Contig: "c1", Pos: 2, Hmm: "Cas1_0_I-E"},
			{Contig: "c1", Pos: 2, Hmm: "Cas1_1_II"},
		},
		Arrays:        []Array{{ID: "c1_1", Contig: "c1"}, {ID: "c2_1", Contig: "c2"}},
		ContigLengths: map[string]int{"c1": 1000},
	}
	x := NewIndex(b)

	if g, ok := x.GeneAt("c1", 1); !ok || g.Start != 100 {
		t.Errorf("GeneAt(c1, 1) = %+v, %v", g, ok)
	}
	if _, ok := x.GeneAt("c2", 2); ok {
		t.Error("GeneAt(c2, 2) should miss")
	}

	genes := x.GenesOn("c1")
	if len(genes) != 2 || genes[0].Pos != 1 || genes[1].Pos != 2 {
		t.Errorf("GenesOn(c1) not sorted by position: %+v", genes)
	}

	if h, err := x.CasHit("c1", 2); err != nil || h.Hmm != "Cas1_0_I-E" {
		t.Errorf("CasHit(c1, 2) = %+v, %v; want first hit", h, err)
	}
	if _, ok := x.HitAt("c2", 2); ok {
		t.Error("HitAt(c2, 2) should miss")
	}

	if _, err := x.Arrays([]string{"c1_1", "nope"}); !errors.Is(err, errors.ErrCodeLookupMiss) {
		t.Errorf("Arrays() error = %v, want LOOKUP_MISS", err)
	}
	if got := len(x.ArraysOn("c2")); got != 1 {
		t.Errorf("len(ArraysOn(c2)) = %d, want 1", got)
	}

	if n, err := x.ContigLength("c1"); err != nil || n != 1000 {
		t.Errorf("ContigLength(c1) = %d, %v", n, err)
	}
	if _, err := x.ContigLength("c2"); !errors.Is(err, errors.ErrCodeLookupMiss) {
		t.Errorf("ContigLength(c2) error = %v, want LOOKUP_MISS", err)
	}
}

func ids(ops []Operon) []string {
	var out []string
	for _, o := range ops {
		out = append(out, o.ID)
	}
	return out
}
