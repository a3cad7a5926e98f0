package pathway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

var (
	// ErrNoMutations is returned when no mutation records are supplied.
	ErrNoMutations = errors.New("pathway: no mutation records")

	// ErrBadTopN is returned for a non-positive gene-universe size.
	ErrBadTopN = errors.New("pathway: topN must be positive")
)

// A Mutation is one patient–gene mutation record, the minimal projection
// of what a mutation-data service returns.
type Mutation struct {
	Gene    string `json:"gene_symbol"`
	Patient string `json:"patient_id"`
}

// A Dataset is the immutable derived view NewDataset builds from raw
// records: the selected gene universe plus coverage and exclusivity
// matrices over it. Indices into Genes are the QUBO variable indices.
type Dataset struct {
	// Genes is the selected universe, sorted lexicographically.
	Genes []string

	// Coverage[i] counts the patients carrying Genes[i] (diagonal of D).
	Coverage []float64

	// Exclusivity[i][j] counts the patients carrying both Genes[i] and
	// Genes[j]; symmetric with a zero diagonal (the A matrix).
	Exclusivity [][]float64

	// Patients is the number of distinct patients carrying at least one
	// selected gene.
	Patients int
}

// ReadMutations decodes a JSON array of mutation records.
func ReadMutations(r io.Reader) ([]Mutation, error) {
	var muts []Mutation
	if err := json.NewDecoder(r).Decode(&muts); err != nil {
		return nil, fmt.Errorf("pathway: decoding mutation records: %w", err)
	}

	return muts, nil
}

// NewDataset selects the topN most frequently mutated genes (ties broken
// by first appearance in the record stream) and builds the (genes, D, A)
// triple in one pass over the records. Fewer than topN distinct genes is
// fine; the universe is simply smaller.
//
// Errors: ErrNoMutations, ErrBadTopN.
//
// Complexity: O(records + patients·k²) where k is each patient's selected
// gene count.
func NewDataset(muts []Mutation, topN int) (*Dataset, error) {
	if len(muts) == 0 {
		return nil, ErrNoMutations
	}
	if topN <= 0 {
		return nil, ErrBadTopN
	}

	// Tally gene frequencies, remembering first-seen order for tie-breaks.
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, m := range muts {
		if _, ok := counts[m.Gene]; !ok {
			firstSeen[m.Gene] = len(firstSeen)
		}
		counts[m.Gene]++
	}
	ranked := make([]string, 0, len(counts))
	for g := range counts {
		ranked = append(ranked, g)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}

		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}

	genes := append([]string(nil), ranked...)
	sort.Strings(genes)
	index := make(map[string]int, len(genes))
	for i, g := range genes {
		index[g] = i
	}

	// Per-patient selected-gene sets, deduplicated.
	patientGenes := make(map[string]map[int]struct{})
	for _, m := range muts {
		gi, ok := index[m.Gene]
		if !ok {
			continue
		}
		set, ok := patientGenes[m.Patient]
		if !ok {
			set = make(map[int]struct{})
			patientGenes[m.Patient] = set
		}
		set[gi] = struct{}{}
	}

	n := len(genes)
	ds := &Dataset{
		Genes:       genes,
		Coverage:    make([]float64, n),
		Exclusivity: make([][]float64, n),
		Patients:    len(patientGenes),
	}
	for i := range ds.Exclusivity {
		ds.Exclusivity[i] = make([]float64, n)
	}
	for _, set := range patientGenes {
		carried := make([]int, 0, len(set))
		for gi := range set {
			carried = append(carried, gi)
		}
		sort.Ints(carried)
		for _, gi := range carried {
			ds.Coverage[gi]++
		}
		for a := 0; a < len(carried); a++ {
			for b := a + 1; b < len(carried); b++ {
				ds.Exclusivity[carried[a]][carried[b]]++
				ds.Exclusivity[carried[b]][carried[a]]++
			}
		}
	}

	return ds, nil
}
