package pathway

import (
	"errors"
	"math"

	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

var (
	// ErrNilDataset indicates a nil *Dataset argument.
	ErrNilDataset = errors.New("pathway: nil dataset")

	// ErrEmptyPathway is returned when the best sample selects no genes;
	// the heuristic's metrics are undefined on an empty pathway.
	ErrEmptyPathway = errors.New("pathway: no genes selected")
)

// Result is the decoded pathway with the heuristic's quality metrics.
type Result struct {
	// Genes lists the selected gene symbols, lexicographic order.
	Genes []string

	// Coverage is the summed per-gene patient coverage of the pathway.
	Coverage float64

	// CoveragePerGene is Coverage divided by the pathway size.
	CoveragePerGene float64

	// Exclusivity is the pairwise overlap Σ_{i≠j} A[i][j] over selected
	// genes; lower means more mutually exclusive.
	Exclusivity float64

	// Measure is CoveragePerGene / Exclusivity — the heuristic's score;
	// +Inf when the pathway is perfectly exclusive (Exclusivity == 0).
	Measure float64
}

// Build assembles xᵀ(A − α·D)x: off-diagonal pairs (i,j) and (j,i) fold
// into one canonical coefficient 2·A[i][j], and the diagonal of D becomes
// linear terms scaled by −α.
//
// Errors: ErrNilDataset; qubo.ErrEmptyInstance for an empty gene
// universe; qubo.ErrDimensionMismatch when the matrices disagree with the
// gene count.
//
// Complexity: O(n²).
func Build(ds *Dataset, alpha float64) (*qubo.Objective, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	n := len(ds.Genes)
	obj, err := qubo.New(n)
	if err != nil {
		return nil, err
	}
	if len(ds.Coverage) != n || len(ds.Exclusivity) != n {
		return nil, qubo.ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		if len(ds.Exclusivity[i]) != n {
			return nil, qubo.ErrDimensionMismatch
		}
		if err := obj.AddLinear(i, -alpha*ds.Coverage[i]); err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			if v := ds.Exclusivity[i][j]; v != 0 {
				if err := obj.Add(i, j, 2*v); err != nil {
					return nil, err
				}
			}
		}
	}

	return obj, nil
}

// Decode lists the genes selected by the best sample and computes the
// heuristic's metrics from the dataset matrices.
//
// Errors: ErrNilDataset, ErrEmptyPathway; solver.ErrNoSamples and
// solver.ErrIncompleteAssignment from the sample set.
func Decode(ds *Dataset, set solver.SampleSet) (Result, error) {
	if ds == nil {
		return Result{}, ErrNilDataset
	}
	best, err := set.Best()
	if err != nil {
		return Result{}, err
	}
	bits, err := best.Vector(len(ds.Genes))
	if err != nil {
		return Result{}, err
	}

	var (
		res      Result
		selected []int
	)
	for i, b := range bits {
		if b == 1 {
			selected = append(selected, i)
			res.Genes = append(res.Genes, ds.Genes[i])
			res.Coverage += ds.Coverage[i]
		}
	}
	if len(selected) == 0 {
		return Result{}, ErrEmptyPathway
	}
	res.CoveragePerGene = res.Coverage / float64(len(selected))
	for _, i := range selected {
		for _, j := range selected {
			if i != j {
				res.Exclusivity += ds.Exclusivity[i][j]
			}
		}
	}
	if res.Exclusivity == 0 {
		res.Measure = math.Inf(1)
	} else {
		res.Measure = res.CoveragePerGene / res.Exclusivity
	}

	return res, nil
}
