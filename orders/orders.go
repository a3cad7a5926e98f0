package orders

import (
	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

// An Instance describes n stock orders and an m×n risk-factor loading
// matrix. Read-only once built.
type Instance struct {
	// Names are the stock identifiers, one per order.
	Names []string

	// Values are the order values q_j.
	Values []float64

	// Risk is the m×n loading matrix: Risk[i][j] is stock j's exposure
	// to factor i.
	Risk [][]float64
}

// Validate checks the instance shape: at least one stock, names and
// values aligned, and every risk row covering all stocks.
func (inst Instance) Validate() error {
	n := len(inst.Values)
	if n == 0 {
		return qubo.ErrEmptyInstance
	}
	if len(inst.Names) != n {
		return qubo.ErrDimensionMismatch
	}
	for _, row := range inst.Risk {
		if len(row) != n {
			return qubo.ErrDimensionMismatch
		}
	}

	return nil
}

// Result is the decoded split with its balance metrics.
type Result struct {
	// SetA holds stocks assigned bit 0, SetB those assigned bit 1.
	SetA []string
	SetB []string

	// CostA and CostB are the net values of the halves; CostDiff is
	// CostA − CostB.
	CostA    float64
	CostB    float64
	CostDiff float64

	// RiskDiffs[i] is factor i's net exposure difference between the
	// halves; NetRiskDiff is their sum.
	RiskDiffs   []float64
	NetRiskDiff float64
}

// Build assembles the two balance terms as a weighted composite:
// a·(T − 2·Σ q_j·x_j)² expanded like number partitioning, plus, per risk
// factor, b·(2·Σ p_ij·x_j − S_i)² with S_i = Σ_j p_ij.
//
// Errors: qubo.ErrEmptyInstance, qubo.ErrDimensionMismatch (via
// Validate), qubo.ErrNaNInf for non-finite weights or loadings.
//
// Complexity: O((m+1)·n²).
func Build(inst Instance, a, b float64) (*qubo.Objective, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	n := len(inst.Values)

	value, err := qubo.New(n)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, q := range inst.Values {
		total += q
	}
	if err := value.AddOffset(total * total); err != nil {
		return nil, err
	}
	for j, q := range inst.Values {
		if err := value.AddLinear(j, 4*q*q-4*total*q); err != nil {
			return nil, err
		}
		for k := j + 1; k < n; k++ {
			if err := value.Add(j, k, 8*q*inst.Values[k]); err != nil {
				return nil, err
			}
		}
	}

	risk, err := qubo.New(n)
	if err != nil {
		return nil, err
	}
	for _, row := range inst.Risk {
		rowSum := 0.0
		for _, s := range row {
			rowSum += s
		}
		if err := risk.AddOffset(rowSum * rowSum); err != nil {
			return nil, err
		}
		for j, s := range row {
			if err := risk.AddLinear(j, 4*s*s-4*rowSum*s); err != nil {
				return nil, err
			}
			for k := j + 1; k < n; k++ {
				if err := risk.Add(j, k, 8*s*row[k]); err != nil {
					return nil, err
				}
			}
		}
	}

	return qubo.Assemble(
		qubo.Weighted{Objective: value, Weight: a},
		qubo.Weighted{Objective: risk, Weight: b},
	)
}

// Decode splits the stocks by the best sample's bits and reports the
// value and per-factor risk balance of the two halves.
//
// Errors: shape errors via Validate; solver.ErrNoSamples and
// solver.ErrIncompleteAssignment from the sample set.
func Decode(inst Instance, set solver.SampleSet) (Result, error) {
	if err := inst.Validate(); err != nil {
		return Result{}, err
	}
	best, err := set.Best()
	if err != nil {
		return Result{}, err
	}
	bits, err := best.Vector(len(inst.Values))
	if err != nil {
		return Result{}, err
	}

	res := Result{RiskDiffs: make([]float64, len(inst.Risk))}
	for j, name := range inst.Names {
		if bits[j] == 0 {
			res.SetA = append(res.SetA, name)
			res.CostA += inst.Values[j]
		} else {
			res.SetB = append(res.SetB, name)
			res.CostB += inst.Values[j]
		}
	}
	res.CostDiff = res.CostA - res.CostB
	for i, row := range inst.Risk {
		for j, s := range row {
			if bits[j] == 0 {
				res.RiskDiffs[i] += s
			} else {
				res.RiskDiffs[i] -= s
			}
		}
		res.NetRiskDiff += res.RiskDiffs[i]
	}

	return res, nil
}
