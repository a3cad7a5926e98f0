package partition

import (
	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

// Result is the decoded domain answer: the two subsets (item values, in
// input order), their sums, and the absolute sum difference. Difference 0
// means a perfect partition.
type Result struct {
	SetA []int
	SetB []int
	SumA int
	SumB int

	// Difference is |SumA − SumB|; it equals the square root of the
	// optimal objective energy when the sample is optimal.
	Difference int
}

// Build expands (c − 2·Σ aᵢxᵢ)² into a QUBO over one variable per item:
// linear coefficients 4aᵢ² − 4c·aᵢ, quadratic coefficients 8aᵢaⱼ for
// i < j, and constant offset c².
//
// Errors: qubo.ErrEmptyInstance when items is empty.
//
// Complexity: O(n²) terms.
func Build(items []int) (*qubo.Objective, error) {
	n := len(items)
	obj, err := qubo.New(n)
	if err != nil {
		return nil, err
	}

	c := 0
	for _, a := range items {
		c += a
	}
	if err := obj.AddOffset(float64(c * c)); err != nil {
		return nil, err
	}
	for i, a := range items {
		if err := obj.AddLinear(i, float64(4*a*a-4*c*a)); err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			if err := obj.Add(i, j, float64(8*a*items[j])); err != nil {
				return nil, err
			}
		}
	}

	return obj, nil
}

// Decode maps the best sample of set onto the item list: bit 0 puts an
// item in SetA, bit 1 in SetB.
//
// Errors: qubo.ErrEmptyInstance for an empty item list; solver.ErrNoSamples
// and solver.ErrIncompleteAssignment from the sample set.
func Decode(items []int, set solver.SampleSet) (Result, error) {
	if len(items) == 0 {
		return Result{}, qubo.ErrEmptyInstance
	}
	best, err := set.Best()
	if err != nil {
		return Result{}, err
	}
	bits, err := best.Vector(len(items))
	if err != nil {
		return Result{}, err
	}

	var res Result
	for i, a := range items {
		if bits[i] == 0 {
			res.SetA = append(res.SetA, a)
			res.SumA += a
		} else {
			res.SetB = append(res.SetB, a)
			res.SumB += a
		}
	}
	res.Difference = res.SumA - res.SumB
	if res.Difference < 0 {
		res.Difference = -res.Difference
	}

	return res, nil
}
