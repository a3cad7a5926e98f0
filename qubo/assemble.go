// SPDX-License-Identifier: MIT

package qubo

import "math"

// A Weighted pairs an objective with the scalar weight it contributes to a
// composite. Typical use: a primary cost with weight 1 plus a constraint
// penalty with a larger weight.
type Weighted struct {
	Objective *Objective
	Weight    float64
}

// Assemble folds weighted components into a single canonical objective:
// coefficients keyed by the same pair are scaled by their component's
// weight and summed, as are the constant offsets.
//
// Assembly is associative and commutative; floating-point summation order
// may alter results within DefaultEpsilon, which is accepted
// non-determinism rather than a correctness defect.
//
// Errors:
//   - ErrEmptyInstance     — no components.
//   - ErrNilObjective      — a component carries a nil objective.
//   - ErrDimensionMismatch — components declare different variable counts.
//   - ErrNaNInf            — a component weight is NaN or ±Inf.
//
// Complexity: O(len(parts)·n²). The inputs are not mutated.
func Assemble(parts ...Weighted) (*Objective, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyInstance
	}
	for _, p := range parts {
		if p.Objective == nil {
			return nil, ErrNilObjective
		}
		if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
			return nil, ErrNaNInf
		}
	}

	n := parts[0].Objective.n
	out, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		if p.Objective.n != n {
			return nil, ErrDimensionMismatch
		}
		for k, v := range p.Objective.coeff {
			out.coeff[k] += p.Weight * v
		}
		out.offset += p.Weight * p.Objective.offset
	}

	return out, nil
}
