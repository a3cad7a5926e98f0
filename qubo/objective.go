// SPDX-License-Identifier: MIT

package qubo

import "math"

// DefaultEpsilon is the non-negative tolerance used when comparing
// coefficient maps for equality (e.g. in tests of assembly-order
// independence). Summation order may perturb results at this scale;
// that is accepted floating-point non-determinism, not a defect.
const DefaultEpsilon = 1e-9

// A Term is one canonical coefficient of an objective. I == J denotes a
// linear term, I < J a quadratic term. Terms never repeat a pair.
type Term struct {
	I     int
	J     int
	Value float64
}

// An Objective is a quadratic function of n binary variables plus a scalar
// offset. Coefficients live in a packed upper-triangular array of length
// n·(n+1)/2; the pair (i,j) with i ≤ j maps to one slot, and writes to
// (j,i) fold into it. Create with New; the zero value is not usable.
type Objective struct {
	n      int
	coeff  []float64
	offset float64
}

// New returns an empty objective over n binary variables 0..n-1.
// Returns ErrEmptyInstance when n ≤ 0.
func New(n int) (*Objective, error) {
	if n <= 0 {
		return nil, ErrEmptyInstance
	}

	return &Objective{
		n:     n,
		coeff: make([]float64, n*(n+1)/2),
	}, nil
}

// slot maps a canonical pair (i ≤ j) to its packed upper-triangular index.
func (o *Objective) slot(i, j int) int {
	return i*o.n - i*(i-1)/2 + (j - i)
}

// NumVariables reports the declared variable count n.
func (o *Objective) NumVariables() int {
	if o == nil {
		return 0
	}

	return o.n
}

// Add accumulates w onto the canonical coefficient for the unordered pair
// {i, j}. Add(i, i, w) accumulates a linear term.
//
// Errors: ErrNilObjective, ErrIndexOutOfRange, ErrNaNInf.
// Complexity: O(1).
func (o *Objective) Add(i, j int, w float64) error {
	if o == nil {
		return ErrNilObjective
	}
	if i < 0 || i >= o.n || j < 0 || j >= o.n {
		return ErrIndexOutOfRange
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNaNInf
	}
	if i > j {
		i, j = j, i
	}
	o.coeff[o.slot(i, j)] += w

	return nil
}

// AddLinear accumulates w onto the linear coefficient of variable i.
// Shorthand for Add(i, i, w).
func (o *Objective) AddLinear(i int, w float64) error {
	return o.Add(i, i, w)
}

// AddOffset accumulates w onto the constant term.
func (o *Objective) AddOffset(w float64) error {
	if o == nil {
		return ErrNilObjective
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNaNInf
	}
	o.offset += w

	return nil
}

// Coefficient returns the canonical coefficient for the unordered pair
// {i, j}. Reading (j, i) and (i, j) yields the same value.
func (o *Objective) Coefficient(i, j int) (float64, error) {
	if o == nil {
		return 0, ErrNilObjective
	}
	if i < 0 || i >= o.n || j < 0 || j >= o.n {
		return 0, ErrIndexOutOfRange
	}
	if i > j {
		i, j = j, i
	}

	return o.coeff[o.slot(i, j)], nil
}

// Offset returns the constant term.
func (o *Objective) Offset() float64 {
	if o == nil {
		return 0
	}

	return o.offset
}

// Terms returns the non-zero canonical coefficients in (I asc, J asc)
// order. The slice is freshly allocated; mutating it does not touch the
// objective.
//
// Complexity: O(n²).
func (o *Objective) Terms() []Term {
	if o == nil {
		return nil
	}
	terms := make([]Term, 0, len(o.coeff))
	for i := 0; i < o.n; i++ {
		for j := i; j < o.n; j++ {
			if v := o.coeff[o.slot(i, j)]; v != 0 {
				terms = append(terms, Term{I: i, J: j, Value: v})
			}
		}
	}

	return terms
}

// Energy evaluates the objective at the given total assignment. bits must
// have length n and contain only 0s and 1s.
//
// Errors: ErrNilObjective, ErrDimensionMismatch, ErrInvalidBit.
// Complexity: O(n²) worst case, O(n + nonzero terms) in practice.
func (o *Objective) Energy(bits []int8) (float64, error) {
	if o == nil {
		return 0, ErrNilObjective
	}
	if len(bits) != o.n {
		return 0, ErrDimensionMismatch
	}
	for _, b := range bits {
		if b != 0 && b != 1 {
			return 0, ErrInvalidBit
		}
	}

	e := o.offset
	idx := 0
	for i := 0; i < o.n; i++ {
		if bits[i] == 0 {
			idx += o.n - i

			continue
		}
		// Diagonal slot first, then the row's quadratic slots.
		e += o.coeff[idx]
		idx++
		for j := i + 1; j < o.n; j++ {
			if bits[j] == 1 {
				e += o.coeff[idx]
			}
			idx++
		}
	}

	return e, nil
}

// Clone returns a deep copy of the objective.
func (o *Objective) Clone() *Objective {
	if o == nil {
		return nil
	}
	cp := &Objective{
		n:      o.n,
		coeff:  make([]float64, len(o.coeff)),
		offset: o.offset,
	}
	copy(cp.coeff, o.coeff)

	return cp
}
