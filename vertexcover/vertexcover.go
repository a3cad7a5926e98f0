package vertexcover

import (
	"errors"

	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

var (
	// ErrLoopEdge is returned when an edge joins a vertex to itself.
	ErrLoopEdge = errors.New("vertexcover: self-loop edge")

	// ErrBadPenalty is returned for a non-positive penalty coefficient.
	// (A positive-but-small P is accepted; see the package note.)
	ErrBadPenalty = errors.New("vertexcover: penalty must be positive")
)

// An Edge is an undirected edge between vertex indices U and V.
type Edge struct {
	U int
	V int
}

// Result is the decoded cover candidate.
type Result struct {
	// Cover lists the selected vertices (bit 1), ascending.
	Cover []int

	// CoveredEdges counts edges with at least one selected endpoint.
	CoveredEdges int

	// Feasible is true iff CoveredEdges equals the total edge count,
	// i.e. the assignment really is a vertex cover.
	Feasible bool
}

// Build assembles the selection cost and the edge-constraint penalty as a
// weighted composite: per vertex a linear cost of 1; per edge the
// expansion of P·(1 − xᵢ − xⱼ + xᵢxⱼ), whose constant parts accumulate in
// the offset.
//
// Errors: qubo.ErrEmptyInstance when n ≤ 0, ErrBadPenalty when
// penalty ≤ 0, ErrLoopEdge for U == V, qubo.ErrIndexOutOfRange for
// endpoints outside 0..n-1.
//
// Complexity: O(n + E).
func Build(n int, edges []Edge, penalty float64) (*qubo.Objective, error) {
	if penalty <= 0 {
		return nil, ErrBadPenalty
	}
	cost, err := qubo.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := cost.AddLinear(i, 1); err != nil {
			return nil, err
		}
	}

	constraint, err := qubo.New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.U == e.V {
			return nil, ErrLoopEdge
		}
		if err := constraint.AddOffset(1); err != nil {
			return nil, err
		}
		if err := constraint.AddLinear(e.U, -1); err != nil {
			return nil, err
		}
		if err := constraint.AddLinear(e.V, -1); err != nil {
			return nil, err
		}
		if err := constraint.Add(e.U, e.V, 1); err != nil {
			return nil, err
		}
	}

	return qubo.Assemble(
		qubo.Weighted{Objective: cost, Weight: 1},
		qubo.Weighted{Objective: constraint, Weight: penalty},
	)
}

// Decode lists the selected vertices of the best sample and verifies
// coverage edge by edge. An assignment that is not a cover comes back
// with Feasible == false; it is the caller's decision what to do with it.
//
// Errors: qubo.ErrEmptyInstance when n ≤ 0; solver.ErrNoSamples and
// solver.ErrIncompleteAssignment from the sample set;
// qubo.ErrIndexOutOfRange for an edge endpoint outside 0..n-1.
func Decode(n int, edges []Edge, set solver.SampleSet) (Result, error) {
	if n <= 0 {
		return Result{}, qubo.ErrEmptyInstance
	}
	best, err := set.Best()
	if err != nil {
		return Result{}, err
	}
	bits, err := best.Vector(n)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for v, b := range bits {
		if b == 1 {
			res.Cover = append(res.Cover, v)
		}
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return Result{}, qubo.ErrIndexOutOfRange
		}
		if bits[e.U] == 1 || bits[e.V] == 1 {
			res.CoveredEdges++
		}
	}
	res.Feasible = res.CoveredEdges == len(edges)

	return res, nil
}
