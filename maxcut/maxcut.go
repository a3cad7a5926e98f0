package maxcut

import (
	"errors"

	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

// ErrLoopEdge is returned when an edge joins a vertex to itself; loops
// cannot be cut and have no place in the formulation.
var ErrLoopEdge = errors.New("maxcut: self-loop edge")

// An Edge is an undirected weighted edge between vertex indices U and V.
type Edge struct {
	U      int
	V      int
	Weight float64
}

// Result is the decoded cut: vertex sides plus cut size and weight.
type Result struct {
	// Left holds vertices assigned bit 0, Right those assigned bit 1.
	Left  []int
	Right []int

	// CutEdges counts edges whose endpoints received different bits.
	CutEdges int

	// CutWeight is the total weight of those edges.
	CutWeight float64
}

// Build sums the per-edge contribution w·(2·xᵢxⱼ − xᵢ − xⱼ) over all
// edges of an n-vertex graph.
//
// Errors: qubo.ErrEmptyInstance when n ≤ 0, qubo.ErrIndexOutOfRange for
// endpoints outside 0..n-1, ErrLoopEdge for U == V.
//
// Complexity: O(E).
func Build(n int, edges []Edge) (*qubo.Objective, error) {
	obj, err := qubo.New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.U == e.V {
			return nil, ErrLoopEdge
		}
		if err := obj.Add(e.U, e.V, 2*e.Weight); err != nil {
			return nil, err
		}
		if err := obj.AddLinear(e.U, -e.Weight); err != nil {
			return nil, err
		}
		if err := obj.AddLinear(e.V, -e.Weight); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

// Decode colors the vertices by the best sample's bits and counts the
// edges crossing the cut.
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
		if b == 0 {
			res.Left = append(res.Left, v)
		} else {
			res.Right = append(res.Right, v)
		}
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return Result{}, qubo.ErrIndexOutOfRange
		}
		if bits[e.U] != bits[e.V] {
			res.CutEdges++
			res.CutWeight += e.Weight
		}
	}

	return res, nil
}
