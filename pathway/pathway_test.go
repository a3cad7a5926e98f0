package pathway_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qubolab/pathway"
	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

// TestBuild_Coefficients verifies the xᵀ(A − α·D)x expansion: folded
// off-diagonal coefficients 2·A[i][j] and linear terms −α·D[i].
func TestBuild_Coefficients(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 3)
	require.NoError(t, err)

	obj, err := pathway.Build(ds, 0.45)
	require.NoError(t, err)

	lin2, err := obj.Coefficient(2, 2) // TP53
	require.NoError(t, err)
	assert.InDelta(t, -0.45*3, lin2, qubo.DefaultEpsilon)

	q02, err := obj.Coefficient(0, 2) // FLT3–TP53 overlap of one patient
	require.NoError(t, err)
	assert.InDelta(t, 2.0, q02, qubo.DefaultEpsilon)

	q01, err := obj.Coefficient(0, 1) // FLT3–NPM1 never co-occur
	require.NoError(t, err)
	assert.Zero(t, q01)
}

// TestBuild_Validation covers nil and shape guards.
func TestBuild_Validation(t *testing.T) {
	_, err := pathway.Build(nil, 0.45)
	assert.ErrorIs(t, err, pathway.ErrNilDataset)

	ds, err := pathway.NewDataset(sampleMutations(), 3)
	require.NoError(t, err)
	ds.Coverage = ds.Coverage[:2] // corrupt the shape
	_, err = pathway.Build(ds, 0.45)
	assert.ErrorIs(t, err, qubo.ErrDimensionMismatch)
}

// TestSolve_PrefersExclusiveCoverage solves the synthetic dataset
// end-to-end: at α=0.45 the best pathway is {FLT3, NPM1}, which covers
// four patients with zero overlap.
func TestSolve_PrefersExclusiveCoverage(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 3)
	require.NoError(t, err)
	obj, err := pathway.Build(ds, 0.45)
	require.NoError(t, err)

	set, err := new(solver.ExactSampler).Sample(context.Background(), obj, solver.DefaultConfig())
	require.NoError(t, err)
	res, err := pathway.Decode(ds, set)
	require.NoError(t, err)

	assert.Equal(t, []string{"FLT3", "NPM1"}, res.Genes)
	assert.InDelta(t, 4.0, res.Coverage, qubo.DefaultEpsilon)
	assert.InDelta(t, 2.0, res.CoveragePerGene, qubo.DefaultEpsilon)
	assert.Zero(t, res.Exclusivity)
	assert.True(t, math.IsInf(res.Measure, 1), "zero overlap scores +Inf")
}

// TestDecode_Metrics verifies the metric arithmetic on a hand-picked
// overlapping pathway.
func TestDecode_Metrics(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 3)
	require.NoError(t, err)

	// Select FLT3 and TP53, which share patient p1.
	set := solver.SampleSet{Samples: []solver.Sample{{
		Assignment: map[int]int8{0: 1, 1: 0, 2: 1},
	}}}
	res, err := pathway.Decode(ds, set)
	require.NoError(t, err)

	assert.Equal(t, []string{"FLT3", "TP53"}, res.Genes)
	assert.InDelta(t, 5.0, res.Coverage, qubo.DefaultEpsilon)
	assert.InDelta(t, 2.5, res.CoveragePerGene, qubo.DefaultEpsilon)
	assert.InDelta(t, 2.0, res.Exclusivity, qubo.DefaultEpsilon, "overlap counted in both directions")
	assert.InDelta(t, 1.25, res.Measure, qubo.DefaultEpsilon)
}

// TestDecode_EmptyPathway verifies the all-zeros guard.
func TestDecode_EmptyPathway(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 3)
	require.NoError(t, err)

	set := solver.SampleSet{Samples: []solver.Sample{{
		Assignment: map[int]int8{0: 0, 1: 0, 2: 0},
	}}}
	_, err = pathway.Decode(ds, set)
	assert.ErrorIs(t, err, pathway.ErrEmptyPathway)
}

// TestDecode_Incomplete verifies the totality check.
func TestDecode_Incomplete(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 3)
	require.NoError(t, err)

	set := solver.SampleSet{Samples: []solver.Sample{{
		Assignment: map[int]int8{0: 1, 2: 1},
	}}}
	_, err = pathway.Decode(ds, set)
	assert.ErrorIs(t, err, solver.ErrIncompleteAssignment)
}
