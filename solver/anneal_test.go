package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

// partitionObjective expands (c − 2·Σ aᵢxᵢ)² for items [1,1,2]; the
// minimum energy is 0, achieved by splitting {1,1} vs {2}.
func partitionObjective(t *testing.T) *qubo.Objective {
	t.Helper()

	items := []int{1, 1, 2}
	c := 0
	for _, a := range items {
		c += a
	}
	obj, err := qubo.New(len(items))
	require.NoError(t, err)
	require.NoError(t, obj.AddOffset(float64(c*c)))
	for i, a := range items {
		require.NoError(t, obj.AddLinear(i, float64(4*a*a-4*c*a)))
		for j := i + 1; j < len(items); j++ {
			require.NoError(t, obj.Add(i, j, float64(8*a*items[j])))
		}
	}

	return obj
}

// annealConfig returns a small but ample budget for 3-4 variable tests.
func annealConfig() solver.Config {
	cfg := solver.DefaultConfig()
	cfg.NumReads = 50
	cfg.Sweeps = 200
	cfg.Seed = 7

	return cfg
}

// TestAnnealSampler_FindsOptimum cross-checks the annealer's best energy
// against exhaustive enumeration on a tiny instance.
func TestAnnealSampler_FindsOptimum(t *testing.T) {
	obj := partitionObjective(t)

	exact, err := new(solver.ExactSampler).Sample(context.Background(), obj, solver.DefaultConfig())
	require.NoError(t, err)
	annealed, err := new(solver.AnnealSampler).Sample(context.Background(), obj, annealConfig())
	require.NoError(t, err)

	bestExact, err := exact.Best()
	require.NoError(t, err)
	bestAnneal, err := annealed.Best()
	require.NoError(t, err)

	assert.InDelta(t, bestExact.Energy, bestAnneal.Energy, qubo.DefaultEpsilon)
	assert.InDelta(t, 0.0, bestAnneal.Energy, qubo.DefaultEpsilon, "perfect partition exists")
}

// TestAnnealSampler_Deterministic verifies that a fixed seed reproduces
// the sample set exactly.
func TestAnnealSampler_Deterministic(t *testing.T) {
	obj := partitionObjective(t)
	cfg := annealConfig()

	a, err := new(solver.AnnealSampler).Sample(context.Background(), obj, cfg)
	require.NoError(t, err)
	b, err := new(solver.AnnealSampler).Sample(context.Background(), obj, cfg)
	require.NoError(t, err)

	require.Len(t, b.Samples, len(a.Samples))
	for i := range a.Samples {
		assert.Equal(t, a.Samples[i].Assignment, b.Samples[i].Assignment, "sample %d", i)
		assert.Equal(t, a.Samples[i].Energy, b.Samples[i].Energy, "sample %d", i)
		assert.Equal(t, a.Samples[i].Occurrences, b.Samples[i].Occurrences, "sample %d", i)
	}
}

// TestAnnealSampler_AggregatesOccurrences verifies that identical reads
// collapse into one sample and tallies account for every read.
func TestAnnealSampler_AggregatesOccurrences(t *testing.T) {
	obj := partitionObjective(t)
	cfg := annealConfig()

	set, err := new(solver.AnnealSampler).Sample(context.Background(), obj, cfg)
	require.NoError(t, err)

	total := 0
	for _, s := range set.Samples {
		total += s.Occurrences
	}
	assert.Equal(t, cfg.NumReads, total)
	assert.LessOrEqual(t, len(set.Samples), 1<<3, "3 variables admit at most 8 distinct samples")

	for i := 1; i < len(set.Samples); i++ {
		assert.GreaterOrEqual(t, set.Samples[i].Energy, set.Samples[i-1].Energy, "energies ascend")
	}
}

// TestAnnealSampler_BadConfig covers annealing-knob validation.
func TestAnnealSampler_BadConfig(t *testing.T) {
	obj := partitionObjective(t)

	cfg := solver.DefaultConfig()
	cfg.NumReads = 0
	_, err := new(solver.AnnealSampler).Sample(context.Background(), obj, cfg)
	assert.ErrorIs(t, err, solver.ErrBadConfig)

	cfg = solver.DefaultConfig()
	cfg.BetaStart = 5
	cfg.BetaEnd = 1
	_, err = new(solver.AnnealSampler).Sample(context.Background(), obj, cfg)
	assert.ErrorIs(t, err, solver.ErrBadConfig)
}

// TestAnnealSampler_ContextCancel verifies cancellation surfaces as
// ErrTimeout.
func TestAnnealSampler_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := new(solver.AnnealSampler).Sample(ctx, partitionObjective(t), annealConfig())
	assert.ErrorIs(t, err, solver.ErrTimeout)
}
