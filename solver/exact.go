package solver

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/qubolab/qubolab/qubo"
)

// MaxExactVariables bounds exhaustive enumeration; past this point the
// 2ⁿ search space stops being a reasonable reference oracle.
const MaxExactVariables = 20

// ExactSampler enumerates every assignment of the objective and returns
// the cfg.NumReads lowest-energy ones, energies ascending. Enumeration
// order is ascending bitstring value, and the sort is stable, so equal
// energies keep that order — the result is fully deterministic.
//
// Use it as a ground-truth oracle for small instances (n ≤
// MaxExactVariables) and in tests; it is the local stand-in for an exact
// reference solver, not a production minimizer.
type ExactSampler struct{}

var _ Sampler = (*ExactSampler)(nil)

// Sample enumerates all 2ⁿ assignments.
//
// Errors: qubo.ErrNilObjective, ErrBadConfig, ErrTooLarge; ErrTimeout
// wraps context cancellation.
//
// Complexity: O(2ⁿ·n) time, O(2ⁿ) transient memory for the ranking.
func (s *ExactSampler) Sample(ctx context.Context, obj *qubo.Objective, cfg Config) (SampleSet, error) {
	if obj == nil {
		return SampleSet{}, qubo.ErrNilObjective
	}
	if err := cfg.validate(); err != nil {
		return SampleSet{}, err
	}
	n := obj.NumVariables()
	if n > MaxExactVariables {
		return SampleSet{}, fmt.Errorf("%w: %d variables (max %d)", ErrTooLarge, n, MaxExactVariables)
	}

	start := time.Now()
	total := 1 << uint(n)
	type ranked struct {
		word   uint32
		energy float64
	}
	all := make([]ranked, total)
	bits := make([]int8, n)
	for word := 0; word < total; word++ {
		// Check for cancellation once per 4096 assignments.
		if word&0xfff == 0 && ctx.Err() != nil {
			return SampleSet{}, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		}
		for i := 0; i < n; i++ {
			bits[i] = int8((word >> uint(i)) & 1)
		}
		e, err := obj.Energy(bits)
		if err != nil {
			return SampleSet{}, err
		}
		all[word] = ranked{word: uint32(word), energy: e}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].energy < all[j].energy })

	keep := cfg.NumReads
	if keep > total {
		keep = total
	}
	samples := make([]Sample, keep)
	for k := 0; k < keep; k++ {
		assign := make(map[int]int8, n)
		for i := 0; i < n; i++ {
			assign[i] = int8((all[k].word >> uint(i)) & 1)
		}
		samples[k] = Sample{Assignment: assign, Energy: all[k].energy, Occurrences: 1}
	}

	return SampleSet{
		Samples: samples,
		Info: Info{
			RunID:   uuid.NewString(),
			Sampler: "exact",
			Reads:   keep,
			Elapsed: time.Since(start),
		},
	}, nil
}
