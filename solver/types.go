package solver

import (
	"context"
	"time"

	"github.com/qubolab/qubolab/qubo"
)

// A Sample is one candidate assignment returned by a sampler, keyed by
// variable index. Occurrences tallies how many reads produced it.
type Sample struct {
	Assignment  map[int]int8
	Energy      float64
	Occurrences int
}

// Vector orders the assignment by canonical variable index into a dense
// bit vector of length n. Samplers — remote ones especially — may hand
// back variables in arbitrary order, so interpretation always goes through
// this re-ordering step.
//
// Errors: ErrIncompleteAssignment when any index in 0..n-1 is missing or
// an index outside that range appears; qubo.ErrInvalidBit for entries
// other than 0 or 1. Missing bits are never defaulted.
func (s Sample) Vector(n int) ([]int8, error) {
	if len(s.Assignment) != n {
		return nil, ErrIncompleteAssignment
	}
	bits := make([]int8, n)
	for i := range bits {
		bits[i] = -1
	}
	for i, b := range s.Assignment {
		if i < 0 || i >= n {
			return nil, ErrIncompleteAssignment
		}
		if b != 0 && b != 1 {
			return nil, qubo.ErrInvalidBit
		}
		bits[i] = b
	}
	for _, b := range bits {
		if b == -1 {
			return nil, ErrIncompleteAssignment
		}
	}

	return bits, nil
}

// Info describes one solve run, mirroring the reporting the source
// examples printed alongside their answers.
type Info struct {
	// RunID uniquely identifies the solve invocation.
	RunID string

	// Sampler names the implementation that produced the set.
	Sampler string

	// Reads is the number of reads actually taken.
	Reads int

	// Elapsed is the wall-clock solver time.
	Elapsed time.Duration
}

// A SampleSet is an ordered, non-empty list of samples, energies
// ascending. Ties preserve the order the sampler produced them in; the
// set is never re-sorted after construction.
type SampleSet struct {
	Samples []Sample
	Info    Info
}

// Best returns the lowest-energy sample (the first), or ErrNoSamples.
func (ss SampleSet) Best() (Sample, error) {
	if len(ss.Samples) == 0 {
		return Sample{}, ErrNoSamples
	}

	return ss.Samples[0], nil
}

// A Sampler minimizes a QUBO objective and returns ranked candidate
// assignments. Calls may be long-running and are not cancelable beyond
// what the implementation honors through ctx.
type Sampler interface {
	Sample(ctx context.Context, obj *qubo.Objective, cfg Config) (SampleSet, error)
}
