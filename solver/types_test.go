package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

// TestSample_VectorOrdersByIndex verifies that interpretation is driven by
// the integer variable index, not map iteration or insertion order.
func TestSample_VectorOrdersByIndex(t *testing.T) {
	s := solver.Sample{Assignment: map[int]int8{3: 1, 0: 0, 2: 0, 1: 1}}

	bits, err := s.Vector(4)
	require.NoError(t, err)
	assert.Equal(t, []int8{0, 1, 0, 1}, bits)
}

// TestSample_VectorIncomplete checks the fatal decode-time error when the
// best assignment misses index 2 of a 4-variable objective: bits must not
// be silently defaulted to 0.
func TestSample_VectorIncomplete(t *testing.T) {
	s := solver.Sample{Assignment: map[int]int8{0: 0, 1: 1, 3: 1}}

	_, err := s.Vector(4)
	assert.ErrorIs(t, err, solver.ErrIncompleteAssignment)
}

// TestSample_VectorOutOfRange verifies that a stray index outside 0..n-1
// is treated as an incomplete cover, not ignored.
func TestSample_VectorOutOfRange(t *testing.T) {
	s := solver.Sample{Assignment: map[int]int8{0: 0, 1: 1, 7: 0}}

	_, err := s.Vector(3)
	assert.ErrorIs(t, err, solver.ErrIncompleteAssignment)
}

// TestSample_VectorInvalidBit verifies the bit-domain check.
func TestSample_VectorInvalidBit(t *testing.T) {
	s := solver.Sample{Assignment: map[int]int8{0: 0, 1: 3}}

	_, err := s.Vector(2)
	assert.ErrorIs(t, err, qubo.ErrInvalidBit)
}

// TestSampleSet_BestEmpty verifies ErrNoSamples on an empty set.
func TestSampleSet_BestEmpty(t *testing.T) {
	_, err := solver.SampleSet{}.Best()
	assert.ErrorIs(t, err, solver.ErrNoSamples)
}

// TestSampleSet_BestIsFirst verifies Best returns the head sample without
// re-sorting.
func TestSampleSet_BestIsFirst(t *testing.T) {
	ss := solver.SampleSet{Samples: []solver.Sample{
		{Energy: -2, Occurrences: 3},
		{Energy: -2, Occurrences: 1},
		{Energy: 0, Occurrences: 5},
	}}

	best, err := ss.Best()
	require.NoError(t, err)
	assert.Equal(t, 3, best.Occurrences, "tie-break is first returned, never re-sorted")
}
