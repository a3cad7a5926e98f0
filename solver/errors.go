package solver

import "errors"

var (
	// ErrNoSamples is returned by Best when a sample set is empty.
	ErrNoSamples = errors.New("solver: sample set is empty")

	// ErrIncompleteAssignment indicates a sample that does not cover every
	// declared variable index exactly once. Decoders must fail on it
	// rather than defaulting missing bits to 0.
	ErrIncompleteAssignment = errors.New("solver: assignment does not cover every variable")

	// ErrTooLarge is returned by ExactSampler when the variable count
	// exceeds MaxExactVariables.
	ErrTooLarge = errors.New("solver: too many variables for exhaustive enumeration")

	// ErrUnavailable indicates the underlying solver could not be reached
	// or refused the problem. No automatic retry is performed.
	ErrUnavailable = errors.New("solver: solver unavailable")

	// ErrTimeout indicates the solve exceeded its budget (context deadline
	// or cancellation included).
	ErrTimeout = errors.New("solver: solve exceeded budget")

	// ErrBadConfig indicates a nonsensical configuration value, such as a
	// non-positive read count or an inverted beta range.
	ErrBadConfig = errors.New("solver: invalid configuration")
)
