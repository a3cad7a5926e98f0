// SPDX-License-Identifier: MIT
// Package qubo: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the qubo
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package qubo

import "errors"

var (
	// ErrEmptyInstance is returned when an objective over zero variables is
	// requested, or when Assemble receives no components.
	ErrEmptyInstance = errors.New("qubo: empty instance")

	// ErrDimensionMismatch indicates a size disagreement: an assignment
	// vector whose length differs from the declared variable count, or
	// Assemble components built over different variable counts.
	ErrDimensionMismatch = errors.New("qubo: dimension mismatch")

	// ErrIndexOutOfRange indicates a variable index outside 0..n-1.
	ErrIndexOutOfRange = errors.New("qubo: variable index out of range")

	// ErrNaNInf signals a NaN or ±Inf coefficient where finite values are
	// required. Coefficients are validated on ingestion, not on read.
	ErrNaNInf = errors.New("qubo: NaN or Inf coefficient")

	// ErrInvalidBit indicates an assignment entry other than 0 or 1.
	ErrInvalidBit = errors.New("qubo: assignment bit is not 0 or 1")

	// ErrNilObjective indicates a nil *Objective receiver or argument.
	ErrNilObjective = errors.New("qubo: nil objective")
)
