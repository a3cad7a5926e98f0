// SPDX-License-Identifier: MIT

// Package qubo provides the canonical in-memory representation of a
// Quadratic Unconstrained Binary Optimization objective and the weighted
// assembly of several objectives into one.
//
// 🚀 What is a QUBO objective here?
//
//	A real-valued function of binary variables x_0..x_{n-1}:
//
//	    E(x) = offset + Σ_i c_{ii}·x_i + Σ_{i<j} c_{ij}·x_i·x_j
//
//	stored as a fixed-size packed upper-triangular coefficient array
//	indexed by integer pairs. Because x_i² = x_i for binary variables,
//	diagonal entries (i,i) are the linear terms. Coefficients written to
//	(j,i) fold into the canonical (i,j) slot, so every unordered pair has
//	exactly one entry.
//
// ✨ Key properties:
//
//   - A variable's integer index is its sole identity, from construction
//     through sampling to decoding. There are no variable names.
//   - Objectives are built once per problem instance and treated as
//     immutable after hand-off to a sampler.
//   - Assemble composes (objective, weight) pairs by scaling and summing
//     coefficients; the result is independent of component order up to
//     floating-point rounding (equality holds within DefaultEpsilon).
//
// ⚙️ Usage:
//
//	obj, err := qubo.New(4)            // four binary variables
//	_ = obj.AddLinear(0, -3)           // -3·x_0
//	_ = obj.Add(0, 2, 1.5)             // 1.5·x_0·x_2
//	_ = obj.AddOffset(9)               // constant term
//	e, _ := obj.Energy([]int8{1, 0, 1, 0})
//
// All misuse is reported through the package sentinels in errors.go;
// nothing here panics on user input and nothing allocates after New.
package qubo
