// Package partition formulates two-way number partitioning as a QUBO and
// decodes sampler output back into the two subsets.
//
// Given items a_1..a_n with total c = Σa_i, the objective is
//
//	(c − 2·Σ a_i·x_i)²
//
// expanded into quadratic coefficients. Its global minimum is zero exactly
// when the items split into two subsets of equal sum; otherwise the
// minimizer is the closest achievable split and the optimal energy equals
// the squared difference of the two subset sums.
//
// Use this package when you need to split a multiset of integers into two
// halves of (near-)equal weight via any solver.Sampler.
package partition
