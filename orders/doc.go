// Package orders formulates two-way order partitioning for hedging as a
// QUBO: split n stock orders into two halves that balance both total
// value and exposure to each of m risk factors.
//
// With stock values q_j (total T) and risk-factor loadings p_ij, the
// objective is
//
//	a·(T − 2·Σ_j q_j·x_j)²  +  b·Σ_i (Σ_j p_ij·(2x_j − 1))²
//
// for tunable weights a and b. The first term drives the value split
// toward T/2 each; the second drives every risk factor's net exposure
// toward zero across the two halves.
package orders
