// Package qubolab turns classic combinatorial-optimization problems into
// Quadratic Unconstrained Binary Optimization (QUBO) objectives, hands them
// to pluggable samplers, and decodes the returned bitstrings back into
// validated domain answers.
//
// 🚀 What is qubolab?
//
//	A small, deterministic library covering the whole QUBO round trip:
//		• Objective construction: closed-form quadratic expansions for five
//		  starter problems (number partitioning, max-cut, minimum vertex
//		  cover, cancer-pathway selection, order partitioning)
//		• Composition: weighted merging of penalty and cost objectives into
//		  one canonical coefficient map
//		• Sampling: a narrow Sampler contract satisfied by local reference
//		  samplers (exhaustive, simulated annealing) or by external
//		  annealing / gate-model adapters
//		• Decoding: index-ordered, totality-checked interpretation of the
//		  lowest-energy sample, with domain-specific quality metrics
//
// ✨ Why choose qubolab?
//
//   - Integer identity everywhere — a variable is its index, from creation
//     to decoding; no string parsing, no hidden renumbering
//   - Fail-fast sentinels — every misuse surfaces as an errors.Is-matchable
//     error before a solver is ever called
//   - Deterministic — fixed seeds reproduce sample sets bit for bit
//
// Packages:
//
//	qubo/        — Objective, Term, weighted assembly
//	solver/      — Sampler contract, SampleSet, exact & annealing samplers
//	partition/   — two-way number partitioning
//	maxcut/      — maximum cut on weighted graphs
//	vertexcover/ — penalty-based minimum vertex cover
//	pathway/     — mutual-exclusivity gene-pathway selection
//	orders/      — balanced stock-order partitioning
//	cmd/qubolab  — CLI reproducing the five worked examples
//
// Quick taste:
//
//	obj, _ := partition.Build([]int{25, 7, 13, 31})
//	set, _ := new(solver.ExactSampler).Sample(ctx, obj, solver.DefaultConfig())
//	res, _ := partition.Decode([]int{25, 7, 13, 31}, set)
//	fmt.Println(res.Difference) // 0
package qubolab
