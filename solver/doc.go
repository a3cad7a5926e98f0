// Package solver defines the contract between QUBO objectives and the
// samplers that minimize them, plus two local reference samplers.
//
// 🚀 The contract
//
//	Sampler.Sample(ctx, objective, config) → SampleSet
//
//	A SampleSet is an ordered, non-empty list of (assignment, energy)
//	pairs, energies ascending; the best sample is the first. Ties keep the
//	order in which the underlying sampler produced them — this package
//	never re-sorts equal energies.
//
// Implementations fall in two families:
//
//   - Local reference samplers shipped here: ExactSampler (exhaustive
//     enumeration for small n) and AnnealSampler (classical simulated
//     annealing, deterministic under a fixed seed).
//   - External adapters written out of tree: quantum-annealing cloud
//     samplers and gate-model minimum-eigenvalue optimizers. Config
//     carries their knobs (reads, iteration caps, classical optimizer
//     choice, circuit repetition depth); failures surface as
//     ErrUnavailable or ErrTimeout, with retries left to the caller.
//
// External calls may be slow — tens of minutes have been observed for
// ~18-variable problems on gate-model paths — so Sample takes a
// context.Context; local samplers honor cancellation between reads.
//
// ⚙️ Usage:
//
//	cfg := solver.DefaultConfig()
//	cfg.Seed = 42
//	set, err := new(solver.AnnealSampler).Sample(ctx, obj, cfg)
//	best, err := set.Best()
//	bits, err := best.Vector(obj.NumVariables())
//
// Vector orders bits by integer variable index and fails with
// ErrIncompleteAssignment on any gap — missing bits are never defaulted
// to zero.
package solver
