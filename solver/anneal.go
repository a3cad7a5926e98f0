package solver

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/qubolab/qubolab/qubo"
)

// AnnealSampler is a classical simulated-annealing sampler: the local,
// software stand-in for a quantum annealer. Each of cfg.NumReads reads is
// an independent restart with its own derived RNG stream; within a read,
// cfg.Sweeps full variable sweeps run under a geometric inverse-
// temperature schedule from BetaStart to BetaEnd.
//
// Determinism: a fixed cfg.Seed reproduces the sample set exactly.
// Identical final assignments are aggregated with their occurrence tally,
// then ranked by energy with a stable sort, so ties keep first-produced
// order.
type AnnealSampler struct{}

var _ Sampler = (*AnnealSampler)(nil)

// coupling is one off-diagonal neighbor of a variable in the objective.
type coupling struct {
	j int
	w float64
}

// Sample runs cfg.NumReads annealing restarts.
//
// Errors: qubo.ErrNilObjective, ErrBadConfig; ErrTimeout wraps context
// cancellation, checked between reads.
//
// Complexity: O(NumReads·Sweeps·(n + E)) where E is the number of
// non-zero quadratic terms.
func (s *AnnealSampler) Sample(ctx context.Context, obj *qubo.Objective, cfg Config) (SampleSet, error) {
	if obj == nil {
		return SampleSet{}, qubo.ErrNilObjective
	}
	if err := cfg.validate(); err != nil {
		return SampleSet{}, err
	}

	start := time.Now()
	n := obj.NumVariables()

	// Flatten the objective into per-variable linear fields and adjacency
	// rows so a flip delta is O(degree).
	linear := make([]float64, n)
	rows := make([][]coupling, n)
	for _, t := range obj.Terms() {
		if t.I == t.J {
			linear[t.I] = t.Value

			continue
		}
		rows[t.I] = append(rows[t.I], coupling{j: t.J, w: t.Value})
		rows[t.J] = append(rows[t.J], coupling{j: t.I, w: t.Value})
	}

	parent := cfg.Seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	type bucket struct {
		sample Sample
		order  int
	}
	seen := make(map[string]*bucket)
	produced := 0

	bits := make([]int8, n)
	for read := 0; read < cfg.NumReads; read++ {
		if ctx.Err() != nil {
			return SampleSet{}, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		}
		rng := rand.New(rand.NewSource(deriveSeed(parent, uint64(read))))
		s.annealOnce(rng, cfg, linear, rows, bits)

		// Re-evaluate exactly; incremental deltas are only used to steer
		// the walk, never reported.
		e, err := obj.Energy(bits)
		if err != nil {
			return SampleSet{}, err
		}
		key := string(bitKey(bits))
		if b, ok := seen[key]; ok {
			b.sample.Occurrences++

			continue
		}
		assign := make(map[int]int8, n)
		for i, b := range bits {
			assign[i] = b
		}
		seen[key] = &bucket{
			sample: Sample{Assignment: assign, Energy: e, Occurrences: 1},
			order:  produced,
		}
		produced++
	}

	buckets := make([]*bucket, 0, len(seen))
	for _, b := range seen {
		buckets = append(buckets, b)
	}
	// First-produced order as the stable base, then energy ascending.
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].order < buckets[j].order })
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].sample.Energy < buckets[j].sample.Energy })

	samples := make([]Sample, len(buckets))
	for i, b := range buckets {
		samples[i] = b.sample
	}

	return SampleSet{
		Samples: samples,
		Info: Info{
			RunID:   uuid.NewString(),
			Sampler: "anneal",
			Reads:   cfg.NumReads,
			Elapsed: time.Since(start),
		},
	}, nil
}

// annealOnce runs one restart in place: random initial state, then
// cfg.Sweeps Metropolis sweeps under a geometric beta schedule.
func (s *AnnealSampler) annealOnce(rng *rand.Rand, cfg Config, linear []float64, rows [][]coupling, bits []int8) {
	n := len(bits)
	for i := range bits {
		bits[i] = int8(rng.Intn(2))
	}

	// Geometric schedule: beta(t) = BetaStart·(BetaEnd/BetaStart)^(t/(T-1)).
	ratio := cfg.BetaEnd / cfg.BetaStart
	for t := 0; t < cfg.Sweeps; t++ {
		frac := 0.0
		if cfg.Sweeps > 1 {
			frac = float64(t) / float64(cfg.Sweeps-1)
		}
		beta := cfg.BetaStart * math.Pow(ratio, frac)
		for i := 0; i < n; i++ {
			// Energy change of flipping bit i.
			field := linear[i]
			for _, c := range rows[i] {
				if bits[c.j] == 1 {
					field += c.w
				}
			}
			delta := field
			if bits[i] == 1 {
				delta = -field
			}
			if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
				bits[i] ^= 1
			}
		}
	}
}

// bitKey packs an assignment into a byte string usable as a map key.
func bitKey(bits []int8) []byte {
	key := make([]byte, len(bits))
	for i, b := range bits {
		key[i] = byte(b)
	}

	return key
}
