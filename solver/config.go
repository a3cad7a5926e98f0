package solver

// Defaults mirror the sample budgets the source examples ran with.
const (
	// DefaultNumReads is the number of independent reads (annealing path).
	DefaultNumReads = 1000

	// DefaultSweeps is the number of full variable sweeps per annealing read.
	DefaultSweeps = 1000

	// DefaultBetaStart and DefaultBetaEnd bound the geometric inverse-
	// temperature schedule of AnnealSampler.
	DefaultBetaStart = 0.1
	DefaultBetaEnd   = 10.0

	// DefaultMaxIterations caps the classical optimizer loop (circuit path).
	DefaultMaxIterations = 250

	// DefaultReps is the circuit repetition depth p (circuit path).
	DefaultReps = 2
)

// An Optimizer names a gradient-free classical search strategy used by
// gate-model adapters to tune circuit parameters. Local samplers ignore
// this knob.
type Optimizer int

const (
	// SPSA — simultaneous-perturbation stochastic approximation; suited to
	// noisy objectives.
	SPSA Optimizer = iota

	// COBYLA — constrained optimization by linear approximation.
	COBYLA

	// NelderMead — downhill-simplex search.
	NelderMead
)

// String returns the conventional short name of the optimizer.
func (o Optimizer) String() string {
	switch o {
	case SPSA:
		return "spsa"
	case COBYLA:
		return "cobyla"
	case NelderMead:
		return "nelder-mead"
	default:
		return "unknown"
	}
}

// Config carries solver-specific knobs. Annealing-path samplers read
// NumReads, Sweeps, BetaStart/BetaEnd and Seed; circuit-path adapters read
// MaxIterations, Optimizer and Reps. Samplers ignore knobs that do not
// apply to them.
type Config struct {
	// NumReads is the number of candidate assignments requested.
	NumReads int

	// Sweeps is the annealing schedule length per read.
	Sweeps int

	// BetaStart and BetaEnd bound the geometric inverse-temperature
	// schedule; BetaStart must be positive and not exceed BetaEnd.
	BetaStart float64
	BetaEnd   float64

	// MaxIterations caps the classical optimizer loop (circuit path).
	MaxIterations int

	// Optimizer selects the classical search strategy (circuit path).
	Optimizer Optimizer

	// Reps is the circuit repetition depth p (circuit path).
	Reps int

	// Seed makes stochastic samplers reproducible. Zero selects a fixed
	// default seed, never a time-based one.
	Seed int64
}

// DefaultConfig returns the configuration the source examples ran with:
// 1000 reads, SPSA capped at 250 iterations, circuit depth 2.
func DefaultConfig() Config {
	return Config{
		NumReads:      DefaultNumReads,
		Sweeps:        DefaultSweeps,
		BetaStart:     DefaultBetaStart,
		BetaEnd:       DefaultBetaEnd,
		MaxIterations: DefaultMaxIterations,
		Optimizer:     SPSA,
		Reps:          DefaultReps,
	}
}

// validate reports ErrBadConfig for nonsensical annealing knobs. Circuit
// knobs are validated by the adapters that consume them.
func (c Config) validate() error {
	if c.NumReads <= 0 || c.Sweeps <= 0 {
		return ErrBadConfig
	}
	if c.BetaStart <= 0 || c.BetaEnd < c.BetaStart {
		return ErrBadConfig
	}

	return nil
}
