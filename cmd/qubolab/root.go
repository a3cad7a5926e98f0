package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/qubolab/qubolab/qubo"
	"github.com/qubolab/qubolab/solver"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "qubolab",
})

var (
	flagReads    int
	flagSweeps   int
	flagSeed     int64
	flagExact    bool
	flagTimeout  time.Duration
	flagInstance string
)

var rootCmd = &cobra.Command{
	Use:   "qubolab",
	Short: "Formulate combinatorial problems as QUBOs and solve them locally",
	Long: `qubolab builds Quadratic Unconstrained Binary Optimization objectives
for five classic problems and solves them with a local sampler: simulated
annealing by default, or exhaustive enumeration with --exact.

Every subcommand ships the worked example instance as its default input;
pass --instance to solve your own (YAML, see each command's help).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; a missing file is not an error.
		if err := godotenv.Load(); err == nil {
			logger.Debug("environment loaded from .env")
		}
		if os.Getenv("DWAVE_API_TOKEN") != "" {
			logger.Info("annealer API token present; cloud sampling is not wired, solving locally")
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagReads, "reads", solver.DefaultNumReads, "number of reads requested from the sampler")
	pf.IntVar(&flagSweeps, "sweeps", solver.DefaultSweeps, "annealing sweeps per read")
	pf.Int64Var(&flagSeed, "seed", 0, "sampler seed; 0 selects the fixed default seed")
	pf.BoolVar(&flagExact, "exact", false, "enumerate all assignments instead of annealing")
	pf.DurationVar(&flagTimeout, "timeout", time.Minute, "sampling deadline")
	pf.StringVar(&flagInstance, "instance", "", "YAML instance file overriding the built-in example")
}

// solve runs the configured sampler on obj and logs the run metadata.
func solve(obj *qubo.Objective) (solver.SampleSet, error) {
	cfg := solver.DefaultConfig()
	cfg.NumReads = flagReads
	cfg.Sweeps = flagSweeps
	cfg.Seed = flagSeed

	var s solver.Sampler = &solver.AnnealSampler{}
	if flagExact {
		s = &solver.ExactSampler{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	set, err := s.Sample(ctx, obj, cfg)
	if err != nil {
		return solver.SampleSet{}, err
	}
	logger.Info("sampling finished",
		"sampler", set.Info.Sampler,
		"run_id", set.Info.RunID,
		"reads", set.Info.Reads,
		"elapsed", set.Info.Elapsed,
	)

	return set, nil
}
