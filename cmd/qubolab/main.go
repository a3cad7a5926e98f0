// qubolab reproduces the five worked QUBO examples from the command
// line: number partitioning, max-cut, minimum vertex cover, cancer
// pathway selection and financial order partitioning. Each subcommand
// builds the objective, runs a local sampler and logs the decoded
// answer.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}
