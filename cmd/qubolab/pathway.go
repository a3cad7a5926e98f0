package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qubolab/qubolab/pathway"
)

var (
	flagMutations string
	flagAlpha     float64
	flagTop       int
)

var pathwayCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Select a mutually exclusive, high-coverage cancer gene pathway",
	Long: `Builds the pathway-selection objective xᵀ(A − α·D)x over the top most
frequently mutated genes of a study, where D counts per-gene patient
coverage and A counts pairwise co-occurrence. Mutation records are read
from a JSON file of {"gene_symbol": ..., "patient_id": ...} objects, the
shape a mutation-data service export produces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(flagMutations)
		if err != nil {
			return fmt.Errorf("mutations file: %w", err)
		}
		defer f.Close()

		muts, err := pathway.ReadMutations(f)
		if err != nil {
			return err
		}
		ds, err := pathway.NewDataset(muts, flagTop)
		if err != nil {
			return err
		}
		logger.Info("dataset built",
			"genes", len(ds.Genes),
			"patients", ds.Patients,
		)

		obj, err := pathway.Build(ds, flagAlpha)
		if err != nil {
			return err
		}
		set, err := solve(obj)
		if err != nil {
			return err
		}
		res, err := pathway.Decode(ds, set)
		if err != nil {
			return err
		}
		logger.Info("pathway",
			"genes", res.Genes,
			"coverage", res.Coverage,
			"coverage_per_gene", res.CoveragePerGene,
			"exclusivity", res.Exclusivity,
			"measure", res.Measure,
		)

		return nil
	},
}

func init() {
	pathwayCmd.Flags().StringVar(&flagMutations, "mutations", "", "JSON file of mutation records (required)")
	pathwayCmd.Flags().Float64Var(&flagAlpha, "alpha", 0.45, "coverage weight α")
	pathwayCmd.Flags().IntVar(&flagTop, "top", 33, "gene-universe size: the top N most mutated genes")
	_ = pathwayCmd.MarkFlagRequired("mutations")
	rootCmd.AddCommand(pathwayCmd)
}
