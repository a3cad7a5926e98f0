package main

import (
	"github.com/spf13/cobra"

	"github.com/qubolab/qubolab/partition"
)

// defaultItems is the worked example's second test list; it admits a
// perfect 83/83 split.
var defaultItems = []int{25, 7, 13, 31, 42, 17, 21, 10}

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Split a number list into two halves of equal sum",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := defaultItems
		if flagInstance != "" {
			var inst itemsInstance
			if err := loadInstance(flagInstance, &inst); err != nil {
				return err
			}
			items = inst.Items
		}

		obj, err := partition.Build(items)
		if err != nil {
			return err
		}
		set, err := solve(obj)
		if err != nil {
			return err
		}
		res, err := partition.Decode(items, set)
		if err != nil {
			return err
		}
		logger.Info("partition",
			"set_a", res.SetA,
			"set_b", res.SetB,
			"sum_a", res.SumA,
			"sum_b", res.SumB,
			"difference", res.Difference,
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(partitionCmd)
}
