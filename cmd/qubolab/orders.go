package main

import (
	"github.com/spf13/cobra"

	"github.com/qubolab/qubolab/orders"
)

// Worked example: six stock orders, three risk factors, several exact
// 500/500 value splits distinguished only by risk exposure.
var defaultStocks = stocksInstance{
	Names:  []string{"A", "B", "C", "D", "E", "F"},
	Values: []float64{300, 100, 100, 200, 200, 100},
	Risk: [][]float64{
		{0.3, 0.1, 0.1, 0.2, 0.2, 0.1},
		{0.4, 0.05, 0.05, 0.12, 0.08, 0.3},
		{0.1, 0.2, 0.2, 0.3, 0.05, 0.05},
	},
}

var (
	flagBalanceA float64
	flagBalanceB float64
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Partition stock orders into two value- and risk-balanced halves",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := defaultStocks
		if flagInstance != "" {
			spec = stocksInstance{}
			if err := loadInstance(flagInstance, &spec); err != nil {
				return err
			}
		}
		inst := orders.Instance{Names: spec.Names, Values: spec.Values, Risk: spec.Risk}

		obj, err := orders.Build(inst, flagBalanceA, flagBalanceB)
		if err != nil {
			return err
		}
		set, err := solve(obj)
		if err != nil {
			return err
		}
		res, err := orders.Decode(inst, set)
		if err != nil {
			return err
		}
		logger.Info("orders",
			"set_a", res.SetA,
			"set_b", res.SetB,
			"cost_a", res.CostA,
			"cost_b", res.CostB,
			"cost_diff", res.CostDiff,
			"risk_diffs", res.RiskDiffs,
			"net_risk_diff", res.NetRiskDiff,
		)

		return nil
	},
}

func init() {
	ordersCmd.Flags().Float64Var(&flagBalanceA, "balance-a", 2, "weight a on the value-balance term")
	ordersCmd.Flags().Float64Var(&flagBalanceB, "balance-b", 2, "weight b on the risk-balance term")
	rootCmd.AddCommand(ordersCmd)
}
