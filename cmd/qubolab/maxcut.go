package main

import (
	"github.com/spf13/cobra"

	"github.com/qubolab/qubolab/maxcut"
)

// Worked example graph: five vertices, six unit edges, maximum cut 5.
var defaultCutGraph = graphInstance{
	Vertices: 5,
	Edges: []edgeSpec{
		{U: 0, V: 1, Weight: 1}, {U: 0, V: 3, Weight: 1},
		{U: 1, V: 2, Weight: 1}, {U: 2, V: 3, Weight: 1},
		{U: 2, V: 4, Weight: 1}, {U: 3, V: 4, Weight: 1},
	},
}

var maxcutCmd = &cobra.Command{
	Use:   "maxcut",
	Short: "Find a maximum-weight cut of an undirected graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		inst := defaultCutGraph
		if flagInstance != "" {
			inst = graphInstance{}
			if err := loadInstance(flagInstance, &inst); err != nil {
				return err
			}
		}
		edges := make([]maxcut.Edge, len(inst.Edges))
		for i, e := range inst.Edges {
			edges[i] = maxcut.Edge{U: e.U, V: e.V, Weight: e.Weight}
		}

		obj, err := maxcut.Build(inst.Vertices, edges)
		if err != nil {
			return err
		}
		set, err := solve(obj)
		if err != nil {
			return err
		}
		res, err := maxcut.Decode(inst.Vertices, edges, set)
		if err != nil {
			return err
		}
		logger.Info("cut",
			"left", res.Left,
			"right", res.Right,
			"cut_edges", res.CutEdges,
			"cut_weight", res.CutWeight,
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(maxcutCmd)
}
