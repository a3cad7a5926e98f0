package main

import (
	"github.com/spf13/cobra"

	"github.com/qubolab/qubolab/vertexcover"
)

// Worked example graph: a hub vertex 1 plus a triangle 0-1-2; vertices
// {0, 1} cover every edge.
var defaultCoverGraph = graphInstance{
	Vertices: 6,
	Edges: []edgeSpec{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2},
		{U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
	},
}

var flagPenalty float64

var vertexcoverCmd = &cobra.Command{
	Use:   "vertexcover",
	Short: "Find a minimum vertex cover of an undirected graph",
	Long: `Finds a smallest vertex set touching every edge. The edge constraint is
enforced by a penalty weight; too small a penalty can make an uncovered
assignment the energy minimum, which the decoder reports as infeasible
rather than fixing up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst := defaultCoverGraph
		if flagInstance != "" {
			inst = graphInstance{}
			if err := loadInstance(flagInstance, &inst); err != nil {
				return err
			}
		}
		edges := make([]vertexcover.Edge, len(inst.Edges))
		for i, e := range inst.Edges {
			edges[i] = vertexcover.Edge{U: e.U, V: e.V}
		}

		obj, err := vertexcover.Build(inst.Vertices, edges, flagPenalty)
		if err != nil {
			return err
		}
		set, err := solve(obj)
		if err != nil {
			return err
		}
		res, err := vertexcover.Decode(inst.Vertices, edges, set)
		if err != nil {
			return err
		}
		if !res.Feasible {
			logger.Warn("best sample is not a cover; consider a larger --penalty",
				"covered_edges", res.CoveredEdges,
				"edges", len(edges),
			)
		}
		logger.Info("cover",
			"vertices", res.Cover,
			"size", len(res.Cover),
			"covered_edges", res.CoveredEdges,
			"feasible", res.Feasible,
		)

		return nil
	},
}

func init() {
	vertexcoverCmd.Flags().Float64Var(&flagPenalty, "penalty", 10, "edge-constraint penalty weight P")
	rootCmd.AddCommand(vertexcoverCmd)
}
