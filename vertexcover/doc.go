// Package vertexcover formulates minimum vertex cover as a penalty-based
// QUBO and decodes sampler output into a cover with a feasibility verdict.
//
// The objective is
//
//	Σ x_i  +  P·Σ_{(i,j)∈E} (1 − x_i − x_j + x_i·x_j)
//
// where the first sum prices each selected vertex and the penalty term is
// zero iff every edge has at least one selected endpoint.
//
// ⚠️ Choosing P
//
// The penalty must be large enough that violating any edge constraint is
// never cheaper than selecting one more vertex. This package does not
// search for such a value — P is caller-supplied configuration, and a
// too-small P can make an infeasible (non-covering) assignment the
// objective's optimum. Decode therefore reports CoveredEdges and a
// Feasible flag instead of trusting the energy: an assignment covering
// fewer edges than the graph has is flagged, never silently accepted.
package vertexcover
