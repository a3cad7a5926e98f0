// Package maxcut formulates maximum cut on weighted undirected graphs as
// a QUBO and decodes sampler output into a two-coloring.
//
// Each edge (i, j, w) contributes
//
//	w·(2·x_i·x_j − x_i − x_j)
//
// whose minimum over the edge, −w, is achieved exactly when x_i ≠ x_j.
// The summed objective is therefore minimized by a maximum-weight cut,
// and the minimum energy over all assignments equals −(maximum cut
// weight).
//
// Vertices are plain integer indices 0..n-1; edges are index pairs with a
// float weight.
package maxcut
