// Package pathway formulates altered-cancer-pathway discovery as a QUBO
// over a gene universe derived from patient–gene mutation records.
//
// 🚀 The model
//
//	From raw (gene, patient) mutation records, NewDataset derives the n
//	most frequently mutated genes together with two matrices:
//
//	  D — diagonal coverage matrix: D[i] counts the patients carrying
//	      gene i
//	  A — symmetric exclusivity matrix: A[i][j] counts the patients
//	      carrying both genes of the unordered pair (i, j)
//
//	The objective is xᵀ(A − α·D)x for a tunable trade-off weight α:
//	minimizing favors gene sets whose members co-occur rarely (mutual
//	exclusivity) while being individually frequent (coverage), following
//	the altered-pathway discovery heuristic of Alghassi et al.
//
// The mutation-record source is out of scope: records arrive pre-fetched
// (ReadMutations parses a plain JSON array of them). Dataset construction
// is a pure fetch-once transformation — records in, immutable
// (genes, D, A) out — with no incremental global state.
package pathway
