package pathway_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qubolab/pathway"
)

// sampleMutations is a synthetic record stream: TP53 in three patients,
// FLT3 and NPM1 in two each (FLT3 first-seen earlier), KRAS in one, plus
// one duplicate record that must not inflate patient coverage.
func sampleMutations() []pathway.Mutation {
	return []pathway.Mutation{
		{Gene: "TP53", Patient: "p1"},
		{Gene: "FLT3", Patient: "p1"},
		{Gene: "TP53", Patient: "p2"},
		{Gene: "NPM1", Patient: "p2"},
		{Gene: "TP53", Patient: "p3"},
		{Gene: "KRAS", Patient: "p3"},
		{Gene: "FLT3", Patient: "p4"},
		{Gene: "NPM1", Patient: "p5"},
		{Gene: "TP53", Patient: "p1"}, // duplicate patient-gene record
	}
}

// TestNewDataset_Validation covers the guard conditions.
func TestNewDataset_Validation(t *testing.T) {
	_, err := pathway.NewDataset(nil, 5)
	assert.ErrorIs(t, err, pathway.ErrNoMutations)

	_, err = pathway.NewDataset(sampleMutations(), 0)
	assert.ErrorIs(t, err, pathway.ErrBadTopN)
}

// TestNewDataset_Matrices verifies gene selection, ordering, and the D/A
// matrix counts on the synthetic stream.
func TestNewDataset_Matrices(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 3)
	require.NoError(t, err)

	// KRAS (1 record) is dropped; universe is sorted lexicographically.
	assert.Equal(t, []string{"FLT3", "NPM1", "TP53"}, ds.Genes)
	assert.Equal(t, 5, ds.Patients)

	// Coverage counts distinct patients, so the duplicate record does not
	// lift TP53 past 3.
	assert.Equal(t, []float64{2, 2, 3}, ds.Coverage)

	// p1 carries {FLT3, TP53}, p2 carries {NPM1, TP53}; no patient
	// carries FLT3 and NPM1 together.
	assert.Equal(t, 1.0, ds.Exclusivity[0][2])
	assert.Equal(t, 1.0, ds.Exclusivity[2][0], "A is symmetric")
	assert.Equal(t, 1.0, ds.Exclusivity[1][2])
	assert.Equal(t, 0.0, ds.Exclusivity[0][1])
	assert.Equal(t, 0.0, ds.Exclusivity[1][1], "zero diagonal")
}

// TestNewDataset_TieBreakFirstSeen verifies that equally frequent genes
// rank by first appearance in the stream.
func TestNewDataset_TieBreakFirstSeen(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 2)
	require.NoError(t, err)

	// FLT3 and NPM1 both count 2; FLT3 appeared first and wins the slot.
	assert.Equal(t, []string{"FLT3", "TP53"}, ds.Genes)
}

// TestNewDataset_SmallUniverse verifies that topN above the distinct gene
// count keeps everything.
func TestNewDataset_SmallUniverse(t *testing.T) {
	ds, err := pathway.NewDataset(sampleMutations(), 33)
	require.NoError(t, err)
	assert.Equal(t, []string{"FLT3", "KRAS", "NPM1", "TP53"}, ds.Genes)
}

// TestReadMutations parses the JSON projection of a mutation service
// response.
func TestReadMutations(t *testing.T) {
	in := `[
		{"gene_symbol": "TP53", "patient_id": "p1"},
		{"gene_symbol": "FLT3", "patient_id": "p2"}
	]`

	muts, err := pathway.ReadMutations(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []pathway.Mutation{
		{Gene: "TP53", Patient: "p1"},
		{Gene: "FLT3", Patient: "p2"},
	}, muts)

	_, err = pathway.ReadMutations(strings.NewReader("{not json"))
	assert.Error(t, err)
}
