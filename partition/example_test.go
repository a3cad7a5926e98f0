package partition_test

import (
	"context"
	"fmt"

	"github.com/qubolab/qubolab/partition"
	"github.com/qubolab/qubolab/solver"
)

// ExampleBuild splits a small item list into two equal-sum halves using
// the exhaustive reference sampler.
func ExampleBuild() {
	items := []int{25, 7, 13, 31}

	obj, err := partition.Build(items)
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	set, err := new(solver.ExactSampler).Sample(context.Background(), obj, solver.DefaultConfig())
	if err != nil {
		fmt.Println("sample:", err)

		return
	}
	res, err := partition.Decode(items, set)
	if err != nil {
		fmt.Println("decode:", err)

		return
	}
	fmt.Printf("sums=%d/%d difference=%d\n", res.SumA, res.SumB, res.Difference)
	// Output:
	// sums=38/38 difference=0
}
