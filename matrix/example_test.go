// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/flowmat/matrix"
)

// ExampleFromRecords builds a commuting matrix from long-format records.
func ExampleFromRecords() {
	m, err := matrix.FromRecords([]matrix.FlowRecord{
		{Origin: "A", Destination: "B", Weight: 5},
		{Origin: "B", Destination: "A", Weight: 3},
		{Origin: "B", Destination: "C", Weight: 2},
		{Origin: "C", Destination: "B", Weight: 1},
	})
	if err != nil {
		panic(err)
	}
	fmt.Print(m)
	fmt.Println(m.Links(), m.Sum())
	// Output:
	// A B C
	// [0, 5, 0]
	// [3, 0, 2]
	// [0, 1, 0]
	// 4 11
}
