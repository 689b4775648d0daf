// SPDX-License-Identifier: MIT

// Command flowmat filters and summarises origin-destination flow matrices
// read from long-format CSV files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
