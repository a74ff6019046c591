// Command tabq queries delimited text and Parquet files with a small
// functional query language.
package main

//go:generate go run ../../testdata/generate.go -out ../../testdata

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
