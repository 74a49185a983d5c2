// Command pairgen generates labeled negative pairs for sequence-pair
// classifier training data from the command line. It is a thin front end
// over the engine packages; all algorithmic behavior lives in the library.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
