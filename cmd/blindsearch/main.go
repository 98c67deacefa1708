// Command blindsearch solves the 3×3 magic-square sliding puzzle with
// breadth-first or depth-first search.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
