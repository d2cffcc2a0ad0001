// Command genart grows random expression trees from a seed and renders them
// as images or as a WGSL shader.
//
// Usage:
//
//	genart render --seed 42 -o art.png
//	genart shader --seed 42 --compile
//	genart tree --seed 42 --stats
//	genart watch --config genart.toml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "genart:", err)
		os.Exit(1)
	}
}
