// Package main provides the propgraph CLI.
//
// propgraph reads and writes dotted property paths of YAML and TOML
// documents:
//   - get prints the value at a path
//   - set assigns path=value pairs, creating missing tables on the way
//   - apply assigns every entry of a property sheet
package main

import (
	"fmt"
	"os"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
