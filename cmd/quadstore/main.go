// Command quadstore is an informative demonstration of the in-memory
// RDF quad store: load an N-Quads document, dump a Model back out, or
// run a small fixed demo. It is not a server and not a general RDF
// toolchain — see spec.md §1's scope.
package main

import (
	"fmt"
	"os"

	"github.com/nodeforge/triq/cmd/quadstore/command"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
