// Package command implements the quadstore CLI's subcommands, in the
// style of cayleygraph-cayley/cmd/cayley/command: one New*Cmd()
// constructor per subcommand, wired together by NewRootCmd.
package command

import (
	"github.com/nodeforge/triq/internal/glogsink"
	"github.com/nodeforge/triq/pkg/rdf"
	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd assembles the quadstore CLI: load, dump and demo.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quadstore",
		Short: "An in-memory RDF quad store, as a command-line demonstration tool",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "route invariant-violation reports through glog instead of the standard logger")

	root.AddCommand(NewLoadCmd())
	root.AddCommand(NewDumpCmd())
	root.AddCommand(NewDemoCmd())
	return root
}

// newWorld returns a World with the error sink the -v flag selects.
func newWorld() *rdf.World {
	w := rdf.NewWorld()
	if verbose {
		w.SetErrorSink(glogsink.Sink{})
	}
	return w
}
