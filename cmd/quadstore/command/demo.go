package command

import (
	"fmt"

	"github.com/nodeforge/triq/pkg/rdf"
	"github.com/nodeforge/triq/pkg/store"
	"github.com/spf13/cobra"
)

// NewDemoCmd builds a small fixed quad set in memory and exercises
// Find/Count/RemoveGraph against it, as a self-contained replacement
// for the teacher's bare os.Args "demo" subcommand.
func NewDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a small in-memory quad set and show pattern lookups against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := newWorld()
			m := store.New(w, []store.Ordering{store.POS, store.OSP}, true)

			knows := w.NewURI("http://example.org/knows")
			name := w.NewURI("http://example.org/name")
			alice := w.NewURI("http://example.org/alice")
			bob := w.NewURI("http://example.org/bob")
			carol := w.NewURI("http://example.org/carol")
			friends := w.NewURI("http://example.org/graphs/friends")

			m.Add(rdf.Quad{Subject: alice, Predicate: knows, Object: bob, Graph: friends})
			m.Add(rdf.Quad{Subject: alice, Predicate: knows, Object: carol, Graph: friends})
			m.Add(rdf.Quad{Subject: alice, Predicate: name, Object: w.NewLiteral(nil, "Alice", "")})
			m.Add(rdf.Quad{Subject: bob, Predicate: name, Object: w.NewLiteral(nil, "Bob", "")})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total quads: %d\n", m.NumQuads())
			fmt.Fprintf(out, "alice knows: %d\n", m.Count(rdf.Quad{Subject: alice, Predicate: knows}))

			if q, ok := m.Get(rdf.Quad{Subject: alice, Predicate: name}); ok {
				fmt.Fprintf(out, "alice's name: %s\n", q.Object)
			}

			removed := m.RemoveGraph(friends)
			fmt.Fprintf(out, "removed %d quads from the friends graph; %d quads remain\n", removed, m.NumQuads())
			return nil
		},
	}
}
