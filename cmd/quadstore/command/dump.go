package command

import (
	"fmt"

	"github.com/nodeforge/triq/internal/rdfio"
	"github.com/nodeforge/triq/pkg/rdf"
	"github.com/nodeforge/triq/pkg/store"
	"github.com/spf13/cobra"
)

// NewDumpCmd loads a document and immediately re-serializes it,
// exercising the Writer contract (and, incidentally, round-tripping
// through the Model's indices) — spec.md §6.
func NewDumpCmd() *cobra.Command {
	var inSyntax, outSyntax, inline string

	cmd := &cobra.Command{
		Use:   "dump [input] [base-uri]",
		Short: "Load a document into a Model and write it back out",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inSyntax != "nquads" || outSyntax != "nquads" {
				return fmt.Errorf("only \"nquads\" is implemented for -i/-o")
			}

			in, baseURI, err := openInput(inline, args)
			if err != nil {
				return err
			}
			defer in.Close()

			w := newWorld()
			m := store.New(w, nil, true)
			reader := rdfio.NewNQuadsReader()
			reader.SetBaseURI(baseURI)
			err = reader.Read(in, w, func(q rdf.Quad) error {
				m.Add(q)
				return nil
			})
			if err != nil {
				return err
			}

			return (rdfio.NQuadsWriter{}).Write(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().StringVarP(&inSyntax, "in-syntax", "i", "nquads", "input syntax")
	cmd.Flags().StringVarP(&outSyntax, "out-syntax", "o", "nquads", "output syntax")
	cmd.Flags().StringVarP(&inline, "string", "s", "", "read the document from this string instead of a file/stdin")
	return cmd
}
