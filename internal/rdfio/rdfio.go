// Package rdfio implements spec.md §6's reader and writer contracts:
// a Reader that turns a byte stream into a sequence of quads, honoring
// base-IRI and prefix context, and a Writer that serializes a Model's
// quads back out. The N-Quads writer groups quads by subject and writes
// every blank node by its label; it does not consult
// Model.IsInlineObject, since N-Quads has no inline blank-node syntax.
//
// This is deliberately a minimal N-Quads/N-Triples implementation, not
// a general RDF-syntax suite — Turtle/TriG/RDF-XML/JSON-LD stay out of
// scope per spec.md §1. It exists to drive the quadstore CLI's
// load/dump commands.
package rdfio

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/nodeforge/triq/internal/nquads"
	"github.com/nodeforge/triq/pkg/rdf"
	"github.com/nodeforge/triq/pkg/store"
)

// StatementFunc receives one parsed quad at a time from a Reader.
type StatementFunc func(rdf.Quad) error

// Reader is spec.md §6's reader contract.
type Reader interface {
	// SetBaseURI records a base IRI. The N-Quads reader passes it on
	// to its parser, which does not use it: relative IRI references
	// are kept verbatim and prefixed names expand against their prefix
	// only.
	SetBaseURI(uri string)
	// SetPrefix pre-declares a prefix binding, as if it were the first
	// directive in the document.
	SetPrefix(prefix, uri string)
	// Read parses in, interning every term through world and invoking
	// stmt once per quad in document order.
	Read(in io.Reader, world *rdf.World, stmt StatementFunc) error
}

// Writer is spec.md §6's writer contract: serialize every quad in m.
// NQuadsWriter, the only implementation, writes blank nodes by label
// and does not call m.IsInlineObject.
type Writer interface {
	Write(out io.Writer, m *store.Model) error
}

// NQuadsReader is the Reader implementation for application/n-quads
// (and, as its subset, application/n-triples).
type NQuadsReader struct {
	baseURI  string
	prefixes map[string]string
}

// NewNQuadsReader returns a ready-to-use NQuadsReader.
func NewNQuadsReader() *NQuadsReader {
	return &NQuadsReader{prefixes: make(map[string]string)}
}

func (r *NQuadsReader) SetBaseURI(uri string) { r.baseURI = uri }

func (r *NQuadsReader) SetPrefix(prefix, uri string) {
	if r.prefixes == nil {
		r.prefixes = make(map[string]string)
	}
	r.prefixes[prefix] = uri
}

func (r *NQuadsReader) Read(in io.Reader, world *rdf.World, stmt StatementFunc) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("rdfio: reading input: %w", err)
	}
	p := nquads.NewParser(world, string(data))
	p.SetBaseURI(r.baseURI)
	for name, uri := range r.prefixes {
		p.SetPrefix(name, uri)
	}
	quads, err := p.Parse()
	if err != nil {
		return err
	}
	for _, q := range quads {
		if err := stmt(q); err != nil {
			return err
		}
	}
	return nil
}

// NQuadsWriter is the Writer implementation for application/n-quads.
// It groups output by subject (stable creation order, via Node.Rank)
// purely for readability; N-Quads carries no structural nesting, so
// grouping is cosmetic rather than semantic.
type NQuadsWriter struct{}

func (NQuadsWriter) Write(out io.Writer, m *store.Model) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	var quads []rdf.Quad
	for it := m.Begin(); it.Valid(); it.Next() {
		quads = append(quads, it.Get())
	}
	sort.Slice(quads, func(i, j int) bool {
		return quadLess(quads[i], quads[j])
	})

	for _, q := range quads {
		if _, err := fmt.Fprintln(w, q.NQuad()); err != nil {
			return err
		}
	}
	return nil
}

func quadLess(a, b rdf.Quad) bool {
	if a.Subject.Rank() != b.Subject.Rank() {
		return a.Subject.Rank() < b.Subject.Rank()
	}
	if a.Predicate.Rank() != b.Predicate.Rank() {
		return a.Predicate.Rank() < b.Predicate.Rank()
	}
	if a.Object.Rank() != b.Object.Rank() {
		return a.Object.Rank() < b.Object.Rank()
	}
	return a.Graph.Rank() < b.Graph.Rank()
}
