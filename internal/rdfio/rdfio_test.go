package rdfio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nodeforge/triq/pkg/rdf"
	"github.com/nodeforge/triq/pkg/store"
)

func TestNQuadsReader_Read(t *testing.T) {
	input := `PREFIX ex: <http://example.org/>
ex:s ex:p "hello"@en .
ex:s ex:p2 ex:o <http://example.org/g> .
`
	w := rdf.NewWorld()
	r := NewNQuadsReader()

	var got []rdf.Quad
	err := r.Read(strings.NewReader(input), w, func(q rdf.Quad) error {
		got = append(got, q)
		return nil
	})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d quads, want 2", len(got))
	}
	if got[1].Graph == nil || got[1].Graph.String() != "http://example.org/g" {
		t.Errorf("second quad graph = %v, want <http://example.org/g>", got[1].Graph)
	}
}

func TestNQuadsWriter_RoundTrip(t *testing.T) {
	w := rdf.NewWorld()
	m := store.New(w, nil, true)

	s := w.NewURI("http://example.org/s")
	p := w.NewURI("http://example.org/p")
	o := w.NewLiteral(nil, "value", "")
	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o})

	var buf bytes.Buffer
	if err := (NQuadsWriter{}).Write(&buf, m); err != nil {
		t.Fatalf("Write: %v", err)
	}

	w2 := rdf.NewWorld()
	m2 := store.New(w2, nil, true)
	var count int
	err := NewNQuadsReader().Read(&buf, w2, func(q rdf.Quad) error {
		m2.Add(q)
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("round-trip Read: %v", err)
	}
	if count != 1 {
		t.Fatalf("round-trip produced %d quads, want 1", count)
	}
	if !m2.Ask(rdf.Quad{Subject: w2.NewURI("http://example.org/s")}) {
		t.Errorf("round-tripped store is missing the subject")
	}
}
