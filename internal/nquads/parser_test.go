package nquads

import (
	"testing"

	"github.com/nodeforge/triq/pkg/rdf"
)

func TestParseNQuads(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{
			name: "simple triple (N-Triples format)",
			input: `<http://example.org/s> <http://example.org/p> <http://example.org/o> .
`,
			expected: 1,
		},
		{
			name: "quad with named graph",
			input: `<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .
`,
			expected: 1,
		},
		{
			name: "multiple quads",
			input: `<http://example.org/s1> <http://example.org/p1> "literal1" .
<http://example.org/s2> <http://example.org/p2> "literal2"^^<http://www.w3.org/2001/XMLSchema#string> <http://example.org/g> .
<http://example.org/s3> <http://example.org/p3> "hello"@en .
`,
			expected: 3,
		},
		{
			name: "with PREFIX",
			input: `PREFIX ex: <http://example.org/>
ex:s ex:p ex:o .
`,
			expected: 1,
		},
		{
			name: "blank nodes",
			input: `_:b1 <http://example.org/p> "value" .
<http://example.org/s> <http://example.org/p> _:b2 _:graph .
`,
			expected: 2,
		},
		{
			name: "numeric literals",
			input: `<http://example.org/s> <http://example.org/p> 42 .
<http://example.org/s2> <http://example.org/p2> 3.14 .
`,
			expected: 2,
		},
		{
			name:    "undefined prefix is an error",
			input:   "ex:s ex:p ex:o .\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := rdf.NewWorld()
			quads, err := NewParser(w, tt.input).Parse()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(quads) != tt.expected {
				t.Fatalf("expected %d quads, got %d", tt.expected, len(quads))
			}
			for i, q := range quads {
				if q.Subject == nil || q.Predicate == nil || q.Object == nil {
					t.Errorf("quad %d has a nil core slot: %v", i, q)
				}
			}
		})
	}
}

func TestParseNQuadsWithGraph(t *testing.T) {
	input := `<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .
`
	w := rdf.NewWorld()
	quads, err := NewParser(w, input).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(quads))
	}
	q := quads[0]
	if q.Graph == nil {
		t.Fatalf("expected a named graph, got the default graph")
	}
	if q.Graph.Type() != rdf.KindURI || q.Graph.String() != "http://example.org/g" {
		t.Errorf("graph = %v, want <http://example.org/g>", q.Graph)
	}
}

func TestParseNTriplesAsQuads(t *testing.T) {
	input := `<http://example.org/s> <http://example.org/p> <http://example.org/o> .
`
	w := rdf.NewWorld()
	quads, err := NewParser(w, input).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(quads))
	}
	if quads[0].Graph != nil {
		t.Errorf("expected the default graph (nil), got %v", quads[0].Graph)
	}
}

func TestParseNQuads_SamePrefixInterningReusesNodes(t *testing.T) {
	input := `PREFIX ex: <http://example.org/>
ex:s ex:p ex:s .
`
	w := rdf.NewWorld()
	quads, err := NewParser(w, input).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quads[0].Subject != quads[0].Object {
		t.Errorf("expanding ex:s twice should intern to the same Node pointer")
	}
}
