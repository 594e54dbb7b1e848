package store

import (
	"fmt"
	"testing"

	"github.com/nodeforge/triq/pkg/rdf"
)

func newTestWorld() *rdf.World { return rdf.NewWorld() }

// populate300 inserts 300 subjects each with two quads (600 total),
// sharing one predicate; each subject gets its own object literal and,
// as second object, the IRI of the next subject. Mirrors spec.md §8
// scenario 1.
func populate300(t *testing.T, w *rdf.World, m *Model) []rdf.Quad {
	t.Helper()
	pred := w.NewURI("http://example.org/knows")
	var all []rdf.Quad
	for i := 0; i < 300; i++ {
		s := w.NewURI(fmt.Sprintf("http://example.org/person/%d", i))
		o1 := w.NewLiteral(nil, fmt.Sprintf("friend-%d", i), "")
		o2 := w.NewURI(fmt.Sprintf("http://example.org/person/%d", (i+1)%300))
		q1 := rdf.Quad{Subject: s, Predicate: pred, Object: o1}
		q2 := rdf.Quad{Subject: s, Predicate: pred, Object: o2}
		if !m.Add(q1) {
			t.Fatalf("Add q1 for subject %d reported duplicate", i)
		}
		if !m.Add(q2) {
			t.Fatalf("Add q2 for subject %d reported duplicate", i)
		}
		all = append(all, q1, q2)
	}
	return all
}

func TestModel_SPOOnly_ScanAndLookup(t *testing.T) {
	w := newTestWorld()
	m := New(w, nil, false)
	all := populate300(t, w, m)

	if got := m.NumQuads(); got != int64(len(all)) {
		t.Fatalf("NumQuads() = %d, want %d", got, len(all))
	}

	count := 0
	for it := m.Begin(); it.Valid(); it.Next() {
		count++
	}
	if count != len(all) {
		t.Fatalf("full scan visited %d quads, want %d", count, len(all))
	}

	target := all[42]
	if !m.Contains(target) {
		t.Fatalf("Contains(%v) = false, want true", target)
	}

	n := 0
	for it := m.Find(rdf.Quad{Subject: target.Subject}); it.Valid(); it.Next() {
		n++
	}
	if n != 2 {
		t.Fatalf("Find(Subject) matched %d quads, want 2", n)
	}
}

func TestModel_Add_IsIdempotent(t *testing.T) {
	w := newTestWorld()
	m := New(w, nil, false)
	s := w.NewURI("http://example.org/s")
	p := w.NewURI("http://example.org/p")
	o := w.NewLiteral(nil, "value", "")
	q := rdf.Quad{Subject: s, Predicate: p, Object: o}

	if !m.Add(q) {
		t.Fatalf("first Add reported duplicate")
	}
	if m.Add(q) {
		t.Fatalf("second Add of the same quad reported success")
	}
	if m.NumQuads() != 1 {
		t.Fatalf("NumQuads() = %d, want 1", m.NumQuads())
	}
}

func TestModel_BlankSubjectLookup(t *testing.T) {
	w := newTestWorld()
	m := New(w, nil, false)
	b := w.NewBlank("b0")
	p := w.NewURI("http://example.org/p")
	o := w.NewURI("http://example.org/o")
	q := rdf.Quad{Subject: b, Predicate: p, Object: o}
	m.Add(q)

	sameB := w.NewBlank("b0")
	if sameB != b {
		t.Fatalf("NewBlank did not return the same canonical Node for the same label")
	}
	got, ok := m.Get(rdf.Quad{Subject: sameB})
	if !ok || got != q {
		t.Fatalf("Get(Subject: b0) = %v, %v; want %v, true", got, ok, q)
	}
}

// TestModel_SingleOrderingConfigurations runs a full scan, Contains and
// a Subject lookup against each of the six single-ordering
// configurations in turn — spec.md §8 scenario 5.
func TestModel_SingleOrderingConfigurations(t *testing.T) {
	for _, o := range []Ordering{SPO, POS, OSP, SOP, PSO, OPS} {
		o := o
		t.Run(o.String(), func(t *testing.T) {
			w := newTestWorld()
			m := New(w, []Ordering{o}, false)
			all := populate300(t, w, m)

			for it := m.Begin(); it.Valid(); it.Next() {
			}

			target := all[7]
			if !m.Contains(target) {
				t.Fatalf("Contains failed under ordering %v", o)
			}
			n := 0
			for it := m.Find(rdf.Quad{Subject: target.Subject}); it.Valid(); it.Next() {
				n++
			}
			if n != 2 {
				t.Fatalf("ordering %v: Find(Subject) matched %d, want 2", o, n)
			}
		})
	}
}

func TestModel_EraseViaIteratorUntilEmpty(t *testing.T) {
	w := newTestWorld()
	m := New(w, []Ordering{POS, OSP}, true)
	all := populate300(t, w, m)
	if len(all) != 600 {
		t.Fatalf("setup produced %d quads, want 600", len(all))
	}

	removed := 0
	it := m.Begin()
	for it.Valid() {
		m.Erase(it)
		removed++
	}
	if removed != 600 {
		t.Fatalf("erased %d quads, want 600", removed)
	}
	if m.NumQuads() != 0 {
		t.Fatalf("NumQuads() = %d after erasing everything, want 0", m.NumQuads())
	}
	if w.NumNodes() != 0 {
		t.Fatalf("World still has %d interned nodes after emptying the Model", w.NumNodes())
	}
}

func TestModel_PatternPrefersGraphIndex(t *testing.T) {
	w := newTestWorld()
	m := New(w, []Ordering{POS}, true)
	p := w.NewURI("http://example.org/p")
	o := w.NewURI("http://example.org/o")
	g1 := w.NewURI("http://example.org/g1")
	g2 := w.NewURI("http://example.org/g2")
	s1 := w.NewURI("http://example.org/s1")
	s2 := w.NewURI("http://example.org/s2")

	m.Add(rdf.Quad{Subject: s1, Predicate: p, Object: o, Graph: g1})
	m.Add(rdf.Quad{Subject: s2, Predicate: p, Object: o, Graph: g2})

	it := m.Find(rdf.Quad{Predicate: p, Object: o, Graph: g1})
	if !it.Valid() {
		t.Fatalf("expected a match restricted to g1")
	}
	if it.Get().Graph != g1 {
		t.Fatalf("matched quad has graph %v, want g1", it.Get().Graph)
	}
	it.Next()
	if it.Valid() {
		t.Fatalf("expected exactly one match for (p,o,g1), got another: %v", it.Get())
	}
}

func TestModel_RemoveGraph(t *testing.T) {
	w := newTestWorld()
	m := New(w, nil, true)
	p := w.NewURI("http://example.org/p")
	o := w.NewURI("http://example.org/o")
	g := w.NewURI("http://example.org/g")
	other := w.NewURI("http://example.org/other")

	for i := 0; i < 5; i++ {
		s := w.NewURI(fmt.Sprintf("http://example.org/s/%d", i))
		m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g})
	}
	m.Add(rdf.Quad{Subject: other, Predicate: p, Object: o, Graph: other})

	n := m.RemoveGraph(g)
	if n != 5 {
		t.Fatalf("RemoveGraph removed %d quads, want 5", n)
	}
	if m.Ask(rdf.Quad{Graph: g}) {
		t.Fatalf("graph g still has quads after RemoveGraph")
	}
	if !m.Ask(rdf.Quad{Graph: other}) {
		t.Fatalf("RemoveGraph over-deleted: graph other should be untouched")
	}
}

func TestModel_FindDistinct_CollapsesAcrossGraphs(t *testing.T) {
	w := newTestWorld()
	m := New(w, nil, true)
	s := w.NewURI("http://example.org/s")
	p := w.NewURI("http://example.org/p")
	o := w.NewURI("http://example.org/o")
	g1 := w.NewURI("http://example.org/g1")
	g2 := w.NewURI("http://example.org/g2")

	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g1})
	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g2})

	n := 0
	for it := m.FindDistinct(rdf.Quad{Subject: s}); it.Valid(); it.Next() {
		n++
	}
	if n != 1 {
		t.Fatalf("FindDistinct matched %d distinct statements, want 1", n)
	}

	n = 0
	for it := m.Find(rdf.Quad{Subject: s}); it.Valid(); it.Next() {
		n++
	}
	if n != 2 {
		t.Fatalf("Find (non-distinct) matched %d quads, want 2", n)
	}
}

func TestModel_IsInlineObject(t *testing.T) {
	w := newTestWorld()
	m := New(w, nil, false)
	s := w.NewURI("http://example.org/s")
	p := w.NewURI("http://example.org/p")
	inline := w.NewBlank("inline")
	shared := w.NewBlank("shared")

	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: inline})
	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: shared})
	m.Add(rdf.Quad{Subject: shared, Predicate: p, Object: s})

	if !m.IsInlineObject(inline) {
		t.Fatalf("expected inline blank node to qualify for inline abbreviation")
	}
	if m.IsInlineObject(shared) {
		t.Fatalf("blank node used as a subject elsewhere must not be inlined")
	}
}
