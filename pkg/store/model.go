package store

import "github.com/nodeforge/triq/pkg/rdf"

// Model is a multi-index set of quads sharing one rdf.World. Every
// Model.Add/Remove keeps all of its selected orderings in sync and
// adjusts Node refcounts through the World, so a Node disappears from
// the interner exactly when the last quad mentioning it is removed
// from every Model built on that World.
//
// A Model is not safe for concurrent use, matching aleksaelezovic-trigo's
// internal/store.TripleStore (a bare mutex-free struct whose caller is
// expected to serialize access) rather than cayleygraph-cayley's
// QuadStore, which layers its own locking.
type Model struct {
	world       *rdf.World
	orderings   [numOrderings]*Index
	trackGraphs bool
	count       int64
}

// New builds a Model over world, materializing the default SPO
// ordering plus every ordering named in selected. SPO is always
// materialized regardless of whether it appears in selected, per
// spec.md §4.3. A graph-prefixed ordering in selected selects its
// graph-last counterpart. If trackGraphs is true, the graph-prefixed
// counterpart of every materialized non-graph ordering is materialized
// too; otherwise no graph-prefixed ordering is.
func New(world *rdf.World, selected []Ordering, trackGraphs bool) *Model {
	m := &Model{world: world, trackGraphs: trackGraphs}
	m.orderings[SPO] = newIndex(SPO)
	for _, o := range selected {
		o = o.nonGraph()
		if m.orderings[o] == nil {
			m.orderings[o] = newIndex(o)
		}
	}
	if trackGraphs {
		for _, o := range nonGraphOrderings {
			if m.orderings[o] != nil {
				gv := o.graphVariant()
				m.orderings[gv] = newIndex(gv)
			}
		}
	}
	return m
}

func (m *Model) hasOrdering(o Ordering) bool { return m.orderings[o] != nil }

// World returns the rdf.World backing this Model.
func (m *Model) World() *rdf.World { return m.world }

// NumQuads returns the number of distinct quads currently stored.
func (m *Model) NumQuads() int64 { return m.count }

// TracksGraphs reports whether this Model materializes graph-prefixed
// orderings.
func (m *Model) TracksGraphs() bool { return m.trackGraphs }

// Add inserts q into every materialized ordering and retains each of
// its four Nodes. It reports false, changing nothing, if q (including
// its Graph) is already present — this is the idempotent-add invariant
// of spec.md §4.2. q must satisfy q.IsValid(); a quad with a nil
// Subject, Predicate or Object is rejected via the World's error sink
// rather than stored. A nil Graph stores q in the default graph.
func (m *Model) Add(q rdf.Quad) bool {
	if !q.IsValid() {
		m.world.Reportf("store: refusing to add quad with a nil slot: %s", q.String())
		return false
	}
	if !m.orderings[SPO].insert(q) {
		return false
	}
	for o := SOP; o < numOrderings; o++ {
		if ix := m.orderings[o]; ix != nil {
			ix.insert(q)
		}
	}
	m.world.Retain(q.Subject)
	m.world.Retain(q.Predicate)
	m.world.Retain(q.Object)
	m.world.Retain(q.Graph)
	m.count++
	return true
}

// Remove deletes q from every materialized ordering and releases each
// of its four Nodes. It reports false, changing nothing, if q was not
// present.
func (m *Model) Remove(q rdf.Quad) bool {
	if !m.orderings[SPO].remove(q) {
		return false
	}
	for o := SOP; o < numOrderings; o++ {
		if ix := m.orderings[o]; ix != nil {
			ix.remove(q)
		}
	}
	m.world.Release(q.Subject)
	m.world.Release(q.Predicate)
	m.world.Release(q.Object)
	m.world.Release(q.Graph)
	m.count--
	return true
}

// Erase removes the quad it.Get() currently names, then advances it
// past the removed position so iteration can continue. It reports
// false if it was not Valid.
func (m *Model) Erase(it *Iterator) bool {
	if !it.Valid() {
		return false
	}
	q := it.Get()
	m.Remove(q)
	// The removal shifted every later entry in every index down by one
	// slot; an iterator walking the same index it was built from must
	// not advance its position, since the next entry has slid into the
	// slot just vacated. SinglePoint iterators terminate either way.
	if it.plan.mode == SinglePoint {
		it.state = stateTerminal
		return true
	}
	it.end--
	it.settle()
	return true
}

// Find returns an Iterator over every quad matching pattern, choosing
// the best available ordering per spec.md §4.4. A nil slot in pattern
// is a wildcard for that position. One exception: when Subject,
// Predicate and Object are bound and Graph is not, the iterator runs in
// SinglePoint mode and yields only the first matching quad, even if the
// same statement is stored in several graphs (see Iterator.Next).
func (m *Model) Find(pattern rdf.Quad) *Iterator {
	pl := m.bestIndex(pattern, false)
	return m.newIterator(pattern, pl)
}

// FindDistinct is like Find but, when pattern leaves Graph unbound,
// yields each matching (Subject, Predicate, Object) at most once
// regardless of which graph(s) it appears in. Calling it with a bound
// Graph is equivalent to Find.
func (m *Model) FindDistinct(pattern rdf.Quad) *Iterator {
	pl := m.bestIndex(pattern, true)
	return m.newIterator(pattern, pl)
}

// Begin returns an Iterator over every quad in the Model.
func (m *Model) Begin() *Iterator {
	return m.Find(rdf.Quad{})
}

// Ask reports whether any quad matches pattern.
func (m *Model) Ask(pattern rdf.Quad) bool {
	return m.Find(pattern).Valid()
}

// Contains reports whether a quad matching q is stored. It is the same
// as Ask: a nil Graph in q is a wildcard, so a q with a nil Graph is
// reported as contained when its statement is stored in any graph.
func (m *Model) Contains(q rdf.Quad) bool {
	return m.Ask(q)
}

// Count returns the number of quads Find yields for pattern. For the
// all-wildcard pattern this is NumQuads without a scan. For a pattern
// that binds Subject, Predicate and Object but not Graph it is at most
// 1, since Find yields a single quad there.
func (m *Model) Count(pattern rdf.Quad) int64 {
	if pattern.Subject == nil && pattern.Predicate == nil && pattern.Object == nil && pattern.Graph == nil {
		return m.count
	}
	var n int64
	for it := m.Find(pattern); it.Valid(); it.Next() {
		n++
	}
	return n
}

// Get returns the first quad matching pattern, if any.
func (m *Model) Get(pattern rdf.Quad) (rdf.Quad, bool) {
	it := m.Find(pattern)
	if !it.Valid() {
		return rdf.Quad{}, false
	}
	return it.Get(), true
}

// RemoveGraph removes every quad whose Graph is g, returning how many
// were removed. This is a supplemented convenience (SPEC_FULL.md) built
// on top of Find + Remove rather than a primitive of its own.
func (m *Model) RemoveGraph(g *rdf.Node) int {
	var matched []rdf.Quad
	for it := m.Find(rdf.Quad{Graph: g}); it.Valid(); it.Next() {
		if q := it.Get(); q.Graph == g {
			matched = append(matched, q)
		}
	}
	for _, q := range matched {
		m.Remove(q)
	}
	return len(matched)
}

// IsInlineObject reports whether node is a blank node that can be
// written inline (Turtle/TriG "[ ... ]" syntax) rather than by label:
// per spec.md §6, it must appear as the object of exactly one statement
// and nowhere as a subject. This mirrors the inline-blank-node rule
// aleksaelezovic-trigo's Turtle writer applies before it was dropped as
// out of scope (see DESIGN.md). Nothing in this module calls it: the
// N-Quads writer in rdfio writes every blank node by its label.
func (m *Model) IsInlineObject(node *rdf.Node) bool {
	if node == nil || node.Type() != rdf.KindBlank {
		return false
	}
	if m.Ask(rdf.Quad{Subject: node}) {
		return false
	}
	it := m.Find(rdf.Quad{Object: node})
	if !it.Valid() {
		return false
	}
	it.Next()
	return !it.Valid()
}
