package store

import "github.com/nodeforge/triq/pkg/rdf"

// iterState is the small state machine spec.md §4.7 describes: a
// freshly constructed Iterator settles immediately into Active (there
// is at least one matching entry) or Terminal (there is none); Next
// only ever moves Active -> Active or Active -> Terminal, and Terminal
// is absorbing.
type iterState byte

const (
	stateActive iterState = iota
	stateTerminal
)

// Iterator walks the quads matching a Find pattern, per spec.md §4.5.
// It holds no lock on the Model: mutating the Model while an Iterator
// from it is live is the caller's responsibility to avoid, exactly as
// with Go's own map and slice iteration.
type Iterator struct {
	model *Model
	ix    *Index
	plan  plan
	pattern rdf.Quad

	pos, end int
	state    iterState

	prevKey  [4]int64
	havePrev bool
}

func (m *Model) newIterator(pattern rdf.Quad, pl plan) *Iterator {
	it := &Iterator{
		model:   m,
		ix:      m.orderings[pl.ordering],
		plan:    pl,
		pattern: pattern,
	}
	it.init()
	return it
}

func (it *Iterator) init() {
	switch it.plan.mode {
	case FullScan, FilterAll:
		it.pos, it.end = 0, it.ix.Len()
	default: // SinglePoint, PrefixRange, FilterRange
		it.pos, it.end = it.ix.prefixRange(it.pattern, it.plan.prefixLen)
	}
	it.settle()
}

func (it *Iterator) needsFilter() bool {
	return it.plan.mode == FilterRange || it.plan.mode == FilterAll
}

// settle advances it.pos forward (if necessary) until it lands on a
// genuinely matching, non-duplicate entry, or exhausts the range.
func (it *Iterator) settle() {
	for it.pos < it.end {
		q := it.ix.at(it.pos)
		if it.needsFilter() && !rdf.Match(q, it.pattern) {
			it.pos++
			continue
		}
		if it.plan.skipGraphs && it.havePrev {
			k := it.ix.key(q)
			if k[0] == it.prevKey[0] && k[1] == it.prevKey[1] && k[2] == it.prevKey[2] {
				it.pos++
				continue
			}
		}
		if it.plan.skipGraphs {
			it.prevKey = it.ix.key(q)
			it.havePrev = true
		}
		it.state = stateActive
		return
	}
	it.state = stateTerminal
}

// Valid reports whether Get returns a meaningful quad.
func (it *Iterator) Valid() bool { return it.state == stateActive }

// Get returns the quad at the iterator's current position, or the
// zero Quad if the iterator is not Valid.
func (it *Iterator) Get() rdf.Quad {
	if !it.Valid() {
		return rdf.Quad{}
	}
	return it.ix.at(it.pos)
}

// GetField returns a single slot of the current quad.
func (it *Iterator) GetField(d rdf.Direction) *rdf.Node {
	return it.Get().Get(d)
}

// Mode reports the search strategy this iterator settled on, mostly
// useful for tests and diagnostics.
func (it *Iterator) Mode() Mode { return it.plan.mode }

// Next advances the iterator and reports whether it landed on another
// match. SinglePoint iterators are valid for exactly one Get: the next
// advance always terminates, even if further entries would also match
// the pattern (they differ only in Graph, which single-point mode does
// not distinguish among) — see spec.md §4.5.
func (it *Iterator) Next() bool {
	if it.state != stateActive {
		return false
	}
	if it.plan.mode == SinglePoint {
		it.state = stateTerminal
		return false
	}
	it.pos++
	it.settle()
	return it.Valid()
}
