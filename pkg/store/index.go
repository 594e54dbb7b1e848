package store

import (
	"math"
	"sort"

	"github.com/nodeforge/triq/pkg/rdf"
)

// Index is one of a Model's sorted collections of quads: the same
// logical quads as every other selected ordering, just ordered
// differently. spec.md §4.3 allows "a balanced tree, skip list, or
// B-tree" as the underlying container and notes "a sorted sequence
// suffices semantically" — no ordered-map/B-tree/skip-list library
// appears anywhere in the example corpus (checked against every
// go.mod in the retrieval pack), so Index is a plain sorted slice with
// binary-search lookup; see DESIGN.md for the stdlib justification.
type Index struct {
	ordering Ordering
	perm     [4]rdf.Direction
	entries  []rdf.Quad
}

func newIndex(o Ordering) *Index {
	return &Index{ordering: o, perm: o.Permutation()}
}

// Len returns the number of quads currently stored.
func (ix *Index) Len() int { return len(ix.entries) }

// key extracts the four node-rank components of q under ix's
// permutation, in storage order, for comparison purposes.
func (ix *Index) key(q rdf.Quad) [4]int64 {
	var k [4]int64
	for i, slot := range ix.perm {
		k[i] = q.Get(slot).Rank()
	}
	return k
}

func compareKeys(a, b [4]int64) int {
	for i := 0; i < 4; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// lowerBound returns the index of the first entry whose key is >= the
// key of pattern (padded with wildcards, which rank below everything).
// It is also the insertion point for pattern if pattern is itself a
// concrete quad not yet present.
func (ix *Index) lowerBound(pattern rdf.Quad) int {
	k := ix.key(pattern)
	return sort.Search(len(ix.entries), func(i int) bool {
		return compareKeys(ix.key(ix.entries[i]), k) >= 0
	})
}

// find returns the position of q and true if q is present, using the
// full quad (all four slots, including Graph even for a graph-last
// ordering) as the equality test — this is what keeps two quads that
// share S/P/O but differ only in Graph distinct entries under every
// ordering, graph-aware or not.
func (ix *Index) find(q rdf.Quad) (int, bool) {
	i := ix.lowerBound(q)
	k := ix.key(q)
	for i < len(ix.entries) && compareKeys(ix.key(ix.entries[i]), k) == 0 {
		if ix.entries[i] == q {
			return i, true
		}
		i++
	}
	return i, false
}

// insert adds q in sorted position. It reports false without modifying
// the index if q is already present.
func (ix *Index) insert(q rdf.Quad) bool {
	i, ok := ix.find(q)
	if ok {
		return false
	}
	ix.entries = append(ix.entries, rdf.Quad{})
	copy(ix.entries[i+1:], ix.entries[i:])
	ix.entries[i] = q
	return true
}

// remove deletes q if present, reporting whether it was found.
func (ix *Index) remove(q rdf.Quad) bool {
	i, ok := ix.find(q)
	if !ok {
		return false
	}
	copy(ix.entries[i:], ix.entries[i+1:])
	ix.entries[len(ix.entries)-1] = rdf.Quad{}
	ix.entries = ix.entries[:len(ix.entries)-1]
	return true
}

// at returns the quad stored at storage position i.
func (ix *Index) at(i int) rdf.Quad { return ix.entries[i] }

// prefixRange returns [lo, hi): the contiguous run of entries whose
// leading prefixLen storage slots match pattern's corresponding slots.
// Slots beyond prefixLen are treated as open-ended on both sides,
// regardless of whether pattern happens to bind them — callers that
// need those extra bound slots enforced re-check with rdf.Match.
func (ix *Index) prefixRange(pattern rdf.Quad, prefixLen int) (lo, hi int) {
	var loKey, hiKey [4]int64
	for i, slot := range ix.perm {
		if i < prefixLen {
			r := pattern.Get(slot).Rank()
			loKey[i] = r
			hiKey[i] = r
		} else {
			loKey[i] = math.MinInt64
			hiKey[i] = math.MaxInt64
		}
	}
	lo = sort.Search(len(ix.entries), func(i int) bool {
		return compareKeys(ix.key(ix.entries[i]), loKey) >= 0
	})
	hi = sort.Search(len(ix.entries), func(i int) bool {
		return compareKeys(ix.key(ix.entries[i]), hiKey) > 0
	})
	return lo, hi
}
