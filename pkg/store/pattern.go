package store

import "github.com/nodeforge/triq/pkg/rdf"

// Mode names one of the five ways Iterator.Next can advance, per
// spec.md §4.5.
type Mode byte

const (
	// FullScan walks every entry of the chosen index.
	FullScan Mode = iota
	// SinglePoint is valid for exactly one Get; the next advance
	// terminates regardless of whether further entries would also match.
	SinglePoint
	// PrefixRange walks a contiguous run whose leading prefixLen storage
	// slots match the pattern; a mismatch means end-of-range.
	PrefixRange
	// FilterRange is PrefixRange plus a full Match check on every entry.
	FilterRange
	// FilterAll walks the whole index, keeping only entries that Match.
	FilterAll
)

func (m Mode) String() string {
	switch m {
	case FullScan:
		return "full-scan"
	case SinglePoint:
		return "single-point"
	case PrefixRange:
		return "prefix-range"
	case FilterRange:
		return "filter-range"
	case FilterAll:
		return "filter-all"
	default:
		return "unknown-mode"
	}
}

// plan is the result of pattern analysis: which index to use, how to
// walk it, and how long the indexed prefix is.
type plan struct {
	ordering   Ordering
	mode       Mode
	prefixLen  int
	skipGraphs bool
}

// sigCandidates lists, for each of the eight S?/P?/O? bound-signatures,
// the preferred orderings in the order spec.md §4.4's table names them.
// Index: bit 2 = Subject bound, bit 1 = Predicate bound, bit 0 = Object
// bound.
var sigCandidates = [8][]Ordering{
	0b000: nil, // full scan, handled separately
	0b001: {OPS, OSP},
	0b010: {POS, PSO},
	0b011: {OPS, POS},
	0b100: {SPO, SOP},
	0b101: {SOP, OSP},
	0b110: {SPO, PSO},
	0b111: {SPO}, // single point
}

func signature(sBound, pBound, oBound bool) uint8 {
	var s uint8
	if sBound {
		s |= 0b100
	}
	if pBound {
		s |= 0b010
	}
	if oBound {
		s |= 0b001
	}
	return s
}

// prefixLenFor returns how many leading permutation slots of o are
// bound in pattern, stopping at the first unbound slot — i.e. the
// longest usable prefix range o offers for pattern's S/P/O/G slots.
func prefixLenFor(o Ordering, pattern rdf.Quad) int {
	perm := o.Permutation()
	n := 0
	for _, slot := range perm {
		if pattern.Get(slot) == nil {
			break
		}
		n++
	}
	return n
}

// bestIndex implements spec.md §4.4: choose an ordering and a search
// mode for pattern. distinctStatements requests the "distinct
// statements irrespective of graph" convenience (FindDistinct),
// spec.md §4.4's closing paragraph.
func (m *Model) bestIndex(pattern rdf.Quad, distinctStatements bool) plan {
	sBound := pattern.Subject != nil
	pBound := pattern.Predicate != nil
	oBound := pattern.Object != nil
	gBound := pattern.Graph != nil

	base := m.baseSPOPlan(sBound, pBound, oBound)

	if distinctStatements && !gBound {
		return m.distinctPlan(base)
	}

	if !gBound {
		return base
	}
	return m.promoteForGraph(base, sBound, pBound, oBound)
}

// baseSPOPlan chooses an ordering/mode ignoring Graph entirely.
func (m *Model) baseSPOPlan(sBound, pBound, oBound bool) plan {
	sig := signature(sBound, pBound, oBound)

	if sig == 0 {
		return plan{ordering: SPO, mode: FullScan, prefixLen: 0}
	}
	if sig == 0b111 {
		if m.hasOrdering(SPO) {
			return plan{ordering: SPO, mode: SinglePoint, prefixLen: 3}
		}
		// SPO is always materialized (spec.md §4.3); this branch is
		// unreachable in practice but kept for defensiveness.
	}

	for _, cand := range sigCandidates[sig] {
		if m.hasOrdering(cand) {
			want := bitsSet(sig)
			return plan{ordering: cand, mode: PrefixRange, prefixLen: want}
		}
	}

	// Fallback: any selected non-graph ordering offering at least a
	// 1-slot prefix, filtering the remainder.
	for _, o := range nonGraphOrderings {
		if !m.hasOrdering(o) {
			continue
		}
		if n := prefixLenFor(o, sigPattern(sig)); n >= 1 {
			return plan{ordering: o, mode: FilterRange, prefixLen: n}
		}
	}

	// Last resort: default ordering, full-scan filter.
	return plan{ordering: SPO, mode: FilterAll, prefixLen: 0}
}

// sigPattern builds a representative pattern (nodes are irrelevant,
// only nil-ness matters) from a bound-signature, for prefixLenFor.
func sigPattern(sig uint8) rdf.Quad {
	var q rdf.Quad
	marker := &rdf.Node{}
	if sig&0b100 != 0 {
		q.Subject = marker
	}
	if sig&0b010 != 0 {
		q.Predicate = marker
	}
	if sig&0b001 != 0 {
		q.Object = marker
	}
	return q
}

func bitsSet(sig uint8) int {
	n := 0
	for sig != 0 {
		n += int(sig & 1)
		sig >>= 1
	}
	return n
}

// promoteForGraph applies spec.md §4.4's graph handling on top of a
// Graph-blind base plan.
func (m *Model) promoteForGraph(base plan, sBound, pBound, oBound bool) plan {
	if !m.trackGraphs {
		// Graph isn't indexed at all: downgrade to a filtering mode so
		// the iterator re-checks Graph (and everything else) via Match.
		switch base.mode {
		case SinglePoint, FullScan:
			return plan{ordering: base.ordering, mode: FilterAll, prefixLen: 0}
		case PrefixRange:
			return plan{ordering: base.ordering, mode: FilterRange, prefixLen: base.prefixLen}
		default:
			return base
		}
	}

	variant := base.ordering.graphVariant()
	if m.hasOrdering(variant) {
		mode := base.mode
		if mode == FullScan {
			mode = PrefixRange
		}
		return plan{ordering: variant, mode: mode, prefixLen: base.prefixLen + 1}
	}

	// GSPO is materialized whenever trackGraphs is true, since SPO is
	// always selected; spec.md §4.4's documented fallback.
	return plan{ordering: GSPO, mode: FilterRange, prefixLen: 1}
}

// distinctPlan asks for "distinct statements irrespective of graph":
// base is already Graph-blind, and every non-graph ordering sorts by a
// permutation of S,P,O with Graph as the final tie-break, so quads that
// agree on S,P,O but differ only in Graph are already adjacent in base's
// index. skipGraphs tells Iterator to collapse those runs to one hit.
func (m *Model) distinctPlan(base plan) plan {
	base.skipGraphs = true
	return base
}
