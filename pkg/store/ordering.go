// Package store implements the multi-index quad set (Model), its
// pattern-driven index selection, and the Iterator engine that walks a
// chosen index. The twelve orderings and the Table enum they replace
// are grounded on aleksaelezovic-trigo's pkg/store.Table (id2str + 3
// default-graph + 6 named-graph tables): this package generalizes that
// enum from 9 on-disk tables to the 12 in-memory orderings spec.md
// §4.3 requires (6 permutations of S,P,O, graph-last, plus their 6
// graph-first counterparts).
package store

import "github.com/nodeforge/triq/pkg/rdf"

// Ordering names one of the twelve canonical sort orders a quad index
// can use. Each ordering is a full four-element permutation of
// (Subject, Predicate, Object, Graph): the six "graph-last" orderings
// sort primarily by a permutation of S/P/O and use Graph only as a
// final tie-break, and the six "graph-prefixed" orderings put Graph
// first.
type Ordering byte

const (
	SPO Ordering = iota
	SOP
	PSO
	POS
	OSP
	OPS

	GSPO
	GSOP
	GPSO
	GPOS
	GOSP
	GOPS

	numOrderings
)

func (o Ordering) String() string {
	switch o {
	case SPO:
		return "SPO"
	case SOP:
		return "SOP"
	case PSO:
		return "PSO"
	case POS:
		return "POS"
	case OSP:
		return "OSP"
	case OPS:
		return "OPS"
	case GSPO:
		return "GSPO"
	case GSOP:
		return "GSOP"
	case GPSO:
		return "GPSO"
	case GPOS:
		return "GPOS"
	case GOSP:
		return "GOSP"
	case GOPS:
		return "GOPS"
	default:
		return "unknown ordering"
	}
}

// Graph reports whether o is one of the six graph-prefixed orderings.
func (o Ordering) Graph() bool {
	return o >= GSPO
}

// nonGraph returns the graph-last ordering that sorts by the same
// permutation of S/P/O that o's graph-prefixed counterpart does.
func (o Ordering) nonGraph() Ordering {
	if o.Graph() {
		return o - GSPO
	}
	return o
}

// graphVariant returns the graph-prefixed ordering corresponding to a
// graph-last ordering.
func (o Ordering) graphVariant() Ordering {
	if o.Graph() {
		return o
	}
	return o + GSPO
}

// permutations gives, for each ordering, the storage-position -> slot
// mapping: permutations[o][i] is the logical Direction stored at
// position i under ordering o.
var permutations = [numOrderings][4]rdf.Direction{
	SPO: {rdf.Subject, rdf.Predicate, rdf.Object, rdf.Graph},
	SOP: {rdf.Subject, rdf.Object, rdf.Predicate, rdf.Graph},
	PSO: {rdf.Predicate, rdf.Subject, rdf.Object, rdf.Graph},
	POS: {rdf.Predicate, rdf.Object, rdf.Subject, rdf.Graph},
	OSP: {rdf.Object, rdf.Subject, rdf.Predicate, rdf.Graph},
	OPS: {rdf.Object, rdf.Predicate, rdf.Subject, rdf.Graph},

	GSPO: {rdf.Graph, rdf.Subject, rdf.Predicate, rdf.Object},
	GSOP: {rdf.Graph, rdf.Subject, rdf.Object, rdf.Predicate},
	GPSO: {rdf.Graph, rdf.Predicate, rdf.Subject, rdf.Object},
	GPOS: {rdf.Graph, rdf.Predicate, rdf.Object, rdf.Subject},
	GOSP: {rdf.Graph, rdf.Object, rdf.Subject, rdf.Predicate},
	GOPS: {rdf.Graph, rdf.Object, rdf.Predicate, rdf.Subject},
}

// Permutation returns the storage-position -> slot mapping for o.
func (o Ordering) Permutation() [4]rdf.Direction {
	return permutations[o]
}

// nonGraphOrderings lists the six graph-last orderings in a fixed,
// arbitrary but stable order, used by New (to add graph-prefixed
// counterparts) and by bestIndex's fallback search.
var nonGraphOrderings = [6]Ordering{SPO, SOP, PSO, POS, OSP, OPS}
