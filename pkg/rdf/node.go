// Package rdf defines the interned term model of the quad store: a
// World hands out canonical Node values so that every downstream
// comparison between two terms reduces to pointer equality.
package rdf

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Kind discriminates the three term variants a Node can hold.
type Kind byte

const (
	// KindNone marks the zero Node value; it is never handed out by a World.
	KindNone Kind = iota
	KindURI
	KindBlank
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindURI:
		return "uri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "none"
	}
}

// Node is an immutable interned RDF term. Two Nodes obtained from the
// same World are equal as values if and only if they are the same
// pointer; Node never has value-equality semantics on its own, by
// design (see Equals).
//
// A Literal's Datatype and Language fields are mutually exclusive: at
// most one of them is set. World.NewLiteral enforces this when a Node
// is constructed.
type Node struct {
	kind Kind

	// lexical form: the IRI, the blank node label, or the literal value.
	lexical string

	// set only when kind == KindLiteral.
	datatype *Node   // must itself have kind == KindURI, or be nil
	language *string // interned by the owning World, or nil

	refs int   // quad-participation count, owned by the Model(s) sharing this World
	seq  int64 // creation order, used only to give indices a total order over Nodes
}

// Rank returns the Node's position in the World's creation order. It
// carries no meaning beyond giving Index a stable, cheap total order to
// sort by — nil (the wildcard sentinel) ranks below every real Node;
// see Index.key and compareKeys in package store.
func (n *Node) Rank() int64 {
	if n == nil {
		return -1
	}
	return n.seq
}

// Type reports the Node's variant.
func (n *Node) Type() Kind {
	if n == nil {
		return KindNone
	}
	return n.kind
}

// String returns the lexical form (IRI, blank label, or literal value).
// It does not include the quoting, datatype or language suffix used by
// Node.NQuad.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	return n.lexical
}

// ByteLen returns the length in bytes of the lexical form.
func (n *Node) ByteLen() int {
	if n == nil {
		return 0
	}
	return len(n.lexical)
}

// CharLen returns the length in runes of the lexical form.
func (n *Node) CharLen() int {
	if n == nil {
		return 0
	}
	return len([]rune(n.lexical))
}

// Datatype returns the literal's datatype Node, or nil if the Node is
// not a literal or has no datatype (including when it has a language
// tag instead).
func (n *Node) Datatype() *Node {
	if n == nil {
		return nil
	}
	return n.datatype
}

// Language returns the literal's language tag, or "" if the Node is not
// a language-tagged literal.
func (n *Node) Language() string {
	if n == nil || n.language == nil {
		return ""
	}
	return *n.language
}

// Equals reports whether n and other are the same canonical reference.
// Within one World this is exactly RDF term equality; Nodes from
// different Worlds are never Equals even with identical lexical forms,
// which is why all core operations require every Node they touch to
// come from the same World.
func (n *Node) Equals(other *Node) bool {
	return n == other
}

// NQuad renders the Node the way it would appear in N-Quads/N-Triples
// text: <iri>, _:label, "value", "value"@lang or "value"^^<datatype>.
func (n *Node) NQuad() string {
	if n == nil {
		return ""
	}
	switch n.kind {
	case KindURI:
		return "<" + n.lexical + ">"
	case KindBlank:
		return "_:" + n.lexical
	case KindLiteral:
		switch {
		case n.language != nil:
			return fmt.Sprintf("%q@%s", n.lexical, *n.language)
		case n.datatype != nil:
			return fmt.Sprintf("%q^^%s", n.lexical, n.datatype.NQuad())
		default:
			return fmt.Sprintf("%q", n.lexical)
		}
	default:
		return ""
	}
}

// Hash returns a 128-bit content fingerprint of the Node, independent
// of its pointer identity within any particular World. It is never used
// by the interner itself (see World's literal key, which is exact
// rather than hashed), and the N-Quads writer does not use it either
// (it writes blank-node labels unchanged); it is exposed for callers
// that need a stable identifier for a Node's value across Worlds or
// process runs.
func (n *Node) Hash() [16]byte {
	var out [16]byte
	if n == nil {
		return out
	}
	h := xxh3.Hash128([]byte(n.hashInput()))
	binary.BigEndian.PutUint64(out[0:8], h.Hi)
	binary.BigEndian.PutUint64(out[8:16], h.Lo)
	return out
}

func (n *Node) hashInput() string {
	switch n.kind {
	case KindURI:
		return "U" + n.lexical
	case KindBlank:
		return "B" + n.lexical
	case KindLiteral:
		switch {
		case n.language != nil:
			return "L" + n.lexical + "\x00" + *n.language
		case n.datatype != nil:
			return "D" + n.lexical + "\x00" + n.datatype.lexical
		default:
			return "S" + n.lexical
		}
	default:
		return ""
	}
}
