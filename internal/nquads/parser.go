// Package nquads implements a minimal recursive-descent N-Quads (and,
// as its 3-term subset, N-Triples) parser, adapted from
// aleksaelezovic-trigo's internal/nquads parser onto this module's
// rdf.World-based term model. It is deliberately not a full RDF 1.1
// surface-syntax implementation (Turtle/TriG/RDF-XML/JSON-LD stay out
// of scope, per spec.md §1) — just enough to drive the quadstore CLI's
// load/dump demo.
package nquads

import (
	"fmt"
	"strings"

	"github.com/nodeforge/triq/pkg/rdf"
)

// Parser parses N-Quads text into quads in a given World. The grammar
// is the W3C N-Quads grammar plus informal Turtle-style extensions
// the teacher's parser also accepted: @prefix/PREFIX and @base/BASE
// directives, bare prefixed names (ex:foo) expanded against the
// prefixes, and bare numeric literals (typed xsd:integer, or xsd:double
// when they have a '.' or an exponent).
type Parser struct {
	world  *rdf.World
	input  string
	pos    int
	length int

	prefixes map[string]string
	baseIRI  string
}

// NewParser creates a parser that interns every term it reads through world.
func NewParser(world *rdf.World, input string) *Parser {
	return &Parser{
		world:    world,
		input:    input,
		length:   len(input),
		prefixes: make(map[string]string),
	}
}

// SetBaseURI records a base IRI (as an @base/BASE directive also does).
// The parser stores it but does not use it: prefixed names expand
// against their prefix only, and a relative <IRI> reference is kept
// verbatim, not resolved against the base.
func (p *Parser) SetBaseURI(uri string) { p.baseIRI = uri }

// SetPrefix pre-declares a prefix binding, as if an @prefix directive
// for it appeared at the top of the document.
func (p *Parser) SetPrefix(prefix, uri string) { p.prefixes[prefix] = uri }

// Parse parses the whole document and returns every quad it names, in
// textual order. A bare triple (no 4th term) becomes a quad with a nil
// Graph (the default graph).
func (p *Parser) Parse() ([]rdf.Quad, error) {
	var quads []rdf.Quad

	for p.pos < p.length {
		p.skipWhitespaceAndComments()
		if p.pos >= p.length {
			break
		}

		if p.matchKeyword("@prefix") || p.matchKeyword("PREFIX") {
			if err := p.parsePrefix(); err != nil {
				return nil, err
			}
			continue
		}
		if p.matchKeyword("@base") || p.matchKeyword("BASE") {
			if err := p.parseBase(); err != nil {
				return nil, err
			}
			continue
		}

		q, err := p.parseQuad()
		if err != nil {
			return nil, err
		}
		quads = append(quads, q)
	}

	return quads, nil
}

func (p *Parser) skipWhitespaceAndComments() {
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			p.pos++
			continue
		}
		if ch == '#' {
			for p.pos < p.length && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

func (p *Parser) matchKeyword(keyword string) bool {
	if p.pos+len(keyword) > p.length {
		return false
	}
	if !strings.EqualFold(p.input[p.pos:p.pos+len(keyword)], keyword) {
		return false
	}
	if p.pos+len(keyword) < p.length {
		nextCh := p.input[p.pos+len(keyword)]
		if nextCh != ' ' && nextCh != '\t' && nextCh != '\n' && nextCh != '\r' {
			return false
		}
	}
	return true
}

func (p *Parser) parsePrefix() error {
	for p.pos < p.length && p.input[p.pos] != ' ' && p.input[p.pos] != '\t' {
		p.pos++
	}
	p.skipWhitespaceAndComments()

	start := p.pos
	for p.pos < p.length && p.input[p.pos] != ':' {
		p.pos++
	}
	if p.pos >= p.length {
		return fmt.Errorf("nquads: expected ':' after prefix name")
	}
	name := strings.TrimSpace(p.input[start:p.pos])
	p.pos++

	p.skipWhitespaceAndComments()
	iri, err := p.parseIRI()
	if err != nil {
		return fmt.Errorf("nquads: parsing prefix IRI: %w", err)
	}
	p.prefixes[name] = iri

	p.skipWhitespaceAndComments()
	if p.pos < p.length && p.input[p.pos] == '.' {
		p.pos++
	}
	return nil
}

func (p *Parser) parseBase() error {
	for p.pos < p.length && p.input[p.pos] != ' ' && p.input[p.pos] != '\t' {
		p.pos++
	}
	p.skipWhitespaceAndComments()

	iri, err := p.parseIRI()
	if err != nil {
		return fmt.Errorf("nquads: parsing base IRI: %w", err)
	}
	p.baseIRI = iri

	p.skipWhitespaceAndComments()
	if p.pos < p.length && p.input[p.pos] == '.' {
		p.pos++
	}
	return nil
}

func (p *Parser) parseQuad() (rdf.Quad, error) {
	subject, err := p.parseTerm()
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("nquads: parsing subject: %w", err)
	}
	p.skipWhitespaceAndComments()

	predicate, err := p.parseTerm()
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("nquads: parsing predicate: %w", err)
	}
	p.skipWhitespaceAndComments()

	object, err := p.parseTerm()
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("nquads: parsing object: %w", err)
	}
	p.skipWhitespaceAndComments()

	var graph *rdf.Node
	if p.pos < p.length && (p.input[p.pos] == '<' || p.input[p.pos] == '_') {
		graph, err = p.parseTerm()
		if err != nil {
			return rdf.Quad{}, fmt.Errorf("nquads: parsing graph: %w", err)
		}
		p.skipWhitespaceAndComments()
	}

	if p.pos >= p.length || p.input[p.pos] != '.' {
		return rdf.Quad{}, fmt.Errorf("nquads: expected '.' at end of statement")
	}
	p.pos++

	return rdf.Quad{Subject: subject, Predicate: predicate, Object: object, Graph: graph}, nil
}

func (p *Parser) parseTerm() (*rdf.Node, error) {
	if p.pos >= p.length {
		return nil, fmt.Errorf("nquads: unexpected end of input parsing a term")
	}
	ch := p.input[p.pos]
	switch {
	case ch == '<':
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return p.world.NewURI(iri), nil
	case ch == '_':
		return p.parseBlankNode()
	case ch == '"':
		return p.parseLiteral()
	case ch == '-' || ch == '+' || (ch >= '0' && ch <= '9'):
		return p.parseNumber()
	case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
		return p.parsePrefixedName()
	default:
		return nil, fmt.Errorf("nquads: unexpected character at position %d: %c", p.pos, ch)
	}
}

func (p *Parser) parseIRI() (string, error) {
	if p.pos >= p.length || p.input[p.pos] != '<' {
		return "", fmt.Errorf("nquads: expected '<' at start of IRI")
	}
	p.pos++
	start := p.pos
	for p.pos < p.length && p.input[p.pos] != '>' {
		p.pos++
	}
	if p.pos >= p.length {
		return "", fmt.Errorf("nquads: unclosed IRI")
	}
	iri := p.input[start:p.pos]
	p.pos++
	return iri, nil
}

func (p *Parser) parseBlankNode() (*rdf.Node, error) {
	if p.pos >= p.length || p.input[p.pos] != '_' {
		return nil, fmt.Errorf("nquads: expected '_' at start of blank node")
	}
	p.pos++
	if p.pos >= p.length || p.input[p.pos] != ':' {
		return nil, fmt.Errorf("nquads: expected ':' after '_' in blank node")
	}
	p.pos++

	start := p.pos
	for p.pos < p.length && !isTermBoundary(p.input[p.pos]) {
		p.pos++
	}
	return p.world.NewBlank(p.input[start:p.pos]), nil
}

func (p *Parser) parseLiteral() (*rdf.Node, error) {
	if p.pos >= p.length || p.input[p.pos] != '"' {
		return nil, fmt.Errorf("nquads: expected '\"' at start of literal")
	}
	p.pos++

	var value strings.Builder
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == '"' {
			break
		}
		if ch == '\\' {
			p.pos++
			if p.pos >= p.length {
				return nil, fmt.Errorf("nquads: unexpected end of input in escape sequence")
			}
			switch p.input[p.pos] {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			default:
				value.WriteByte(p.input[p.pos])
			}
			p.pos++
		} else {
			value.WriteByte(ch)
			p.pos++
		}
	}
	if p.pos >= p.length {
		return nil, fmt.Errorf("nquads: unclosed string literal")
	}
	p.pos++ // closing quote

	if p.pos < p.length {
		if p.input[p.pos] == '@' {
			p.pos++
			start := p.pos
			for p.pos < p.length && !isTermBoundary(p.input[p.pos]) {
				p.pos++
			}
			return p.world.NewLiteral(nil, value.String(), p.input[start:p.pos]), nil
		}
		if p.input[p.pos] == '^' && p.pos+1 < p.length && p.input[p.pos+1] == '^' {
			p.pos += 2
			dtIRI, err := p.parseIRI()
			if err != nil {
				return nil, fmt.Errorf("nquads: parsing datatype: %w", err)
			}
			return p.world.NewLiteral(p.world.NewURI(dtIRI), value.String(), ""), nil
		}
	}
	return p.world.NewLiteral(nil, value.String(), ""), nil
}

func (p *Parser) parseNumber() (*rdf.Node, error) {
	start := p.pos
	if p.pos < p.length && (p.input[p.pos] == '-' || p.input[p.pos] == '+') {
		p.pos++
	}
	hasDigits := false
	for p.pos < p.length && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
		hasDigits = true
	}
	isDecimal := false
	if p.pos < p.length && p.input[p.pos] == '.' {
		isDecimal = true
		p.pos++
		for p.pos < p.length && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
			p.pos++
			hasDigits = true
		}
	}
	if p.pos < p.length && (p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
		isDecimal = true
		p.pos++
		if p.pos < p.length && (p.input[p.pos] == '-' || p.input[p.pos] == '+') {
			p.pos++
		}
		for p.pos < p.length && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
			p.pos++
		}
	}
	if !hasDigits {
		return nil, fmt.Errorf("nquads: invalid number at position %d", start)
	}
	numStr := p.input[start:p.pos]
	if isDecimal {
		return p.world.NewLiteral(p.world.NewURI(rdf.XSDDouble), numStr, ""), nil
	}
	return p.world.NewLiteral(p.world.NewURI(rdf.XSDInteger), numStr, ""), nil
}

func (p *Parser) parsePrefixedName() (*rdf.Node, error) {
	start := p.pos
	for p.pos < p.length && p.input[p.pos] != ':' {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '.' {
			return nil, fmt.Errorf("nquads: invalid character in prefixed name")
		}
		p.pos++
	}
	if p.pos >= p.length {
		return nil, fmt.Errorf("nquads: expected ':' in prefixed name")
	}
	prefix := p.input[start:p.pos]
	p.pos++

	localStart := p.pos
	for p.pos < p.length && !isTermBoundary(p.input[p.pos]) && p.input[p.pos] != '>' {
		p.pos++
	}
	local := p.input[localStart:p.pos]

	base, ok := p.prefixes[prefix]
	if !ok {
		return nil, fmt.Errorf("nquads: undefined prefix: %s", prefix)
	}
	return p.world.NewURI(base + local), nil
}

func isTermBoundary(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '.' || ch == '<'
}
