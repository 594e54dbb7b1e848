package rdf

// Well-known XSD datatype IRIs, used by parsers and writers that need
// to recognize or emit numeric/boolean literal shorthand. These are
// plain strings (not Nodes) because minting the Node itself requires a
// World; callers call World.NewURI(rdf.XSDInteger) and so on.
const (
	XSDString   = "http://www.w3.org/2001/XMLSchema#string"
	XSDBoolean  = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal  = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble   = "http://www.w3.org/2001/XMLSchema#double"
	XSDDate     = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"

	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)
