package rdf

import "testing"

func TestWorld_NewURI_Interning(t *testing.T) {
	w := NewWorld()
	a := w.NewURI("http://x")
	b := w.NewURI("http://x")
	if a != b {
		t.Error("expected NewURI to return the same reference for the same IRI")
	}
	c := w.NewURI("http://y")
	if a == c {
		t.Error("expected NewURI to return distinct references for distinct IRIs")
	}
}

func TestWorld_NewBlank_Interning(t *testing.T) {
	w := NewWorld()
	a := w.NewBlank("b0")
	b := w.NewBlank("b0")
	if a != b {
		t.Error("expected NewBlank to return the same reference for the same label")
	}
	if a.Type() != KindBlank {
		t.Errorf("expected KindBlank, got %v", a.Type())
	}
}

func TestWorld_NewLiteral_Interning(t *testing.T) {
	w := NewWorld()
	a := w.NewLiteral(nil, "hello", "")
	b := w.NewLiteral(nil, "hello", "")
	if a != b {
		t.Error("expected identical plain literals to be the same reference")
	}

	xsdString := w.NewURI("http://www.w3.org/2001/XMLSchema#string")
	typed := w.NewLiteral(xsdString, "hello", "")
	if typed == a {
		t.Error("expected a typed literal to be distinct from an untyped one with the same bytes")
	}

	tagged := w.NewLiteral(nil, "hello", "en")
	if tagged == a || tagged == typed {
		t.Error("expected a language-tagged literal to be distinct from untyped and typed literals")
	}

	tagged2 := w.NewLiteral(nil, "hello", "en")
	if tagged != tagged2 {
		t.Error("expected identical language-tagged literals to be the same reference")
	}
}

func TestWorld_NewLiteral_LanguageWinsOverDatatype(t *testing.T) {
	w := NewWorld()
	dt := w.NewURI("http://example.org/dt")
	n := w.NewLiteral(dt, "v", "fr")
	if n.Datatype() != nil {
		t.Error("expected datatype to be dropped when a language tag is also given")
	}
	if n.Language() != "fr" {
		t.Errorf("expected language fr, got %q", n.Language())
	}
}

func TestNode_Equals_IsPointerIdentity(t *testing.T) {
	w := NewWorld()
	a := w.NewURI("http://x")
	b := w.NewURI("http://x")
	other := NewWorld().NewURI("http://x")
	if !a.Equals(b) {
		t.Error("expected same-World same-IRI Nodes to be Equals")
	}
	if a.Equals(other) {
		t.Error("expected Nodes from different Worlds to never be Equals, even with identical lexical forms")
	}
}

func TestNode_Hash_StableAndDiscriminating(t *testing.T) {
	w := NewWorld()
	a := w.NewLiteral(nil, "hello", "")
	b := w.NewLiteral(nil, "hello", "")
	if a.Hash() != b.Hash() {
		t.Error("expected equal Nodes to hash equally")
	}
	dt := w.NewURI("http://example.org/dt")
	c := w.NewLiteral(dt, "hello", "")
	if a.Hash() == c.Hash() {
		t.Error("expected a typed literal to hash differently than an untyped one with the same bytes")
	}
}

func TestWorld_ErrorSink_InvalidLiteralDatatype(t *testing.T) {
	w := NewWorld()
	var got string
	w.SetErrorSink(SinkFunc(func(format string, args ...interface{}) {
		got = format
	}))
	blank := w.NewBlank("b0")
	_ = w.NewLiteral(blank, "v", "")
	if got == "" {
		t.Error("expected the error sink to be invoked for a non-URI datatype")
	}
}
