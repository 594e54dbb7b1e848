package rdf

import "log"

// Sink is the World's error reporter: a non-owned callback invoked for
// soft invariant violations (precondition failures on add, both
// datatype and language given to a literal, a non-URI literal
// datatype, a Release without a matching Retain). Use of an
// invalidated iterator is not detected and is not reported. It is
// modeled directly on cayleygraph-cayley's clog
// package — a minimal logging seam rather than a full structured
// logger, since the core never needs more than "tell somebody and keep
// going".
type Sink interface {
	Errorf(format string, args ...interface{})
}

// defaultSink writes to the standard library logger, exactly as
// clog's stdlog fallback does.
type defaultSink struct{}

func (defaultSink) Errorf(format string, args ...interface{}) {
	log.Printf("ERROR: "+format, args...)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(format string, args ...interface{})

func (f SinkFunc) Errorf(format string, args ...interface{}) { f(format, args...) }
