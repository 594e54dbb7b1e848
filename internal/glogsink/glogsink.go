// Package glogsink wires rdf.Sink onto github.com/golang/glog, mirroring
// cayleygraph-cayley's clog/glog subpackage (which does the same for
// clog.Logger). It is not installed automatically — the quadstore CLI
// installs it via World.SetErrorSink when run with -v.
package glogsink

import (
	"fmt"

	"github.com/golang/glog"
)

// Sink logs rdf.World error-sink messages through glog at error level.
type Sink struct{}

func (Sink) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(2, fmt.Sprintf(format, args...))
}
