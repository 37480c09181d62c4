package debian

import (
	"github.com/djcass44/debviz/pkg/control"
	"github.com/djcass44/debviz/pkg/repository"
)

// Query identifies the package whose dependencies should be resolved.
type Query struct {
	Package string
	// Version is matched as a substring of the record version.
	Version string
	// Repository is a local path or a http(s) base address.
	Repository string
	// Fields lists the dependency fields to read, in order.
	// Defaults to Depends.
	Fields []string
}

type Result struct {
	Package string
	// Version is the version of the record that was matched.
	Version      string
	Dependencies []string
	// Inexact is true when no record carried the requested
	// version and another version of the package was used.
	Inexact bool
	// Source is the index file or url that was read.
	Source string
	// Replaced counts invalid byte sequences in the index.
	Replaced int
}

type Match struct {
	Record control.Record
	Exact  bool
}

type Resolver struct {
	reader *repository.Reader
}
