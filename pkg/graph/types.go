package graph

import (
	"context"
	"github.com/djcass44/debviz/pkg/debian"
)

// Resolver returns the direct dependencies of a single package.
type Resolver interface {
	Resolve(ctx context.Context, q debian.Query) (*debian.Result, error)
}

type Node struct {
	Name    string
	Version string
	Depth   int
	// Inexact is set when the resolved version differs from the
	// one that was requested.
	Inexact bool
	// Missing is set when the package does not exist in the
	// index (e.g. virtual packages).
	Missing bool
	// Truncated is set when the node was not expanded because
	// it sits at the maximum depth.
	Truncated bool
}

type Graph struct {
	Root  string
	nodes map[string]*Node
	order []string
	edges map[string][]string
}
