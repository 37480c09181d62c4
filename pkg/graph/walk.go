package graph

import (
	"context"
	"errors"
	"github.com/djcass44/debviz/pkg/debian"
	"github.com/go-logr/logr"
	"strings"
)

// Walk builds the dependency graph of root by resolving each distinct
// package once, breadth-first, until maxDepth levels below the root
// have been discovered. Dependencies are looked up without a version.
//
// A dependency that is not in the index becomes a missing leaf; any
// other error stops the walk.
func Walk(ctx context.Context, r Resolver, root debian.Query, maxDepth int) (*Graph, error) {
	if maxDepth < 1 {
		maxDepth = 1
	}
	log := logr.FromContextOrDiscard(ctx).WithValues("root", root.Package, "maxDepth", maxDepth)
	log.V(1).Info("walking dependency graph")

	g := New(root.Package)
	g.Add(&Node{Name: root.Package, Version: root.Version})

	queue := []string{root.Package}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		node, _ := g.Node(name)

		if node.Depth >= maxDepth {
			node.Truncated = true
			continue
		}

		q := root
		if name != root.Package {
			q.Package = name
			q.Version = ""
		}
		res, err := r.Resolve(ctx, q)
		if err != nil {
			// the root must exist, but its dependencies
			// may be virtual
			if name != root.Package && errors.Is(err, debian.ErrPackageNotFound) {
				log.V(2).Info("dependency could not be found in the index", "pkg", name)
				node.Missing = true
				continue
			}
			return nil, err
		}
		node.Version = res.Version
		node.Inexact = res.Inexact

		for _, dep := range res.Dependencies {
			dep = trimArch(dep)
			g.Connect(name, dep)
			if g.Add(&Node{Name: dep, Depth: node.Depth + 1}) {
				queue = append(queue, dep)
			}
		}
		log.V(3).Info("resolved package", "pkg", name, "deps", len(res.Dependencies))
	}
	log.V(1).Info("finished walking dependency graph", "count", g.Len())
	return g, nil
}

// trimArch removes an architecture qualifier (e.g. "python3:any").
func trimArch(s string) string {
	name, _, _ := strings.Cut(s, ":")
	return name
}
