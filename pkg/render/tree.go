package render

import (
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/djcass44/debviz/pkg/graph"
)

// Tree draws the graph as a tree rooted at its root package. Each
// package is expanded once; later occurrences are marked with "(*)".
func Tree(g *graph.Graph) string {
	expanded := map[string]bool{}
	return subtree(g, g.Root, expanded).String()
}

func subtree(g *graph.Graph, name string, expanded map[string]bool) *tree.Tree {
	expanded[name] = true
	t := tree.Root(label(g, name))
	for _, child := range g.Children(name) {
		switch {
		case len(g.Children(child)) == 0:
			t.Child(label(g, child))
		case expanded[child]:
			t.Child(label(g, child) + " (*)")
		default:
			t.Child(subtree(g, child, expanded))
		}
	}
	return t
}

func label(g *graph.Graph, name string) string {
	n, ok := g.Node(name)
	if !ok {
		return name
	}
	s := n.Name
	if n.Version != "" {
		s += " " + n.Version
	}
	if n.Missing {
		s += " [missing]"
	}
	return s
}
