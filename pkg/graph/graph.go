package graph

import "slices"

func New(root string) *Graph {
	return &Graph{
		Root:  root,
		nodes: map[string]*Node{},
		edges: map[string][]string{},
	}
}

// Add inserts n unless a node with the same name already exists.
// It reports whether the node was added.
func (g *Graph) Add(n *Node) bool {
	if _, ok := g.nodes[n.Name]; ok {
		return false
	}
	g.nodes[n.Name] = n
	g.order = append(g.order, n.Name)
	return true
}

// Connect records a dependency edge. Repeated edges are ignored.
func (g *Graph) Connect(from, to string) {
	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns every node in the order it was discovered.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, name := range g.order {
		out[i] = g.nodes[name]
	}
	return out
}

// Children returns the direct dependencies of name in the
// order they were declared.
func (g *Graph) Children(name string) []string {
	return g.edges[name]
}

func (g *Graph) Len() int {
	return len(g.order)
}
