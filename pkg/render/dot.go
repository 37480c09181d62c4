package render

import (
	"bytes"
	"context"
	"fmt"
	"github.com/djcass44/debviz/pkg/graph"
	"github.com/go-logr/logr"
	"github.com/goccy/go-graphviz"
	"os"
	"path/filepath"
	"strings"
)

// DOT converts the graph to Graphviz DOT format. Packages missing
// from the index are drawn with a dashed outline.
func DOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", label(g, n.Name))}
		if n.Name == g.Root {
			attrs = append(attrs, "penwidth=2")
		}
		if n.Missing {
			attrs = append(attrs, "style=\"rounded,dashed\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, n := range g.Nodes() {
		for _, child := range g.Children(n.Name) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.Name, child)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// WriteImage renders the graph into path. The image format is chosen
// from the file extension; ".dot" and ".gv" files receive the DOT
// source without invoking Graphviz.
func WriteImage(ctx context.Context, g *graph.Graph, path string) error {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)

	dot := DOT(g)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".dot" || ext == ".gv" {
		log.V(1).Info("writing dot file")
		return os.WriteFile(path, []byte(dot), 0644)
	}
	format, err := formatFor(ext)
	if err != nil {
		return err
	}
	out, err := Render(ctx, dot, format)
	if err != nil {
		return err
	}
	log.V(1).Info("writing image", "format", format, "bytes", len(out))
	return os.WriteFile(path, out, 0644)
}

// Render lays out DOT source with Graphviz.
func Render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFor(ext string) (graphviz.Format, error) {
	switch ext {
	case ".png":
		return graphviz.PNG, nil
	case ".svg":
		return graphviz.SVG, nil
	case ".jpg", ".jpeg":
		return graphviz.JPG, nil
	default:
		return "", fmt.Errorf("unsupported image extension: %q", ext)
	}
}
