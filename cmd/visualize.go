package cmd

import (
	"context"
	"fmt"
	v1 "github.com/djcass44/debviz/pkg/api/v1"
	"github.com/djcass44/debviz/pkg/debian"
	"github.com/djcass44/debviz/pkg/graph"
	"github.com/djcass44/debviz/pkg/render"
	"github.com/djcass44/debviz/pkg/repository"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"io"
	"strings"
)

func visualize(cmd *cobra.Command, _ []string) error {
	spec, err := loadSpec(cmd)
	if err != nil {
		return err
	}
	return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), spec, debian.NewResolver(repository.NewReader()))
}

func run(ctx context.Context, out, errOut io.Writer, spec v1.VisualizeSpec, resolver graph.Resolver) error {
	log := logr.FromContextOrDiscard(ctx)

	printParameters(out, spec)

	repo := spec.Repository
	if spec.TestMode && !strings.HasPrefix(repo, "file://") {
		repo = "file://" + repo
	}

	g, err := graph.Walk(ctx, resolver, debian.Query{
		Package:    spec.Package,
		Version:    spec.Version,
		Repository: repo,
		Fields:     spec.Fields,
	}, spec.MaxDepth)
	if err != nil {
		return err
	}

	root, _ := g.Node(spec.Package)
	if root.Inexact {
		_, _ = fmt.Fprintf(errOut, "warning: version %q of %s could not be found, using %s\n", spec.Version, spec.Package, root.Version)
	}

	if spec.ASCIITree {
		_, _ = fmt.Fprintln(out, render.Tree(g))
	} else {
		for _, dep := range g.Children(spec.Package) {
			_, _ = fmt.Fprintln(out, dep)
		}
	}

	if spec.Output != "" {
		if err := render.WriteImage(ctx, g, spec.Output); err != nil {
			return fmt.Errorf("writing %s: %w", spec.Output, err)
		}
		log.Info("wrote dependency graph", "path", spec.Output, "count", g.Len())
	}
	return nil
}

func printParameters(w io.Writer, spec v1.VisualizeSpec) {
	_, _ = fmt.Fprintln(w, "User configured parameters:")
	_, _ = fmt.Fprintf(w, "package: %s\n", spec.Package)
	_, _ = fmt.Fprintf(w, "repo: %s\n", spec.Repository)
	_, _ = fmt.Fprintf(w, "test_mode: %s\n", onOff(spec.TestMode))
	_, _ = fmt.Fprintf(w, "version: %s\n", spec.Version)
	_, _ = fmt.Fprintf(w, "output: %s\n", spec.Output)
	_, _ = fmt.Fprintf(w, "ascii_tree: %s\n", onOff(spec.ASCIITree))
	_, _ = fmt.Fprintf(w, "max_depth: %d\n", spec.MaxDepth)
	_, _ = fmt.Fprintf(w, "fields: %s\n", strings.Join(spec.Fields, ", "))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
