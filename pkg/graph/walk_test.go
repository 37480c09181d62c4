package graph

import (
	"context"
	"errors"
	"github.com/djcass44/debviz/pkg/debian"
	"github.com/djcass44/debviz/pkg/repository"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

type fakeResolver struct {
	deps  map[string][]string
	calls []debian.Query
	err   error
}

func (f *fakeResolver) Resolve(_ context.Context, q debian.Query) (*debian.Result, error) {
	f.calls = append(f.calls, q)
	if f.err != nil {
		return nil, f.err
	}
	deps, ok := f.deps[q.Package]
	if !ok {
		return nil, &debian.NotFoundError{Name: q.Package, Version: q.Version}
	}
	return &debian.Result{Package: q.Package, Version: "1.0", Dependencies: deps}, nil
}

func TestWalk(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	deps := map[string][]string{
		"a":       {"b", "c", "b"},
		"b":       {"d"},
		"c":       {"d", "virtual", "python3:any"},
		"d":       {"a"},
		"python3": {},
	}

	t.Run("full graph", func(t *testing.T) {
		r := &fakeResolver{deps: deps}
		g, err := Walk(ctx, r, debian.Query{Package: "a", Version: "2.0", Repository: "/srv"}, 10)
		require.NoError(t, err)

		var names []string
		for _, n := range g.Nodes() {
			names = append(names, n.Name)
		}
		assert.EqualValues(t, []string{"a", "b", "c", "d", "virtual", "python3"}, names)
		assert.EqualValues(t, []string{"b", "c"}, g.Children("a"))
		assert.EqualValues(t, []string{"a"}, g.Children("d"))

		virtual, ok := g.Node("virtual")
		require.True(t, ok)
		assert.True(t, virtual.Missing)

		// every package is resolved once
		assert.Len(t, r.calls, 6)
		assert.EqualValues(t, "2.0", r.calls[0].Version)
		for _, c := range r.calls[1:] {
			assert.Empty(t, c.Version)
			assert.EqualValues(t, "/srv", c.Repository)
		}
	})
	t.Run("depth is limited", func(t *testing.T) {
		r := &fakeResolver{deps: deps}
		g, err := Walk(ctx, r, debian.Query{Package: "a"}, 1)
		require.NoError(t, err)

		assert.EqualValues(t, 3, g.Len())
		assert.Len(t, r.calls, 1)
		b, _ := g.Node("b")
		assert.True(t, b.Truncated)
		assert.EqualValues(t, 1, b.Depth)
	})
	t.Run("missing root is an error", func(t *testing.T) {
		r := &fakeResolver{deps: deps}
		_, err := Walk(ctx, r, debian.Query{Package: "zzz"}, 10)
		assert.ErrorIs(t, err, debian.ErrPackageNotFound)
	})
	t.Run("other errors stop the walk", func(t *testing.T) {
		r := &fakeResolver{err: errors.New("boom")}
		_, err := Walk(ctx, r, debian.Query{Package: "a"}, 10)
		assert.Error(t, err)
	})
}

func TestWalk_Repository(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	dir := t.TempDir()
	index := "Package: foo\nVersion: 1.0\nDepends: bar (>= 1.0), libc6\n\nPackage: bar\nVersion: 1.2\nDepends: libc6\n\nPackage: libc6\nVersion: 2.36\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, repository.PackageFile), []byte(index), 0644))

	g, err := Walk(ctx, debian.NewResolver(nil), debian.Query{Package: "foo", Version: "1.0", Repository: dir}, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, g.Len())
	assert.EqualValues(t, []string{"bar", "libc6"}, g.Children("foo"))
	assert.EqualValues(t, []string{"libc6"}, g.Children("bar"))

	libc, ok := g.Node("libc6")
	require.True(t, ok)
	assert.EqualValues(t, "2.36", libc.Version)
}

func TestTrimArch(t *testing.T) {
	assert.EqualValues(t, "python3", trimArch("python3:any"))
	assert.EqualValues(t, "libc6", trimArch("libc6"))
}
