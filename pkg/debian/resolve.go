package debian

import (
	"context"
	"errors"
	"fmt"
	"github.com/djcass44/debviz/pkg/control"
	"github.com/djcass44/debviz/pkg/repository"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	version "github.com/knqyf263/go-deb-version"
)

func NewResolver(reader *repository.Reader) *Resolver {
	if reader == nil {
		reader = repository.NewReader()
	}
	return &Resolver{reader: reader}
}

// Resolve reads the repository index, finds the requested package and
// returns the names of its direct dependencies. Every call reads the
// index afresh.
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Result, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("query", uuid.NewString(), "pkg", q.Package, "version", q.Version, "repo", q.Repository)
	ctx = logr.NewContext(ctx, log)

	if q.Package == "" {
		return nil, errors.New("package name is required")
	}
	loc, err := repository.ParseLocation(q.Repository)
	if err != nil {
		return nil, err
	}
	if q.Version != "" {
		if _, err := version.NewVersion(q.Version); err != nil {
			log.V(1).Info("requested version is not a valid debian version, matching by text only", "err", err.Error())
		}
	}

	idx, err := r.reader.Read(ctx, loc)
	if err != nil {
		log.V(1).Info("failed to read index", "err", err.Error())
		return nil, err
	}

	match, err := FindPackage(control.Parse(idx.Text), q.Package, q.Version)
	if err != nil {
		return nil, err
	}
	matched := match.Record.Version()
	if !match.Exact {
		log.Info("warning: requested version could not be found, falling back to another version of the package", "matched", matched, "relation", describeRelation(q.Version, matched))
	}

	deps := Dependencies(match.Record, q.Fields...)
	log.V(2).Info("found package match", "matched", matched, "deps", len(deps))

	return &Result{
		Package:      q.Package,
		Version:      matched,
		Dependencies: deps,
		Inexact:      !match.Exact,
		Source:       idx.Source,
		Replaced:     idx.Replaced,
	}, nil
}

// CompareVersions compares two debian versions, returning -1, 0 or 1
// when a is older than, equal to or newer than b.
func CompareVersions(a, b string) (int, error) {
	v1, err := version.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	v2, err := version.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	switch {
	case v1.LessThan(v2):
		return -1, nil
	case v1.GreaterThan(v2):
		return 1, nil
	default:
		return 0, nil
	}
}

func describeRelation(requested, matched string) string {
	c, err := CompareVersions(matched, requested)
	if err != nil {
		return "unknown"
	}
	switch c {
	case -1:
		return "older"
	case 1:
		return "newer"
	default:
		return "equal"
	}
}
