package debian

import (
	"errors"
	"fmt"
	"github.com/djcass44/debviz/pkg/control"
	"iter"
	"strings"
)

var ErrPackageNotFound = errors.New("package not found")

type NotFoundError struct {
	Name    string
	Version string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package could not be found in index: %s (version %q)", e.Name, e.Version)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPackageNotFound
}

// FindPackage returns the first record named name whose version
// contains version. If there is no such record, the first record
// named name is returned with Exact set to false. Records are
// considered in index order; versions are never compared.
func FindPackage(records iter.Seq[control.Record], name, version string) (*Match, error) {
	var fallback control.Record
	for r := range records {
		pkg, ok := r[control.FieldPackage]
		if !ok || pkg != name {
			continue
		}
		if versionMatches(r.Version(), version) {
			return &Match{Record: r, Exact: true}, nil
		}
		if fallback == nil {
			fallback = r
		}
	}
	if fallback != nil {
		return &Match{Record: fallback}, nil
	}
	return nil, &NotFoundError{Name: name, Version: version}
}

func versionMatches(s, version string) bool {
	return s == version || strings.Contains(s, version)
}
