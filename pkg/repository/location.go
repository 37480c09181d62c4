package repository

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const schemeFile = "file://"

// ParseLocation converts a user-supplied repository reference into
// a Location. Addresses using http or https are remote, everything
// else (including a file:// prefix) is treated as a local path.
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, errors.New("repository location is empty")
	}
	scheme, rest, ok := strings.Cut(s, "://")
	switch {
	case ok && strings.EqualFold(scheme, "file"):
		if rest == "" {
			return Location{}, fmt.Errorf("repository location has no path: %s", s)
		}
		return Location{Path: trimPath(rest)}, nil
	case ok && (strings.EqualFold(scheme, "http") || strings.EqualFold(scheme, "https")):
		uri, err := url.Parse(s)
		if err != nil {
			return Location{}, fmt.Errorf("parsing repository url: %w", err)
		}
		if uri.Host == "" {
			return Location{}, fmt.Errorf("repository url has no host: %s", s)
		}
		return Location{URL: strings.TrimRight(uri.Scheme+"://"+rest, "/")}, nil
	}
	return Location{Path: trimPath(s)}, nil
}

// trimPath strips trailing separators, keeping the filesystem root intact.
func trimPath(s string) string {
	out := strings.TrimRight(s, "/"+string(filepath.Separator))
	if out == "" {
		return string(filepath.Separator)
	}
	return out
}

func (l Location) IsLocal() bool {
	return l.URL == ""
}

func (l Location) String() string {
	if l.IsLocal() {
		return schemeFile + l.Path
	}
	return l.URL
}
