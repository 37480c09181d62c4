package repository

import "net/http"

// Location is a normalised reference to a repository. Exactly
// one of Path or URL is set.
type Location struct {
	// Path is the filesystem root of a local mirror.
	Path string
	// URL is the base address of a remote repository.
	URL string
}

// Index is the decoded text of a repository package index.
type Index struct {
	Text string
	// Source is the file or url that the index was read from.
	Source     string
	Compressed bool
	// Replaced counts the invalid byte sequences that were
	// substituted while decoding Text.
	Replaced int
}

type Reader struct {
	client *http.Client
}

type Option func(r *Reader)
