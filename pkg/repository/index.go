package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	PackageFile     = "Packages"
	PackageFileGzip = "Packages.gz"
)

var (
	ErrIndexNotFound = errors.New("package index not found")
	ErrDecode        = errors.New("decoding package index")
)

// TransportError is returned when the index could not be fetched
// for any reason other than it not existing.
type TransportError struct {
	URL string
	// StatusCode is zero when no response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: http response failed with code: %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{
		client: cleanhttp.DefaultPooledClient(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithHTTPClient overrides the client used for remote repositories.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Reader) {
		if c != nil {
			r.client = c
		}
	}
}

// Read fetches and decodes the package index of the given repository.
// The compressed index is always preferred over the plain one.
func (r *Reader) Read(ctx context.Context, loc Location) (*Index, error) {
	if loc.IsLocal() {
		return r.readLocal(ctx, loc.Path)
	}
	return r.readRemote(ctx, loc.URL)
}

func (*Reader) readLocal(ctx context.Context, root string) (*Index, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", root)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.V(1).Info("repository path does not exist")
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, root)
		}
		return nil, err
	}
	// the location may name the index file itself
	if info.Mode().IsRegular() {
		return openIndex(ctx, root, strings.HasSuffix(root, ".gz"))
	}

	path := filepath.Join(root, PackageFileGzip)
	idx, err := openIndex(ctx, path, true)
	if !errors.Is(err, fs.ErrNotExist) {
		return idx, err
	}
	log.V(1).Info("failed to locate compressed package index", "file", path)

	path = strings.TrimSuffix(path, filepath.Ext(path))
	idx, err = openIndex(ctx, path, false)
	if errors.Is(err, fs.ErrNotExist) {
		log.V(1).Info("failed to locate package index", "file", path)
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, root)
	}
	return idx, err
}

func openIndex(ctx context.Context, path string, compressed bool) (*Index, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	idx, err := readIndex(ctx, path, f, compressed)
	if err != nil && !errors.Is(err, ErrDecode) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return idx, err
}

func (r *Reader) readRemote(ctx context.Context, base string) (*Index, error) {
	// try to download the gzip index
	idx, err := r.download(ctx, base+"/"+PackageFileGzip, true)
	if err == nil {
		return idx, nil
	}
	if !errors.Is(err, ErrIndexNotFound) {
		return nil, err
	}
	// fall back to the uncompressed index
	return r.download(ctx, base+"/"+PackageFile, false)
}

func (r *Reader) download(ctx context.Context, target string, compressed bool) (*Index, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("url", target)
	log.V(1).Info("downloading index")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	resp, err := r.client.Do(req)
	if err != nil {
		log.V(1).Info("failed to download file", "err", err.Error())
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// return a special error on 404, so we can check for
		// other file types
		if resp.StatusCode == http.StatusNotFound {
			log.V(1).Info("failed to locate package index")
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, target)
		}
		log.V(1).Info("failed to download file", "code", resp.StatusCode)
		return nil, &TransportError{URL: target, StatusCode: resp.StatusCode}
	}
	log.V(1).Info("successfully downloaded index", "code", resp.StatusCode)

	idx, err := readIndex(ctx, target, resp.Body, compressed)
	if err != nil && !errors.Is(err, ErrDecode) {
		return nil, &TransportError{URL: target, StatusCode: resp.StatusCode, Err: err}
	}
	return idx, err
}

func readIndex(ctx context.Context, source string, r io.Reader, compressed bool) (*Index, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("source", source)

	src := &sourceReader{r: r}
	var data []byte
	var err error
	if compressed {
		data, err = decompress(src)
	} else {
		data, err = io.ReadAll(src)
	}
	// failures of the source itself are never decode errors
	if src.err != nil {
		return nil, src.err
	}
	if err != nil {
		return nil, err
	}
	text, replaced, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	if replaced > 0 {
		log.Info("replaced invalid byte sequences while decoding index", "count", replaced)
	}
	log.V(1).Info("successfully decoded index", "bytes", len(data), "compressed", compressed)
	return &Index{
		Text:       text,
		Source:     source,
		Compressed: compressed,
		Replaced:   replaced,
	}, nil
}
