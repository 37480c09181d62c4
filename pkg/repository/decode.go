package repository

import (
	"bytes"
	"fmt"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/unicode"
	"io"
	"strings"
	"unicode/utf8"
)

const replacementChar = "�"

func decompress(r io.Reader) ([]byte, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer gr.Close()
	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return data, nil
}

// decodeText converts b into UTF-8 text, replacing each invalid byte
// sequence with U+FFFD. It returns the text and the number of
// replacements made.
func decodeText(b []byte) (string, int, error) {
	if utf8.Valid(b) {
		return string(b), 0, nil
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	text := string(out)
	return text, strings.Count(text, replacementChar) - bytes.Count(b, []byte(replacementChar)), nil
}

// sourceReader remembers the last error returned by the underlying
// reader so that transport failures can be told apart from corrupt
// data once a decompressor has wrapped them.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}
	return n, err
}
