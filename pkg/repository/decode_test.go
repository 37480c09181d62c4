package repository

import (
	"bytes"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecodeText(t *testing.T) {
	var cases = []struct {
		name     string
		in       []byte
		out      string
		replaced int
	}{
		{
			"valid utf-8 is untouched",
			[]byte("Package: foo\nMaintainer: Jürgen\n"),
			"Package: foo\nMaintainer: Jürgen\n",
			0,
		},
		{
			"invalid byte is replaced",
			[]byte("Maintainer: J\xfcrgen\n"),
			"Maintainer: J�rgen\n",
			1,
		},
		{
			"each invalid byte is counted",
			[]byte("a\xffb\xfec"),
			"a�b�c",
			2,
		},
		{
			"truncated sequence at the end is one replacement",
			[]byte("a\xe2\x82"),
			"a�",
			1,
		},
		{
			"truncated four byte sequence",
			[]byte("\xf0\x9f\x98"),
			"�",
			1,
		},
		{
			"truncated sequence before valid text",
			[]byte("\xe2\x82x"),
			"�x",
			1,
		},
		{
			"existing replacement characters are not counted",
			[]byte("�a\xff"),
			"�a�",
			1,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, replaced, err := decodeText(tt.in)
			require.NoError(t, err)
			assert.EqualValues(t, tt.out, out)
			assert.EqualValues(t, tt.replaced, replaced)
		})
	}
}

func TestDecompress(t *testing.T) {
	t.Run("gzip data is decompressed", func(t *testing.T) {
		data, err := decompress(bytes.NewReader(gzipBytes(t, "Package: foo\n")))
		assert.NoError(t, err)
		assert.EqualValues(t, "Package: foo\n", string(data))
	})
	t.Run("corrupt data returns a decode error", func(t *testing.T) {
		_, err := decompress(bytes.NewReader([]byte("this is not gzip")))
		assert.ErrorIs(t, err, ErrDecode)
	})
	t.Run("truncated data returns a decode error", func(t *testing.T) {
		data := gzipBytes(t, "Package: foo\nVersion: 1.0\n")
		_, err := decompress(bytes.NewReader(data[:len(data)-6]))
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func gzipBytes(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
