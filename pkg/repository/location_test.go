package repository

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseLocation(t *testing.T) {
	var cases = []struct {
		in  string
		out Location
		ok  bool
	}{
		{
			"https://deb.debian.org/debian/dists/bookworm/main/binary-amd64/",
			Location{URL: "https://deb.debian.org/debian/dists/bookworm/main/binary-amd64"},
			true,
		},
		{
			"http://localhost:8080//",
			Location{URL: "http://localhost:8080"},
			true,
		},
		{
			"file:///srv/mirror/",
			Location{Path: "/srv/mirror"},
			true,
		},
		{
			"HTTPS://Deb.Debian.org/debian/",
			Location{URL: "https://Deb.Debian.org/debian"},
			true,
		},
		{
			"File:///srv/mirror",
			Location{Path: "/srv/mirror"},
			true,
		},
		{
			"HTTP://",
			Location{},
			false,
		},
		{
			"./testdata/repo/",
			Location{Path: "./testdata/repo"},
			true,
		},
		{
			"/",
			Location{Path: "/"},
			true,
		},
		{
			"",
			Location{},
			false,
		},
		{
			"file://",
			Location{},
			false,
		},
		{
			"https://",
			Location{},
			false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			out, err := ParseLocation(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tt.out, out)
		})
	}
}

func TestLocation_IsLocal(t *testing.T) {
	assert.True(t, Location{Path: "/srv/mirror"}.IsLocal())
	assert.False(t, Location{URL: "https://example.org"}.IsLocal())
	assert.Equal(t, "file:///srv/mirror", Location{Path: "/srv/mirror"}.String())
}
