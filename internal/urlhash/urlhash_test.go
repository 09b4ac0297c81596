// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package urlhash

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantHost string
		wantPath string
	}{
		{name: "plain", url: "http://example.com/a/b", wantHost: "example.com", wantPath: "/a/b"},
		{name: "no scheme", url: "example.com/a", wantHost: "example.com", wantPath: "/a"},
		{name: "uppercase host", url: "http://EXAMPLE.Com/", wantHost: "example.com", wantPath: "/"},
		{name: "trailing host dot", url: "http://example.com./", wantHost: "example.com", wantPath: "/"},
		{name: "no path", url: "http://example.com", wantHost: "example.com", wantPath: "/"},
		{name: "duplicate slashes", url: "http://example.com//a///b", wantHost: "example.com", wantPath: "/a/b"},
		{name: "dot segments", url: "http://example.com/a/./b/../c", wantHost: "example.com", wantPath: "/a/c"},
		{name: "percent encoding", url: "http://example.com/%61", wantHost: "example.com", wantPath: "/a"},
		{name: "fragment dropped", url: "http://example.com/a#frag", wantHost: "example.com", wantPath: "/a"},
		{name: "embedded whitespace", url: "http://exa\nmple.com/a\t", wantHost: "example.com", wantPath: "/a"},
		{name: "trailing slash kept", url: "http://example.com/a/", wantHost: "example.com", wantPath: "/a/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, path, _, err := canonicalize(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestCanonicalize_Rejects(t *testing.T) {
	for _, u := range []string{"", "   ", "http://"} {
		_, _, _, err := canonicalize(u)
		assert.Error(t, err, "url %q", u)
	}
}

func TestHostSuffixes(t *testing.T) {
	assert.Equal(t,
		[]string{"a.b.example.com", "b.example.com", "example.com"},
		hostSuffixes("a.b.example.com"))

	assert.Equal(t, []string{"example.com"}, hostSuffixes("example.com"))

	// deep hosts are capped at five expressions
	assert.Len(t, hostSuffixes("a.b.c.d.e.f.g.example.com"), maxHostSuffixes)

	// IP hosts are never split
	assert.Equal(t, []string{"192.168.0.1"}, hostSuffixes("192.168.0.1"))
}

func TestPathPrefixes(t *testing.T) {
	assert.Equal(t,
		[]string{"/1/2.html?param=1", "/1/2.html", "/1/", "/"},
		pathPrefixes("/1/2.html", "param=1"))

	assert.Equal(t, []string{"/"}, pathPrefixes("/", ""))

	// deep paths are capped at six expressions
	assert.Len(t, pathPrefixes("/a/b/c/d/e/f/g/h", ""), maxPathPrefixes)
}

func TestDeriveCandidateHashes(t *testing.T) {
	d := NewDeriver()

	hashes, err := d.DeriveCandidateHashes("http://a.example.com/1/2.html?param=1")
	require.NoError(t, err)

	// 2 host suffixes x 4 path prefixes
	require.Len(t, hashes, 8)
	for _, h := range hashes {
		assert.Len(t, h, sha256.Size)
	}

	first := sha256.Sum256([]byte("a.example.com/1/2.html?param=1"))
	assert.Equal(t, first[:], hashes[0], "most specific expression hashes first")

	last := sha256.Sum256([]byte("example.com/"))
	assert.Equal(t, last[:], hashes[len(hashes)-1])
}

func TestDeriveCandidateHashes_Deterministic(t *testing.T) {
	d := NewDeriver()

	a, err := d.DeriveCandidateHashes("https://example.com/path")
	require.NoError(t, err)
	b, err := d.DeriveCandidateHashes("https://example.com/path")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestDeriveCandidateHashes_InvalidURL(t *testing.T) {
	d := NewDeriver()

	_, err := d.DeriveCandidateHashes("")
	assert.Error(t, err)
}
