// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package urlhash canonicalizes URLs and derives the candidate full hashes a
// lookup tests against the threat lists. Derivation is pure: the same URL
// always yields the same finite hash set.
package urlhash

import (
	"crypto/sha256"
	"fmt"
	"net"
	"net/url"
	"strings"
)

const (
	// maxHostSuffixes bounds the host-suffix expansion: the full host plus
	// up to four trailing-component suffixes.
	maxHostSuffixes = 5

	// maxPathPrefixes bounds the path-prefix expansion per host.
	maxPathPrefixes = 6
)

// Deriver turns a URL into the set of SHA-256 hashes of its host-suffix and
// path-prefix expressions.
type Deriver struct{}

func NewDeriver() *Deriver {
	return &Deriver{}
}

// DeriveCandidateHashes canonicalizes uri and returns one 32-byte hash per
// host-suffix/path-prefix expression, most specific first.
func (d *Deriver) DeriveCandidateHashes(uri string) ([][]byte, error) {
	host, path, query, err := canonicalize(uri)
	if err != nil {
		return nil, err
	}

	hashes := make([][]byte, 0, maxHostSuffixes*maxPathPrefixes)
	for _, h := range hostSuffixes(host) {
		for _, p := range pathPrefixes(path, query) {
			sum := sha256.Sum256([]byte(h + p))
			hashes = append(hashes, sum[:])
		}
	}
	return hashes, nil
}

// canonicalize normalizes uri into a lowercase host, an absolute cleaned
// path and the raw query (empty if none).
func canonicalize(uri string) (host, path, query string, err error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", "", "", fmt.Errorf("empty url")
	}
	// strip embedded whitespace and control characters
	uri = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, uri)

	if !strings.Contains(uri, "://") {
		uri = "http://" + uri
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "", "", "", fmt.Errorf("parse url: %w", err)
	}
	if u.Hostname() == "" {
		return "", "", "", fmt.Errorf("url has no host")
	}

	host = canonicalHost(u.Hostname())
	path = canonicalPath(u.EscapedPath())
	return host, path, u.RawQuery, nil
}

func canonicalHost(host string) string {
	host = strings.ToLower(host)
	host = strings.Trim(host, ".")
	// collapse runs of dots left by the trim
	for strings.Contains(host, "..") {
		host = strings.ReplaceAll(host, "..", ".")
	}
	return host
}

// canonicalPath percent-decodes the path until stable, resolves "." and ".."
// segments and collapses duplicate slashes.
func canonicalPath(path string) string {
	if path == "" {
		return "/"
	}
	for i := 0; i < 32; i++ {
		decoded, err := url.PathUnescape(path)
		if err != nil || decoded == path {
			break
		}
		path = decoded
	}

	segments := strings.Split(path, "/")
	cleaned := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			// duplicate slash or self reference
		case "..":
			if len(cleaned) > 0 {
				cleaned = cleaned[:len(cleaned)-1]
			}
		default:
			cleaned = append(cleaned, seg)
		}
	}

	result := "/" + strings.Join(cleaned, "/")
	if strings.HasSuffix(path, "/") && result != "/" {
		result += "/"
	}
	return result
}

// hostSuffixes returns the host expressions to test: the exact host plus up
// to four shorter suffixes keeping at least two components. IP-address hosts
// produce only themselves.
func hostSuffixes(host string) []string {
	if net.ParseIP(strings.Trim(host, "[]")) != nil {
		return []string{host}
	}

	parts := strings.Split(host, ".")
	suffixes := []string{host}
	// the shortest suffix is the registrable-looking two-component tail
	for i := len(parts) - 2; i >= 1 && len(suffixes) < maxHostSuffixes; i-- {
		suffixes = append(suffixes, strings.Join(parts[i:], "."))
	}
	return suffixes
}

// pathPrefixes returns the path expressions to test for one host: the exact
// path with query, the exact path, then ancestor directories up to the root.
func pathPrefixes(path, query string) []string {
	prefixes := make([]string, 0, maxPathPrefixes)
	if query != "" {
		prefixes = append(prefixes, path+"?"+query)
	}
	prefixes = append(prefixes, path)

	trimmed := strings.TrimSuffix(path, "/")
	for trimmed != "" && len(prefixes) < maxPathPrefixes {
		idx := strings.LastIndex(trimmed, "/")
		if idx < 0 {
			break
		}
		trimmed = trimmed[:idx]
		prefixes = append(prefixes, trimmed+"/")
	}
	return prefixes
}
