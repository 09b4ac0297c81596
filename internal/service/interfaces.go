// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the synchronization and lookup engine of the
// threat cache: per-category sync controllers driving incremental diffs into
// the local prefix databases, the hash-prefix lookup path with TTL
// hit-memoization, the retry policies governing all outbound calls, and the
// [Cache] composition root tying them together.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/candidate_deriver_mock.go -package=mock

// CandidateDeriver turns a URL into the set of full hashes that must be
// checked against the threat lists. Implementations canonicalize the URL and
// expand its host-suffix/path-prefix combinations; one URL may yield several
// candidate hashes.
//
// Implementations must be pure: finite output, no side effects.
type CandidateDeriver interface {
	// DeriveCandidateHashes returns the 32-byte candidate hashes for uri.
	// An error means the input could not be canonicalized at all.
	DeriveCandidateHashes(uri string) ([][]byte, error)
}
