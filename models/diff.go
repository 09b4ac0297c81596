// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DiffResponseKind discriminates the two shapes a diff response can take.
type DiffResponseKind int

const (
	// DiffKindReset replaces the category's entire local database.
	DiffKindReset DiffResponseKind = iota
	// DiffKindDiff applies an incremental update on top of the state
	// identified by the request's version token.
	DiffKindDiff
)

// SizeConstraints carries optional client hints limiting how large a single
// diff response or the resulting local database may grow. Zero values mean
// "no constraint"; the values are opaque to the sync logic and passed through
// to the remote service unchanged.
type SizeConstraints struct {
	// MaxDiffEntries caps the number of entries in one diff response.
	MaxDiffEntries int `json:"max_diff_entries,omitempty"`

	// MaxDatabaseEntries caps the total size of the local database the
	// server should steer the client towards.
	MaxDatabaseEntries int `json:"max_database_entries,omitempty"`
}

// DiffRequest asks the remote list service for the changes between the state
// identified by VersionToken and the current authoritative list of one
// category.
type DiffRequest struct {
	// Category selects which threat list to diff.
	Category Category

	// VersionToken is the opaque cursor from the last successful sync.
	// Nil means "no synchronized state": the service must answer with a
	// full reset.
	VersionToken []byte

	// Constraints are optional size hints, passed through verbatim.
	Constraints SizeConstraints
}

// DiffResponse is the remote list service's answer to a [DiffRequest].
type DiffResponse struct {
	// Kind tells whether Additions/Removals describe a full reset or an
	// incremental diff.
	Kind DiffResponseKind

	// NewVersionToken identifies the post-diff state. It must only be
	// persisted after the response checksum has been verified.
	NewVersionToken []byte

	// Additions are new prefixes grouped by prefix size.
	Additions []PrefixBlock

	// RemovalIndices are zero-based positions into the pre-diff sorted
	// database whose entries must be removed. Only meaningful for
	// [DiffKindDiff].
	RemovalIndices []int

	// Checksum is the SHA-256 the server computed over its own sorted
	// post-diff list. The client must reproduce it locally or discard the
	// diff.
	Checksum []byte

	// NextDiffAt is the server-recommended absolute time for the next
	// sync of this category.
	NextDiffAt time.Time
}
