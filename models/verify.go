// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VerifyRequest asks the remote verification service which full hashes are
// currently listed under a prefix that matched a local database.
type VerifyRequest struct {
	// Categories are the threat lists the caller is interested in.
	Categories []Category

	// Prefix is the locally matched hash prefix (4–32 bytes).
	Prefix []byte
}

// ThreatMatch is one full hash the verification service confirmed as listed.
type ThreatMatch struct {
	// FullHash is the complete 32-byte hash of a listed URL pattern.
	FullHash []byte

	// Categories are the threat lists the hash appears on.
	Categories []Category

	// ExpiresAt bounds how long the confirmation may be cached locally.
	ExpiresAt time.Time
}

// VerifyResponse is the remote verification service's answer for one prefix.
type VerifyResponse struct {
	// Threats lists every full hash under the queried prefix that is
	// currently on a requested list. May be empty: the prefix was a local
	// false positive.
	Threats []ThreatMatch

	// NegativeExpiresAt, when non-zero, allows the client to treat the
	// queried prefix as confirmed safe until that time without another
	// verification round trip. Some service versions omit the field, in
	// which case it stays zero and nothing is cached.
	NegativeExpiresAt time.Time
}
