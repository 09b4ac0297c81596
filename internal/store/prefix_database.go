// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory data structures of the threat cache: the
// per-category prefix databases that mirror the remote threat lists, and the
// TTL hit cache memoizing remote verification outcomes.
//
// Both structures live for the lifetime of the cache object and are safe for
// concurrent use. Databases are mutated only by the per-category sync
// controllers; the hit cache is mutated by concurrent lookups.
package store

import (
	"bytes"
	"crypto/sha256"
	"sort"
	"sync"

	"github.com/MKhiriev/go-threat-cache/models"
)

// PrefixDatabase is one category's local mirror of the remote threat list:
// a set of variable-length hash prefixes held in ascending sorted order.
//
// Sorted order is an invariant, not an optimization: the consistency checksum
// is defined over the sorted concatenation of all entries and diff removal
// indices address positions in the sorted order. Mixed prefix lengths are
// ordered lexicographically by bytes.Compare.
//
// Mutations (ApplyReset, ApplyDiff) are applied atomically with respect to
// readers: a concurrent Contains observes either the pre- or post-diff state,
// never a partially applied one.
type PrefixDatabase struct {
	mu      sync.RWMutex
	entries [][]byte
	sizes   map[int]struct{}
}

// NewPrefixDatabase returns an empty database.
func NewPrefixDatabase() *PrefixDatabase {
	return &PrefixDatabase{sizes: make(map[int]struct{})}
}

// ApplyReset discards all current entries and the prefix-size set, then
// installs the prefixes from blocks as the new database content.
func (d *PrefixDatabase) ApplyReset(blocks []models.PrefixBlock) error {
	entries, sizes, err := expandBlocks(blocks, nil, nil)
	if err != nil {
		return err
	}
	sortEntries(entries)

	d.mu.Lock()
	d.entries = entries
	d.sizes = sizes
	d.mu.Unlock()
	return nil
}

// ApplyDiff removes the entries at the given zero-based positions of the
// current sorted order, then inserts the prefixes from blocks and re-sorts.
// Removals are applied before additions: the indices refer to the pre-diff
// order. Out-of-bounds indices indicate a protocol bug upstream and are
// skipped.
//
// The prefix-size set only accumulates on diffs; sizes whose last entry was
// removed remain registered until the next reset.
func (d *PrefixDatabase) ApplyDiff(blocks []models.PrefixBlock, removalIndices []int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.entries
	if len(removalIndices) > 0 {
		drop := make(map[int]struct{}, len(removalIndices))
		for _, idx := range removalIndices {
			if idx < 0 || idx >= len(d.entries) {
				continue
			}
			drop[idx] = struct{}{}
		}
		kept = make([][]byte, 0, len(d.entries)-len(drop))
		for i, e := range d.entries {
			if _, gone := drop[i]; !gone {
				kept = append(kept, e)
			}
		}
	}

	entries, sizes, err := expandBlocks(blocks, kept, d.sizes)
	if err != nil {
		return err
	}
	sortEntries(entries)

	d.entries = entries
	d.sizes = sizes
	return nil
}

// Checksum returns the SHA-256 over the concatenation of all entries in
// sorted order. After every successful diff application it must equal the
// server-declared checksum; a disagreement means the local mirror has
// diverged and must be rebuilt from a full reset.
func (d *PrefixDatabase) Checksum() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h := sha256.New()
	for _, e := range d.entries {
		h.Write(e)
	}
	return h.Sum(nil)
}

// Contains reports whether the exact prefix is present in the database.
func (d *PrefixDatabase) Contains(prefix []byte) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := sort.Search(len(d.entries), func(i int) bool {
		return bytes.Compare(d.entries[i], prefix) >= 0
	})
	return i < len(d.entries) && bytes.Equal(d.entries[i], prefix)
}

// Sizes returns the distinct prefix lengths currently registered, ascending.
func (d *PrefixDatabase) Sizes() []int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]int, 0, len(d.sizes))
	for s := range d.sizes {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of entries in the database.
func (d *PrefixDatabase) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Entries returns a copy of the sorted entries. Diagnostic use only.
func (d *PrefixDatabase) Entries() [][]byte {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([][]byte, len(d.entries))
	for i, e := range d.entries {
		c := make([]byte, len(e))
		copy(c, e)
		out[i] = c
	}
	return out
}

// expandBlocks validates blocks and appends their prefixes to base, returning
// the combined entry slice and the updated size set. base and baseSizes may be
// nil for a reset. The returned size set is always a fresh map so a failed
// application never corrupts the previous one.
func expandBlocks(blocks []models.PrefixBlock, base [][]byte, baseSizes map[int]struct{}) ([][]byte, map[int]struct{}, error) {
	total := len(base)
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return nil, nil, err
		}
		total += b.Count()
	}

	entries := make([][]byte, 0, total)
	entries = append(entries, base...)

	sizes := make(map[int]struct{}, len(baseSizes)+len(blocks))
	for s := range baseSizes {
		sizes[s] = struct{}{}
	}
	for _, b := range blocks {
		if b.Count() == 0 {
			continue
		}
		entries = append(entries, b.Prefixes()...)
		sizes[b.Size] = struct{}{}
	}
	return entries, sizes, nil
}

func sortEntries(entries [][]byte) {
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i], entries[j]) < 0
	})
}
