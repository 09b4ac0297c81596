// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-threat-cache/models"
)

// HitCache memoizes remote verification outcomes so repeated lookups of the
// same hash or prefix do not trigger redundant round trips.
//
// Positive entries are keyed by full 32-byte hash and record the categories a
// previous verification confirmed. Negative entries are keyed by a queried
// prefix and record that the underlying full hash was confirmed absent.
// Both carry an absolute expiry and are never trusted past it.
//
// Eviction is lazy: an expired entry is deleted by the next lookup that
// touches it. There is no background sweep, so stale entries may linger in
// memory (unused) between lookups.
type HitCache struct {
	mu       sync.Mutex
	positive map[string]positiveHit
	negative map[string]time.Time

	now func() time.Time
}

type positiveHit struct {
	expiresAt  time.Time
	categories []models.Category
}

// NewHitCache returns an empty hit cache.
func NewHitCache() *HitCache {
	return &HitCache{
		positive: make(map[string]positiveHit),
		negative: make(map[string]time.Time),
		now:      time.Now,
	}
}

// StorePositive records (or refreshes) a confirmed-malicious full hash with
// its category set and expiry.
func (h *HitCache) StorePositive(fullHash []byte, categories []models.Category, expiresAt time.Time) {
	cats := make([]models.Category, len(categories))
	copy(cats, categories)

	h.mu.Lock()
	h.positive[string(fullHash)] = positiveHit{expiresAt: expiresAt, categories: cats}
	h.mu.Unlock()
}

// StoreNegative records (or refreshes) a confirmed-safe prefix with its
// expiry.
func (h *HitCache) StoreNegative(prefix []byte, expiresAt time.Time) {
	h.mu.Lock()
	h.negative[string(prefix)] = expiresAt
	h.mu.Unlock()
}

// Positive returns the memoized category set for fullHash if an unexpired
// positive entry exists. An expired entry is removed as a side effect.
func (h *HitCache) Positive(fullHash []byte) ([]models.Category, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	hit, ok := h.positive[string(fullHash)]
	if !ok {
		return nil, false
	}
	if !h.now().Before(hit.expiresAt) {
		delete(h.positive, string(fullHash))
		return nil, false
	}
	cats := make([]models.Category, len(hit.categories))
	copy(cats, hit.categories)
	return cats, true
}

// Negative reports whether an unexpired negative entry exists for prefix.
// An expired entry is removed as a side effect.
func (h *HitCache) Negative(prefix []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	expiresAt, ok := h.negative[string(prefix)]
	if !ok {
		return false
	}
	if !h.now().Before(expiresAt) {
		delete(h.negative, string(prefix))
		return false
	}
	return true
}

// PeekPositive is the read-only variant of Positive: it reports an unexpired
// positive entry without evicting anything. Used by the pure diagnostic
// lookup.
func (h *HitCache) PeekPositive(fullHash []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	hit, ok := h.positive[string(fullHash)]
	return ok && h.now().Before(hit.expiresAt)
}

// PeekNegative is the read-only variant of Negative.
func (h *HitCache) PeekNegative(prefix []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	expiresAt, ok := h.negative[string(prefix)]
	return ok && h.now().Before(expiresAt)
}

// Stats returns the current number of positive and negative entries,
// including any not-yet-evicted expired ones. Diagnostic use only.
func (h *HitCache) Stats() (positive, negative int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.positive), len(h.negative)
}
