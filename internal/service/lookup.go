// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-threat-cache/internal/adapter"
	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/internal/metrics"
	"github.com/MKhiriev/go-threat-cache/internal/store"
	"github.com/MKhiriev/go-threat-cache/models"
	"golang.org/x/sync/singleflight"
)

// Locations reported by the diagnostic hash lookup in addition to the
// category names.
const (
	LocationPositive = "positive"
	LocationNegative = "negative"
	LocationNone     = "none"
)

// lookupEngine resolves candidate hashes against the hit cache and the local
// prefix databases, calling out to the remote verification service only when
// a local prefix match suggests danger.
type lookupEngine struct {
	databases map[models.Category]*store.PrefixDatabase
	hits      *store.HitCache
	verifier  adapter.VerifyService
	retry     RetryPolicy
	deriver   CandidateDeriver

	// group collapses concurrent verification calls for the same prefix
	// into one remote round trip.
	group singleflight.Group

	logger *logger.Logger
}

func newLookupEngine(databases map[models.Category]*store.PrefixDatabase, hits *store.HitCache, verifier adapter.VerifyService, retry RetryPolicy, deriver CandidateDeriver, log *logger.Logger) *lookupEngine {
	return &lookupEngine{
		databases: databases,
		hits:      hits,
		verifier:  verifier,
		retry:     retry,
		deriver:   deriver,
		logger:    log,
	}
}

// Check resolves uriOrHash against the threat lists and returns the matched
// categories in enumeration order, without duplicates.
//
// Remote verification failures degrade the result (the affected candidate
// contributes nothing) but never fail the call; only malformed input is an
// error.
func (e *lookupEngine) Check(ctx context.Context, uriOrHash string, isHash bool) ([]models.Category, error) {
	metrics.ChecksTotal.Inc()

	candidates, err := e.candidates(uriOrHash, isHash)
	if err != nil {
		return nil, err
	}

	matched := make(map[models.Category]struct{})
	for _, hash := range candidates {
		for _, cat := range e.resolve(ctx, hash) {
			matched[cat] = struct{}{}
		}
	}

	result := make([]models.Category, 0, len(matched))
	for _, cat := range models.AllCategories() {
		if _, ok := matched[cat]; ok {
			result = append(result, cat)
		}
	}
	return result, nil
}

func (e *lookupEngine) candidates(uriOrHash string, isHash bool) ([][]byte, error) {
	if isHash {
		hash, err := hex.DecodeString(uriOrHash)
		if err != nil {
			return nil, fmt.Errorf("%w: hash is not valid hex: %v", ErrInvalidArgument, err)
		}
		if len(hash) != models.FullHashSize {
			return nil, fmt.Errorf("%w: hash must be %d bytes, got %d", ErrInvalidArgument, models.FullHashSize, len(hash))
		}
		return [][]byte{hash}, nil
	}

	hashes, err := e.deriver.DeriveCandidateHashes(uriOrHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return hashes, nil
}

// resolve runs the per-hash lookup ladder: positive hit cache, negative hit
// cache by ascending prefix length, then the local databases by ascending
// length and category order. A database match triggers remote verification;
// its outcome feeds the hit cache and the returned category set.
func (e *lookupEngine) resolve(ctx context.Context, hash []byte) []models.Category {
	if cats, ok := e.hits.Positive(hash); ok {
		metrics.PositiveHitsTotal.Inc()
		return cats
	}

	lengths := e.prefixLengths()

	// a confirmed-safe prefix at any granularity clears the hash
	for _, l := range lengths {
		if e.hits.Negative(hash[:l]) {
			metrics.NegativeHitsTotal.Inc()
			return nil
		}
	}

	// shortest matching prefix wins; category order breaks length ties
	var matchedPrefix []byte
	for _, l := range lengths {
		for _, cat := range models.AllCategories() {
			if e.databases[cat].Contains(hash[:l]) {
				matchedPrefix = hash[:l]
				break
			}
		}
		if matchedPrefix != nil {
			break
		}
	}
	if matchedPrefix == nil {
		return nil
	}
	metrics.PrefixMatchesTotal.Inc()

	resp, err := e.verify(ctx, matchedPrefix)
	if err != nil {
		// conservative non-match: the prefix looked dangerous but the
		// verdict is unavailable, so this hash contributes nothing
		metrics.VerifyFailuresTotal.Inc()
		e.logger.Warn().Err(err).Hex("prefix", matchedPrefix).Msg("verification failed, treating hash as non-match")
		return nil
	}

	var cats []models.Category
	for _, threat := range resp.Threats {
		e.hits.StorePositive(threat.FullHash, threat.Categories, threat.ExpiresAt)
		if bytes.Equal(threat.FullHash, hash) {
			cats = threat.Categories
		}
	}
	if !resp.NegativeExpiresAt.IsZero() {
		e.hits.StoreNegative(matchedPrefix, resp.NegativeExpiresAt)
	}
	return cats
}

// verify calls the remote verification service for prefix under the
// exponential-backoff strategy, collapsing concurrent calls for the same
// prefix into one round trip.
func (e *lookupEngine) verify(ctx context.Context, prefix []byte) (models.VerifyResponse, error) {
	v, err, _ := e.group.Do(string(prefix), func() (any, error) {
		metrics.VerifyRequestsTotal.Inc()
		started := time.Now()
		defer func() {
			metrics.VerifyDurationMs.Observe(float64(time.Since(started).Milliseconds()))
		}()

		req := models.VerifyRequest{
			Categories: models.AllCategories(),
			Prefix:     prefix,
		}

		var resp models.VerifyResponse
		err := e.retry.DoVerify(ctx, func(ctx context.Context) error {
			r, callErr := e.verifier.FindFullHashes(ctx, req)
			if callErr != nil {
				return callErr
			}
			resp = r
			return nil
		})
		return resp, err
	})
	if err != nil {
		return models.VerifyResponse{}, err
	}
	return v.(models.VerifyResponse), nil
}

// FindHash reports which structure hash currently resolves to and at which
// prefix length, following the same ladder as resolve. It is pure: no remote
// calls, no hit-cache eviction.
func (e *lookupEngine) FindHash(hash []byte) (location string, prefixLength int) {
	if len(hash) != models.FullHashSize {
		return LocationNone, 0
	}

	if e.hits.PeekPositive(hash) {
		return LocationPositive, models.FullHashSize
	}

	lengths := e.prefixLengths()
	for _, l := range lengths {
		if e.hits.PeekNegative(hash[:l]) {
			return LocationNegative, l
		}
	}
	for _, l := range lengths {
		for _, cat := range models.AllCategories() {
			if e.databases[cat].Contains(hash[:l]) {
				return cat.String(), l
			}
		}
	}
	return LocationNone, 0
}

// prefixLengths returns the union of every category's registered prefix
// sizes, ascending.
func (e *lookupEngine) prefixLengths() []int {
	seen := make(map[int]struct{})
	for _, cat := range models.AllCategories() {
		for _, s := range e.databases[cat].Sizes() {
			seen[s] = struct{}{}
		}
	}

	lengths := make([]int, 0, len(seen))
	for s := range seen {
		lengths = append(lengths, s)
	}
	sort.Ints(lengths)
	return lengths
}
