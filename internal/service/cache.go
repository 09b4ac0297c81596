// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-threat-cache/internal/adapter"
	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/internal/metrics"
	"github.com/MKhiriev/go-threat-cache/internal/store"
	"github.com/MKhiriev/go-threat-cache/models"
)

// Cache is the composition root of the threat cache: one prefix database and
// sync controller per category, a shared hit cache and a lookup engine on
// top of them.
type Cache struct {
	databases   map[models.Category]*store.PrefixDatabase
	controllers map[models.Category]*syncController
	hits        *store.HitCache
	lookup      *lookupEngine

	closeOnce sync.Once
	logger    *logger.Logger
}

// NewCache wires the cache against the given threat API. The constraints are
// the defaults advertised to the server on every sync; zero values mean no
// limit.
func NewCache(api adapter.HTTPThreatAPI, deriver CandidateDeriver, retry RetryPolicy, constraints models.SizeConstraints, log *logger.Logger) *Cache {
	databases := make(map[models.Category]*store.PrefixDatabase, len(models.AllCategories()))
	controllers := make(map[models.Category]*syncController, len(models.AllCategories()))
	for _, cat := range models.AllCategories() {
		db := store.NewPrefixDatabase()
		databases[cat] = db
		controllers[cat] = newSyncController(cat, db, api, retry, constraints, log)
	}

	hits := store.NewHitCache()

	return &Cache{
		databases:   databases,
		controllers: controllers,
		hits:        hits,
		lookup:      newLookupEngine(databases, hits, api, retry, deriver, log),
		logger:      log,
	}
}

// RequestDiff runs a caller-initiated sync episode for every category named
// by selector ("malware", "social", "unwanted" or "all"). Failures of
// individual categories are joined; the remaining categories still run.
func (c *Cache) RequestDiff(ctx context.Context, selector string, reset bool, constraints models.SizeConstraints) error {
	categories, err := models.ParseCategorySelector(selector)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var errs []error
	for _, cat := range categories {
		if err := c.controllers[cat].RequestDiff(ctx, reset, constraints); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cat, err))
		}
	}
	return errors.Join(errs...)
}

// Check resolves a URL (or, when isHash is set, a hex-encoded full hash)
// against the threat lists.
func (c *Cache) Check(ctx context.Context, uriOrHash string, isHash bool) ([]models.Category, error) {
	return c.lookup.Check(ctx, uriOrHash, isHash)
}

// FindHash reports where the given full hash currently resolves, without
// side effects. Diagnostic only.
func (c *Cache) FindHash(hash []byte) (location string, prefixLength int) {
	return c.lookup.FindHash(hash)
}

// Close cancels scheduled syncs and releases the controllers. Safe to call
// more than once; operations after Close fail with ErrCacheClosed.
func (c *Cache) Close() error {
	c.closeOnce.Do(func() {
		for _, cat := range models.AllCategories() {
			c.controllers[cat].Close()
		}
		c.logger.Info().Msg("threat cache closed")
	})
	return nil
}

// Token returns a copy of the stored version token for cat.
func (c *Cache) Token(cat models.Category) []byte {
	return c.controllers[cat].Token()
}

// NextSyncAt reports the scheduled time of the next automatic sync for cat.
func (c *Cache) NextSyncAt(cat models.Category) time.Time {
	return c.controllers[cat].NextSyncAt()
}

// DatabaseLen returns the number of prefix entries held for cat.
func (c *Cache) DatabaseLen(cat models.Category) int {
	return c.databases[cat].Len()
}

// HitCacheStats reports the live positive and negative hit-cache sizes.
func (c *Cache) HitCacheStats() (positive, negative int) {
	return c.hits.Stats()
}

// UpdateGauges refreshes the per-category database size gauges. Called by
// handlers before serving metrics.
func (c *Cache) UpdateGauges() {
	for _, cat := range models.AllCategories() {
		metrics.DatabaseEntries.WithLabelValues(cat.String()).Set(float64(c.databases[cat].Len()))
	}
}
