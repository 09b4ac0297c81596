// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-threat-cache/internal/adapter"
	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/internal/metrics"
	"github.com/MKhiriev/go-threat-cache/internal/store"
	"github.com/MKhiriev/go-threat-cache/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// fallbackRetryDelay is how long a scheduled sync waits after all
	// bounded retries were exhausted before trying again.
	fallbackRetryDelay = 15 * time.Minute

	// staleScheduleSlack bounds how far in the past a server-provided
	// next-sync hint may lie before it is treated as absent.
	staleScheduleSlack = time.Minute

	// minScheduleDelay floors the wait until the next sync so a stale or
	// past server recommendation cannot spin the controller hot.
	minScheduleDelay = time.Second

	// maxChecksumRetries bounds the forced-reset loop after a checksum
	// mismatch. The remote service is expected to return a consistent
	// RESET on the first forced attempt; persistent disagreement is a
	// divergence fault, not something to retry forever.
	maxChecksumRetries = 3
)

// syncController keeps one category's prefix database consistent with the
// authoritative remote list. It owns the category's version token and the
// timer arming the next scheduled sync.
//
// Only one sync episode runs at a time per category: episodes are serialized
// on the controller mutex, so a timer firing during a caller-initiated sync
// waits its turn instead of racing the same database/token pair.
type syncController struct {
	category    models.Category
	db          *store.PrefixDatabase
	diffs       adapter.DiffService
	retry       RetryPolicy
	constraints models.SizeConstraints

	mu     sync.Mutex
	token  []byte
	timer  *time.Timer
	nextAt time.Time
	closed bool

	// bgCtx cancels in-flight scheduled episodes on Close so shutdown is
	// not held hostage by retry delays.
	bgCtx    context.Context
	bgCancel context.CancelFunc

	now    func() time.Time
	logger *logger.Logger
}

func newSyncController(category models.Category, db *store.PrefixDatabase, diffs adapter.DiffService, retry RetryPolicy, constraints models.SizeConstraints, log *logger.Logger) *syncController {
	bgCtx, bgCancel := context.WithCancel(context.Background())
	return &syncController{
		category:    category,
		db:          db,
		diffs:       diffs,
		retry:       retry,
		constraints: constraints,
		bgCtx:       bgCtx,
		bgCancel:    bgCancel,
		now:         time.Now,
		logger:      log,
	}
}

// RequestDiff runs a caller-initiated sync episode. Unlike scheduled firings,
// retry exhaustion and checksum divergence surface to the caller as errors.
func (c *syncController) RequestDiff(ctx context.Context, reset bool, constraints models.SizeConstraints) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheClosed
	}
	if constraints == (models.SizeConstraints{}) {
		constraints = c.constraints
	}
	return c.runEpisodeLocked(ctx, reset, constraints, false)
}

// syncScheduled is the timer callback. Faults are recovered locally: retry
// exhaustion and divergence both arm a fallback resync instead of
// propagating anywhere.
func (c *syncController) syncScheduled() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if err := c.runEpisodeLocked(c.bgCtx, false, c.constraints, true); err != nil {
		c.logger.Warn().Err(err).Stringer("category", c.category).Msg("scheduled sync failed")
	}
}

// runEpisodeLocked drives one sync episode: request the diff through the
// bounded retry strategy, apply it, verify the checksum, store the token and
// arm the next timer. A checksum mismatch loops back as a forced full reset,
// bounded by maxChecksumRetries.
//
// Callers must hold c.mu.
func (c *syncController) runEpisodeLocked(ctx context.Context, reset bool, constraints models.SizeConstraints, scheduled bool) error {
	started := c.now()
	log := c.logger.GetChildLogger()
	log.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("episode_id", uuid.NewString()).Stringer("category", c.category)
	})

	for attempt := 0; attempt <= maxChecksumRetries; attempt++ {
		req := models.DiffRequest{
			Category:    c.category,
			Constraints: constraints,
		}
		if !reset {
			req.VersionToken = c.token
		}

		var resp models.DiffResponse
		err := c.retry.DoSync(ctx, func(ctx context.Context) error {
			r, callErr := c.diffs.ComputeDiff(ctx, req)
			if callErr != nil {
				return callErr
			}
			resp = r
			return nil
		})
		if err != nil {
			metrics.SyncTotal.WithLabelValues(c.category.String(), "exhausted").Inc()
			if scheduled {
				log.Warn().Err(err).Msg("diff retries exhausted, arming fallback resync")
				c.scheduleLocked(c.now().Add(fallbackRetryDelay))
				return nil
			}
			return fmt.Errorf("compute diff for %s: %w", c.category, err)
		}

		if err = c.applyResponse(resp); err != nil {
			// malformed payloads are protocol bugs; a full reset is
			// the only way the database can recover
			log.Warn().Err(err).Msg("diff application failed, forcing reset")
			reset = true
			continue
		}

		if localSum := c.db.Checksum(); !bytes.Equal(localSum, resp.Checksum) {
			metrics.ChecksumMismatchTotal.WithLabelValues(c.category.String()).Inc()
			log.Warn().
				Hex("local_checksum", localSum).
				Hex("server_checksum", resp.Checksum).
				Msg("checksum mismatch, forcing full resync")
			reset = true
			continue
		}

		c.token = resp.NewVersionToken
		c.scheduleLocked(resp.NextDiffAt)

		metrics.SyncTotal.WithLabelValues(c.category.String(), "ok").Inc()
		metrics.SyncDurationMs.Observe(float64(c.now().Sub(started).Milliseconds()))
		metrics.DatabaseEntries.WithLabelValues(c.category.String()).Set(float64(c.db.Len()))
		log.Debug().
			Int("entries", c.db.Len()).
			Time("next_sync", c.nextAt).
			Msg("sync applied")
		return nil
	}

	// forced resets keep disagreeing with the server: give up until the
	// fallback timer fires rather than loop forever
	metrics.SyncTotal.WithLabelValues(c.category.String(), "diverged").Inc()
	if scheduled {
		log.Error().Msg("checksum diverged beyond retry bound, arming fallback resync")
		c.scheduleLocked(c.now().Add(fallbackRetryDelay))
		return nil
	}
	return fmt.Errorf("sync %s: %w", c.category, ErrChecksumDiverged)
}

func (c *syncController) applyResponse(resp models.DiffResponse) error {
	switch resp.Kind {
	case models.DiffKindReset:
		return c.db.ApplyReset(resp.Additions)
	case models.DiffKindDiff:
		return c.db.ApplyDiff(resp.Additions, resp.RemovalIndices)
	default:
		return fmt.Errorf("unknown diff response kind %d", resp.Kind)
	}
}

// scheduleLocked arms the next sync at the given absolute time, cancelling
// any previously pending timer for this category. Callers must hold c.mu.
func (c *syncController) scheduleLocked(at time.Time) {
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}

	delay := at.Sub(c.now())
	if at.IsZero() || delay < -staleScheduleSlack {
		// zero or long-past hints arm the fallback instead of the
		// one-second floor
		delay = fallbackRetryDelay
	}
	if delay < minScheduleDelay {
		delay = minScheduleDelay
	}
	c.nextAt = c.now().Add(delay)
	c.timer = time.AfterFunc(delay, c.syncScheduled)
}

// Close cancels any in-flight scheduled episode, releases the pending timer
// and marks the controller closed. Idempotent and safe to call multiple
// times.
func (c *syncController) Close() {
	c.bgCancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Token returns the category's current version token. Diagnostic use only.
func (c *syncController) Token() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	tok := make([]byte, len(c.token))
	copy(tok, c.token)
	return tok
}

// NextSyncAt returns when the next scheduled sync will fire, zero if none is
// armed. Diagnostic use only.
func (c *syncController) NextSyncAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextAt
}
