// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-threat-cache/internal/adapter"
	"github.com/MKhiriev/go-threat-cache/internal/config"
	"github.com/sethvargo/go-retry"
)

// RetryPolicy holds the tuning for the two retry strategies wrapping all
// outbound calls: bounded fixed-delay for diff synchronization (responsiveness
// matters less than not hammering the service) and capped exponential backoff
// for full-hash verification on the hot lookup path.
type RetryPolicy struct {
	// SyncAttempts is the total number of diff call attempts.
	SyncAttempts uint64
	// SyncDelay is the fixed delay between diff call attempts.
	SyncDelay time.Duration

	// VerifyAttempts is the total number of verification call attempts.
	VerifyAttempts uint64
	// VerifyBaseDelay is the first verification retry delay; it doubles
	// per attempt up to VerifyMaxDelay.
	VerifyBaseDelay time.Duration
	// VerifyMaxDelay caps the exponential verification delay.
	VerifyMaxDelay time.Duration
}

// DefaultRetryPolicy returns the production tuning: 2 diff attempts 30s
// apart, 10 verification attempts backing off 1s → 32s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		SyncAttempts:    2,
		SyncDelay:       30 * time.Second,
		VerifyAttempts:  10,
		VerifyBaseDelay: time.Second,
		VerifyMaxDelay:  32 * time.Second,
	}
}

// RetryPolicyFromConfig builds a policy from the retry configuration,
// falling back to [DefaultRetryPolicy] for every field left at zero.
func RetryPolicyFromConfig(cfg config.Retry) RetryPolicy {
	p := DefaultRetryPolicy()

	if cfg.SyncAttempts > 0 {
		p.SyncAttempts = cfg.SyncAttempts
	}
	if cfg.SyncDelay > 0 {
		p.SyncDelay = cfg.SyncDelay
	}
	if cfg.VerifyAttempts > 0 {
		p.VerifyAttempts = cfg.VerifyAttempts
	}
	if cfg.VerifyBaseDelay > 0 {
		p.VerifyBaseDelay = cfg.VerifyBaseDelay
	}
	if cfg.VerifyMaxDelay > 0 {
		p.VerifyMaxDelay = cfg.VerifyMaxDelay
	}

	return p
}

// DoSync runs fn under the bounded fixed-delay strategy. On exhaustion the
// returned error matches [ErrSyncExhausted] and still carries the last
// attempt's error for errors.Is inspection.
func (p RetryPolicy) DoSync(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(p.SyncAttempts-1, retry.NewConstant(p.SyncDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		return markRetryable(fn(ctx))
	})
	if err != nil {
		if !wasRetryable(err) {
			return err
		}
		return errors.Join(ErrSyncExhausted, err)
	}
	return nil
}

// DoVerify runs fn under the capped exponential-backoff strategy. On
// exhaustion the returned error matches [ErrVerificationExhausted].
func (p RetryPolicy) DoVerify(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(p.VerifyAttempts-1,
		retry.WithCappedDuration(p.VerifyMaxDelay, retry.NewExponential(p.VerifyBaseDelay)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		return markRetryable(fn(ctx))
	})
	if err != nil {
		if !wasRetryable(err) {
			return err
		}
		return errors.Join(ErrVerificationExhausted, err)
	}
	return nil
}

// markRetryable classifies an attempt's error. Authentication and
// protocol-level rejections cannot succeed on retry and abort the loop
// immediately; everything else is assumed transient.
func markRetryable(err error) error {
	if err == nil {
		return nil
	}
	if !wasRetryable(err) {
		return err
	}
	return retry.RetryableError(err)
}

// wasRetryable reports whether err was (or would have been) classified as
// transient by markRetryable.
func wasRetryable(err error) bool {
	return !errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, adapter.ErrBadRequest)
}
