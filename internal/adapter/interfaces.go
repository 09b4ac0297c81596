// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// remote threat-list service.
//
// Two collaborators are abstracted: [DiffService], which computes incremental
// updates of a category's prefix list, and [VerifyService], which resolves a
// locally matched prefix to the full hashes currently listed under it. The
// sync and lookup logic depends only on these interfaces; the package ships
// an HTTP/JSON implementation ([NewHTTPThreatAPI]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrServiceUnavailable] for 5xx and 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-threat-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/threat_api_mock.go -package=mock

// DiffService computes the changes between the client's last synchronized
// state of one threat category and the current authoritative list.
type DiffService interface {
	// ComputeDiff returns either an incremental diff on top of the
	// request's version token or a full reset. A nil version token always
	// yields a reset. The call may fail transiently (network or service
	// error); such failures map to [ErrServiceUnavailable].
	ComputeDiff(ctx context.Context, req models.DiffRequest) (models.DiffResponse, error)
}

// VerifyService resolves a hash prefix that matched a local database to the
// authoritative set of full hashes listed under it.
type VerifyService interface {
	// FindFullHashes returns every listed full hash under req.Prefix for
	// the requested categories, plus an optional negative-cache expiry
	// for the prefix itself. The call may fail transiently.
	FindFullHashes(ctx context.Context, req models.VerifyRequest) (models.VerifyResponse, error)
}
