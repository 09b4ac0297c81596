package service

import "errors"

var (
	// ErrInvalidArgument is returned for unrecognized category selectors
	// and malformed hash inputs. No state is mutated.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSyncExhausted is returned when every bounded-retry attempt of a
	// caller-initiated diff call failed. Scheduled resyncs recover from
	// the same condition locally by arming a fallback timer instead.
	ErrSyncExhausted = errors.New("sync retries exhausted")

	// ErrVerificationExhausted marks a verification call whose
	// exponential-backoff attempts all failed. Lookups treat the affected
	// hash as a conservative non-match; the error never aborts a check.
	ErrVerificationExhausted = errors.New("verification retries exhausted")

	// ErrChecksumDiverged is returned when forced full resyncs keep
	// producing a database whose checksum disagrees with the server's.
	// Persistent disagreement means client and server cannot converge and
	// needs operator attention.
	ErrChecksumDiverged = errors.New("database checksum diverged from server")

	// ErrCacheClosed is returned by operations invoked after Close.
	ErrCacheClosed = errors.New("cache is closed")
)
