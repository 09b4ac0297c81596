// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-threat-cache. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the remote API key and
	// the client identification reported to the threat service.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the outbound connection to the
	// remote threat-list service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds network settings for the local lookup daemon.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds tuning for the periodic threat-list synchronization.
	Sync Sync `envPrefix:"SYNC_"`

	// Retry holds tuning for the retry strategies wrapping outbound calls.
	Retry Retry `envPrefix:"RETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey authenticates every request to the remote threat-list
	// service. Must be kept confidential.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// ClientID identifies this client implementation to the remote
	// service (e.g. "go-threat-cache").
	// Env: APP_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientVersion is the semantic version string reported alongside
	// ClientID.
	// Env: APP_CLIENT_VERSION
	ClientVersion string `env:"CLIENT_VERSION"`
}

// Adapter holds settings for the outbound transport to the remote threat-list
// service.
type Adapter struct {
	// Address is the base URL of the remote threat-list service
	// (e.g. "https://threats.example.com").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m"). Retries are governed separately.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the local lookup daemon.
type Server struct {
	// Address is the TCP address the local HTTP API listens on, in
	// "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds size hints forwarded to the remote service with every diff
// request. Zero values mean "no constraint".
type Sync struct {
	// MaxDiffEntries caps the number of entries in a single diff
	// response.
	// Env: SYNC_MAX_DIFF_ENTRIES
	MaxDiffEntries int `env:"MAX_DIFF_ENTRIES"`

	// MaxDatabaseEntries caps the total size of each local prefix
	// database the server should steer the client towards.
	// Env: SYNC_MAX_DATABASE_ENTRIES
	MaxDatabaseEntries int `env:"MAX_DATABASE_ENTRIES"`
}

// Retry holds retry tuning for outbound calls. Zero values mean "use the
// built-in default" for that field.
type Retry struct {
	// SyncAttempts is the total number of diff call attempts.
	// Env: RETRY_SYNC_ATTEMPTS
	SyncAttempts uint64 `env:"SYNC_ATTEMPTS"`

	// SyncDelay is the fixed delay between diff call attempts.
	// Env: RETRY_SYNC_DELAY
	SyncDelay time.Duration `env:"SYNC_DELAY"`

	// VerifyAttempts is the total number of verification call attempts.
	// Env: RETRY_VERIFY_ATTEMPTS
	VerifyAttempts uint64 `env:"VERIFY_ATTEMPTS"`

	// VerifyBaseDelay is the first verification retry delay; it doubles
	// per attempt up to VerifyMaxDelay.
	// Env: RETRY_VERIFY_BASE_DELAY
	VerifyBaseDelay time.Duration `env:"VERIFY_BASE_DELAY"`

	// VerifyMaxDelay caps the exponential verification delay.
	// Env: RETRY_VERIFY_MAX_DELAY
	VerifyMaxDelay time.Duration `env:"VERIFY_MAX_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Sources are merged in order and
// a field keeps the first non-zero value it received, so the priority is:
//  1. Environment variables (highest)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2; lowest)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
