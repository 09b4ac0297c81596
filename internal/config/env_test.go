// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_API_KEY":        "secret-key",
		"APP_CLIENT_ID":      "test-client",
		"APP_CLIENT_VERSION": "1.2.3",

		"ADAPTER_ADDRESS":         "https://threats.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "1m",

		"SYNC_MAX_DIFF_ENTRIES":     "4096",
		"SYNC_MAX_DATABASE_ENTRIES": "1048576",

		"RETRY_SYNC_ATTEMPTS":     "3",
		"RETRY_SYNC_DELAY":        "45s",
		"RETRY_VERIFY_ATTEMPTS":   "6",
		"RETRY_VERIFY_BASE_DELAY": "500ms",
		"RETRY_VERIFY_MAX_DELAY":  "16s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "secret-key", cfg.App.APIKey)
	assert.Equal(t, "test-client", cfg.App.ClientID)
	assert.Equal(t, "1.2.3", cfg.App.ClientVersion)

	assert.Equal(t, "https://threats.example.com", cfg.Adapter.Address)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)

	assert.Equal(t, 4096, cfg.Sync.MaxDiffEntries)
	assert.Equal(t, 1048576, cfg.Sync.MaxDatabaseEntries)

	assert.Equal(t, uint64(3), cfg.Retry.SyncAttempts)
	assert.Equal(t, 45*time.Second, cfg.Retry.SyncDelay)
	assert.Equal(t, uint64(6), cfg.Retry.VerifyAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.VerifyBaseDelay)
	assert.Equal(t, 16*time.Second, cfg.Retry.VerifyMaxDelay)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_PartialEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "threats.example.com",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "threats.example.com", cfg.Adapter.Address)
	assert.Empty(t, cfg.App.APIKey)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_API_KEY",
		"APP_CLIENT_ID",
		"APP_CLIENT_VERSION",
		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SYNC_MAX_DIFF_ENTRIES",
		"SYNC_MAX_DATABASE_ENTRIES",
		"RETRY_SYNC_ATTEMPTS",
		"RETRY_SYNC_DELAY",
		"RETRY_VERIFY_ATTEMPTS",
		"RETRY_VERIFY_BASE_DELAY",
		"RETRY_VERIFY_MAX_DELAY",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
