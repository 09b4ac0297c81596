package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings valid for time.ParseDuration (e.g. "30s").
	jsonBody := `{
		"app": {
			"api_key": "secret-key",
			"client_id": "test-client",
			"client_version": "1.2.3"
		},
		"adapter": {
			"address": "https://threats.example.com",
			"request_timeout": "30s"
		},
		"server": {
			"address": "localhost:8080",
			"request_timeout": "1m"
		},
		"sync": {
			"max_diff_entries": 4096,
			"max_database_entries": 1048576
		},
		"retry": {
			"sync_attempts": 3,
			"sync_delay": "45s",
			"verify_attempts": 6,
			"verify_base_delay": "500ms",
			"verify_max_delay": "16s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

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

	// the json source never carries its own config path
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// durations may also arrive as raw nanosecond numbers
	jsonBody := `{"adapter": {"request_timeout": 30000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/nonexistent/config.json")
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "soon"}}`), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Second)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
