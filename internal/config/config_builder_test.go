package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, first non-zero value winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{APIKey: "key-from-first"}},
		&StructuredConfig{
			App:     App{APIKey: "key-from-second", ClientID: "client-id"},
			Adapter: Adapter{Address: "threats.example.com", RequestTimeout: 30 * time.Second},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "key-from-first", cfg.App.APIKey, "earlier sources win for non-zero fields")
	assert.Equal(t, "client-id", cfg.App.ClientID)
	assert.Equal(t, "threats.example.com", cfg.Adapter.Address)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsEnvConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_ADDRESS": "env.example.com"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.example.com", b.configs[0].Adapter.Address)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// config has a JSONFilePath.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"address": "json.example.com", "request_timeout": "45s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.example.com", b.configs[1].Adapter.Address)
	assert.Equal(t, 45*time.Second, b.configs[1].Adapter.RequestTimeout)
}

func TestWithJSON_BadPathSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})

	b.withJSON()
	require.Error(t, b.err)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestWithJSON_LastNonEmptyPathWins verifies that with several configs carrying a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_LastNonEmptyPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"client_id": "from-first"},
	})
	second := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"client_id": "from-second"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "from-second", b.configs[3].App.ClientID)
}
