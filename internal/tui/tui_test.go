package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-threat-cache/models"
	"github.com/stretchr/testify/assert"
)

func TestIsFullHash(t *testing.T) {
	assert.True(t, isFullHash(strings.Repeat("ab", models.FullHashSize)))
	assert.False(t, isFullHash("example.com"))
	assert.False(t, isFullHash(strings.Repeat("ab", models.FullHashSize-1)))
	assert.False(t, isFullHash(strings.Repeat("zz", models.FullHashSize)))
}

func TestRenderBuildInfo(t *testing.T) {
	out := renderBuildInfo(models.NewAppBuildInfo("1.2.3", "2026-08-31", "abc123"))
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "2026-08-31")
	assert.Contains(t, out, "abc123")

	// unset ldflags values render as N/A
	out = renderBuildInfo(models.AppBuildInfo{})
	assert.Contains(t, out, "N/A")
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, "1.0.0", valueOrNA("1.0.0"))
	assert.Equal(t, "N/A", valueOrNA(""))
	assert.Equal(t, "N/A", valueOrNA("   "))
}

func TestVerdictText(t *testing.T) {
	assert.Equal(t, "example.com: SAFE",
		verdictText(&checkResult{input: "example.com"}))

	assert.Equal(t, "example.com: THREAT MALWARE,SOCIAL_ENGINEERING",
		verdictText(&checkResult{
			input:   "example.com",
			matches: []models.Category{models.Malware, models.SocialEngineering},
		}))

	assert.Equal(t, "example.com: error: boom",
		verdictText(&checkResult{input: "example.com", err: errors.New("boom")}))
}
