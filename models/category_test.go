// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryWireNames(t *testing.T) {
	assert.Equal(t, "MALWARE", Malware.String())
	assert.Equal(t, "SOCIAL_ENGINEERING", SocialEngineering.String())
	assert.Equal(t, "UNWANTED_SOFTWARE", UnwantedSoftware.String())

	for _, cat := range AllCategories() {
		parsed, err := CategoryFromWire(cat.String())
		require.NoError(t, err)
		assert.Equal(t, cat, parsed)
	}

	_, err := CategoryFromWire("RANSOMWARE")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal([]Category{Malware, UnwantedSoftware})
	require.NoError(t, err)
	assert.JSONEq(t, `["MALWARE","UNWANTED_SOFTWARE"]`, string(data))

	var out []Category
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, []Category{Malware, UnwantedSoftware}, out)
}

func TestParseCategorySelector(t *testing.T) {
	tests := []struct {
		selector string
		want     []Category
	}{
		{selector: "malware", want: []Category{Malware}},
		{selector: "social", want: []Category{SocialEngineering}},
		{selector: "unwanted", want: []Category{UnwantedSoftware}},
		{selector: "all", want: AllCategories()},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := ParseCategorySelector(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCategorySelector("phishing")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPrefixBlockValidate(t *testing.T) {
	assert.NoError(t, PrefixBlock{Size: 4, Data: make([]byte, 8)}.Validate())
	assert.ErrorIs(t, PrefixBlock{Size: 3, Data: make([]byte, 6)}.Validate(), ErrMalformedPrefixBlock)
	assert.ErrorIs(t, PrefixBlock{Size: 33, Data: make([]byte, 33)}.Validate(), ErrMalformedPrefixBlock)
	assert.ErrorIs(t, PrefixBlock{Size: 4, Data: make([]byte, 7)}.Validate(), ErrMalformedPrefixBlock)
}
