// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
)

// Category is one of the threat classifications tracked by the local cache.
// Every per-category structure (prefix database, version token, sync
// controller) is indexed by this type; no open-ended string keys exist below
// the public API boundary.
type Category int

const (
	// Malware covers URLs serving or linking to malicious binaries.
	Malware Category = iota
	// SocialEngineering covers phishing and deceptive pages.
	SocialEngineering
	// UnwantedSoftware covers pages distributing unwanted software.
	UnwantedSoftware

	categoryCount
)

// AllCategories returns every tracked category in canonical enumeration
// order. The order is load-bearing: lookup tie-breaks and aggregated check
// results follow it.
func AllCategories() []Category {
	return []Category{Malware, SocialEngineering, UnwantedSoftware}
}

// String returns the wire/display name of the category.
func (c Category) String() string {
	switch c {
	case Malware:
		return "MALWARE"
	case SocialEngineering:
		return "SOCIAL_ENGINEERING"
	case UnwantedSoftware:
		return "UNWANTED_SOFTWARE"
	default:
		return fmt.Sprintf("CATEGORY(%d)", int(c))
	}
}

// MarshalText implements [encoding.TextMarshaler] so categories serialize as
// their canonical names in JSON payloads.
func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || c >= categoryCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for the canonical
// category names used on the wire.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := CategoryFromWire(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryFromWire maps a canonical wire name (e.g. "MALWARE") back to its
// [Category] value.
func CategoryFromWire(name string) (Category, error) {
	for _, c := range AllCategories() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// ParseCategorySelector resolves a user-facing category selector into the set
// of categories it names. Recognised selectors are "malware", "social",
// "unwanted" and "all"; anything else is an [ErrUnknownCategory].
func ParseCategorySelector(selector string) ([]Category, error) {
	switch selector {
	case "malware":
		return []Category{Malware}, nil
	case "social":
		return []Category{SocialEngineering}, nil
	case "unwanted":
		return []Category{UnwantedSoftware}, nil
	case "all":
		return AllCategories(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, selector)
	}
}
