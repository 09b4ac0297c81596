package models

// CheckResponse is the JSON body returned by the local daemon's check
// endpoint.
type CheckResponse struct {
	// Input echoes the URL or hash that was checked.
	Input string `json:"input"`

	// Matches lists the canonical names of every threat category the
	// input was confirmed to be on, in enumeration order. Empty means the
	// input is not on any tracked list.
	Matches []string `json:"matches"`
}

// FindHashResponse is the JSON body of the diagnostic hash-location endpoint.
type FindHashResponse struct {
	// Location names the structure the hash currently resolves to: a
	// category name, "positive", "negative", or "none".
	Location string `json:"location"`

	// PrefixLength is the matched prefix length in bytes, 0 when Location
	// is "none".
	PrefixLength int `json:"prefix_length"`
}

// SyncResponse is the JSON body of the manual resync endpoint.
type SyncResponse struct {
	// Category echoes the selector that was synced.
	Category string `json:"category"`
}

// ErrorResponse is the JSON error body used by every local daemon endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
