package models

import "errors"

var (
	// ErrUnknownCategory reports a category selector or wire name that does
	// not match any tracked threat category.
	ErrUnknownCategory = errors.New("unknown threat category")

	// ErrMalformedPrefixBlock reports a prefix block whose declared size is
	// outside the valid range or whose payload is not a whole number of
	// prefixes.
	ErrMalformedPrefixBlock = errors.New("malformed prefix block")
)
