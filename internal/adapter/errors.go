package adapter

import "errors"

var (
	// ErrServiceUnavailable marks transient remote failures (network
	// errors, 5xx, throttling). Calls failing with it are retryable.
	ErrServiceUnavailable = errors.New("threat service unavailable")

	// ErrUnauthorized marks authentication failures (bad or missing API
	// key). Retrying without operator intervention is pointless.
	ErrUnauthorized = errors.New("threat service rejected credentials")

	// ErrBadRequest marks requests the service considers malformed,
	// usually a protocol-level bug on the client side.
	ErrBadRequest = errors.New("threat service rejected request")
)
