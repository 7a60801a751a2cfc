package processor

import "errors"

var (
	// ErrInvalidRequest marks caller faults: empty text, an unknown
	// task kind, a negative time window. Never worth retrying.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMalformedOutput marks a contract violation between the
	// provider and the normalizer. The caller's input is fine; the
	// provider integration is not.
	ErrMalformedOutput = errors.New("malformed provider output")
)
