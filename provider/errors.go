package provider

import "errors"

var (
	// ErrUnavailable marks transient faults: network, timeout, rate limit.
	// Callers may retry; this service does not.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrRejected marks a considered refusal by the provider, such as a
	// content-policy decline or an invalid model configuration.
	ErrRejected = errors.New("provider rejected request")
)
