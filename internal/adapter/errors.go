package adapter

import "errors"

var (
	// ErrTokenNotConfigured is returned when an adapter has no API token to
	// authenticate with. Callers surface it as a degraded payload, not a
	// server error.
	ErrTokenNotConfigured = errors.New("api token not configured")

	// ErrUpstreamRequest is returned (wrapped) when the outbound HTTP call
	// itself fails: DNS, connect, timeout.
	ErrUpstreamRequest = errors.New("upstream request failed")

	// ErrUpstreamResponse is returned (wrapped) when the upstream answered
	// but with a non-success status or an error body.
	ErrUpstreamResponse = errors.New("upstream returned an error")
)
