package otp

import "errors"

// Sentinel errors for the challenge lifecycle. Handlers must collapse all
// verification rejections into one generic client message; the distinct
// kinds exist for logging and tests.
var (
	ErrRateLimited     = errors.New("otp: rate limited")
	ErrDeliveryFailed  = errors.New("otp: delivery failed")
	ErrNotFound        = errors.New("otp: no matching challenge")
	ErrExpired         = errors.New("otp: challenge expired")
	ErrStale           = errors.New("otp: challenge superseded by a newer issuance")
	ErrAlreadyConsumed = errors.New("otp: challenge already consumed")
)

// RateLimitError carries the human-readable wait hint surfaced on 429s.
type RateLimitError struct {
	Hint string
}

func (e *RateLimitError) Error() string {
	return e.Hint
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
