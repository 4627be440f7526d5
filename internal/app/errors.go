package app

import (
	"errors"
	"time"
)

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var e InvalidRequestError
	return errors.As(err, &e)
}

// NotFoundError is returned when a github resource doesn't exist.
// Value describes the missing resource, eg. "repository octocat/Hello-World".
type NotFoundError string

// Error implements error interface.
func (e NotFoundError) Error() string {
	return string(e) + " not found"
}

// IsNotFoundError checks if given error is caused by a missing resource.
func IsNotFoundError(err error) bool {
	var e NotFoundError
	return errors.As(err, &e)
}

// UnauthenticatedError is returned when github rejects the supplied token.
type UnauthenticatedError string

// Error implements error interface.
func (e UnauthenticatedError) Error() string {
	return string(e)
}

// IsUnauthenticatedError checks if given error is caused by a bad token.
func IsUnauthenticatedError(err error) bool {
	var e UnauthenticatedError
	return errors.As(err, &e)
}

// ForbiddenError is returned when the token lacks scope or resource-level access.
type ForbiddenError string

// Error implements error interface.
func (e ForbiddenError) Error() string {
	return string(e)
}

// IsForbiddenError checks if given error is caused by insufficient access.
func IsForbiddenError(err error) bool {
	var e ForbiddenError
	return errors.As(err, &e)
}

// RateLimitError is returned when github api request quota is exhausted.
type RateLimitError struct {
	// Reset is the time at which the quota replenishes. May be zero when
	// the reset header was missing or malformed.
	Reset time.Time
}

// Error implements error interface.
func (e RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return "github api rate limit exceeded"
	}
	return "github api rate limit exceeded, resets at " + e.Reset.Format(time.RFC1123)
}

// IsRateLimitError checks if given error is caused by exceeded api quota.
func IsRateLimitError(err error) bool {
	var e RateLimitError
	return errors.As(err, &e)
}

// TooManyRequestsError is special error type returned when server cannot process request because of too heavy traffic.
type TooManyRequestsError string

// Error implements error interface.
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by too heavy traffic.
func IsTooManyRequestsError(err error) bool {
	var e TooManyRequestsError
	return errors.As(err, &e)
}
