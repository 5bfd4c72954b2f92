// Package services defines the business logic for place discovery, the
// saved-place registry, and user preferences. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrInvalidCoordinates is returned when a latitude/longitude pair is
	// missing or outside the valid WGS84 ranges.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidCategory is returned when a place category is empty after
	// normalization.
	ErrInvalidCategory = errors.New("category is required")

	// ErrInvalidPlace is returned when a save request lacks the place id or
	// name.
	ErrInvalidPlace = errors.New("place id and name are required")

	// ErrInvalidPreference is returned when a preference update contains a
	// value outside the allowed set.
	ErrInvalidPreference = errors.New("invalid preference value")
)
