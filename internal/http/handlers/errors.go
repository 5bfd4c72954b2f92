// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP responses
// (via the `fail()` helper in this package). These codes provide clients with a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, not_found) mirror common HTTP status
//     semantics to aid interoperability.
//   - Domain-specific codes (e.g., request_dropped, upstream_error) are reserved
//     for behaviors that cannot be conveyed by status alone.
//   - All error responses must include both an HTTP status and one of these codes.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "request_dropped",
//	  "error": "search already in progress or too soon after the last one"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"

	// Domain-specific:

	// ErrCodeRequestDropped means the search gate refused the request because
	// another search is in flight or the minimum gap has not elapsed.
	ErrCodeRequestDropped = "request_dropped"
	// ErrCodeConfig means the server is missing its upstream credential.
	ErrCodeConfig = "config_error"
	// ErrCodeUpstream means the Places API rejected or failed the search.
	ErrCodeUpstream = "upstream_error"
	// ErrCodeLocationUnavailable means no position could be determined.
	ErrCodeLocationUnavailable = "location_unavailable"

	ErrCodeListFailed = "list_failed"
	ErrCodeSaveFailed = "save_failed"
)
