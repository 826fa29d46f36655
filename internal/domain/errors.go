package domain

import "errors"

var (
	// ErrAuthenticationRequired signals a view that needs a viewer but none was resolved.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrInvalidCredential signals a malformed, expired, or badly signed bearer token.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrInvalidPagination signals skip/limit values outside the allowed bounds.
	ErrInvalidPagination = errors.New("invalid pagination")
	// ErrMalformedRelationshipData signals a relationship payload that violates the upstream contract.
	ErrMalformedRelationshipData = errors.New("malformed relationship data")
	// ErrRelationshipServiceUnavailable signals a failed or timed-out relationship-service call.
	ErrRelationshipServiceUnavailable = errors.New("relationship service unavailable")
	// ErrSearchBackendUnavailable signals a failed or timed-out index query.
	ErrSearchBackendUnavailable = errors.New("search backend unavailable")
	// ErrUserDirectoryUnavailable signals a failed or timed-out user-directory call.
	ErrUserDirectoryUnavailable = errors.New("user directory unavailable")
)
