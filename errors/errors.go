/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// Sentinel errors for this layer's own contract failures. Service failures
// are never translated into these; they surface as the SDK raised them.
var (
	// ErrMissingPartitionKey is returned when a point read is attempted
	// without a partition key
	ErrMissingPartitionKey = errors.New("partition key is required")

	// ErrUnresolvedRef is returned when a container or database reference
	// carries nothing resolvable
	ErrUnresolvedRef = errors.New("unresolvable reference")

	// ErrNoCredentials is returned when no account credentials are configured
	ErrNoCredentials = errors.New("no credentials configured")

	// ErrEmptyQuery is returned when a query operation is given no query text
	ErrEmptyQuery = errors.New("query text is empty")
)

// UnresolvedRefError reports which reference could not be resolved.
type UnresolvedRefError struct {
	Kind string // "container" or "database"
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("%s reference carries no name, properties, or handle", e.Kind)
}

func (e *UnresolvedRefError) Is(target error) bool {
	return target == ErrUnresolvedRef
}

// NewUnresolvedRefError creates a new UnresolvedRefError
func NewUnresolvedRefError(kind string) error {
	return &UnresolvedRefError{Kind: kind}
}

// Classification helpers over the raw service errors. The task operations
// return SDK errors unmodified; these helpers let callers (for example a
// workflow engine's retry policy) branch on the service status without the
// task layer doing any translation of its own.

// IsNotFound reports whether err is a service not-found response.
func IsNotFound(err error) bool {
	return hasStatus(err, 404)
}

// IsConflict reports whether err is a service conflict response, such as a
// create with a duplicate id.
func IsConflict(err error) bool {
	return hasStatus(err, 409)
}

// IsThrottled reports whether err is a service rate-limit response.
func IsThrottled(err error) bool {
	return hasStatus(err, 429)
}

// IsUnauthorized reports whether err is an authentication or authorization
// failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, 401) || hasStatus(err, 403)
}

func hasStatus(err error, code int) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == code
	}
	return false
}
