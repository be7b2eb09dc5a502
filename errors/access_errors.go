// api/errors/access_errors.go
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrMembershipNotFound = errors.New("membership not found")

	ErrTenantHeaderMissing = errors.New("tenant header missing")
	ErrTenantHeaderInvalid = errors.New("tenant header invalid")

	ErrAccessDenied      = errors.New("tenant access denied")
	ErrCacheUnavailable  = errors.New("cache store unavailable")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// AuthenticationError carries a token-verifier rejection through unchanged.
// The resolver never invents its own authentication failures; whatever
// status the verifier produced is what the caller sees.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication rejected (%d): %s", e.Status, e.Message)
}

// AsAuthenticationError unwraps err into an AuthenticationError, if it is one.
func AsAuthenticationError(err error) (*AuthenticationError, bool) {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}
