package login

import (
	"errors"
	"fmt"
)

var (
	// ErrLoginInProgress is returned by Login when the manager is not idle.
	// Attempts are never queued or interleaved.
	ErrLoginInProgress = errors.New("another login attempt is in progress")

	// ErrBadChallenge reports a redirect whose echoed challenge does not
	// match the stored one, indicating tampering or replay.
	ErrBadChallenge = errors.New("login response missing a valid challenge")

	// ErrUnknown is the catch-all for failures without a classifiable cause.
	ErrUnknown = errors.New("unknown login failure")
)

// ProviderError is an error the provider reported through the redirect's
// error fields. Message carries the primary developer-facing text; the
// secondary fields mirror the provider's own classification and are only
// populated when a primary message exists.
type ProviderError struct {
	Message string // primary developer message (error_message)
	Code    string // provider error identifier (error)
	Subcode string // provider numeric code, as received (error_code)
	Reason  string // provider reason (error_reason)
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider error %s: %s", e.Code, e.Message)
	}
	return "provider error: " + e.Message
}

// providerErrorFromParams builds the failure-path error from redirect
// parameters. Absence of a primary developer message yields the generic
// unknown error, never a half-populated ProviderError.
func providerErrorFromParams(params map[string]string) error {
	message := params["error_message"]
	if message == "" {
		return ErrUnknown
	}
	return &ProviderError{
		Message: message,
		Code:    params["error"],
		Subcode: params["error_code"],
		Reason:  params["error_reason"],
	}
}
