package bridge

import "errors"

var (
	// ErrCanceled reports a transaction canceled by the bridge itself,
	// either explicitly or because a new transaction superseded it.
	ErrCanceled = errors.New("bridge transaction canceled")

	// ErrSessionCanceled reports the user dismissing an ephemeral web-auth
	// session. AuthSession implementations must complete with this error
	// (or one wrapping it) for user-initiated dismissal.
	ErrSessionCanceled = errors.New("web auth session canceled")

	// ErrUnknown is the catch-all for non-delivery without a classifiable
	// cause.
	ErrUnknown = errors.New("unknown bridge failure")
)

// IsCancellation reports whether err is one of the known
// user-dismissed-browser kinds.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCanceled) || errors.Is(err, ErrSessionCanceled)
}
