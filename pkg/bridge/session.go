package bridge

import "net/url"

// AuthSession is an ephemeral web-auth session: a single-shot cancellable
// operation whose completion callback carries either the redirect URL or a
// user-cancellation error. It is the capability interface unifying the two
// OS facilities that have historically provided this behavior; which one
// backs it is the host's concern.
type AuthSession interface {
	// Start begins the session. A false return means the session could not
	// start and its completion callback will never fire.
	Start() bool

	// Cancel aborts the session. Cancellation races with the session's own
	// completion; the bridge tolerates both and delivers a single result.
	Cancel()
}

// AuthSessionFactory builds an AuthSession for the given dialog URL that
// will invoke completion exactly once with the callback-scheme redirect or
// an error (ErrSessionCanceled for user dismissal). A nil factory declares
// the capability unavailable on this host.
type AuthSessionFactory func(u *url.URL, callbackScheme string, completion func(redirect *url.URL, err error)) AuthSession
