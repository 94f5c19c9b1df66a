// Package bridge owns the single outbound-open → inbound-return transaction
// between the application and the OS browser machinery during a login
// attempt.
//
// One transaction is pending at a time. Opening a URL picks one of three
// channels:
//
//   - a direct OS-level open for non-http(s) schemes (no visible surface;
//     the outcome only reports whether the OS accepted the request),
//   - an ephemeral web-auth session when the URL is the provider's
//     authorization dialog and the host exposes that capability,
//   - an embedded full-screen browser surface wrapped in a
//     disappearance observer, otherwise.
//
// However the transaction travels, its handler fires exactly once: with the
// redirect URL that returned control to the app, with a cancellation error
// (ErrCanceled, ErrSessionCanceled), or with an outcome carrying no redirect
// when the surface was dismissed without one. Starting a new transaction
// first cancels the outstanding one, and the canceled handler observes its
// result before the new transaction can produce one.
//
// The host supplies the presentation machinery through interfaces: URLOpener
// (defaulting to the system browser via github.com/pkg/browser),
// AuthSessionFactory, and Surface. Callbacks are serialized through a
// Dispatcher standing in for the UI-owning execution context.
package bridge
