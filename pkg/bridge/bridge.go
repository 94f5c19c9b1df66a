package bridge

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/mobilekit/fblogin/pkg/fburl"
	"github.com/mobilekit/fblogin/pkg/logger"
)

// Outcome is the terminal result of one open transaction.
type Outcome struct {
	// Opened reports whether the OS accepted the open request. It is true
	// for every completed transaction, including ones that ended without a
	// redirect.
	Opened bool

	// Redirect carries the URL that returned control to the application,
	// when one did. A nil Redirect on a nil-error outcome means the
	// browser surface went away without delivering one.
	Redirect *url.URL
}

// Handler receives a transaction's single terminal result. It fires exactly
// once per Open call.
type Handler func(Outcome, error)

// transaction is the bookkeeping for one Open call. The once guard is what
// makes delivery single-shot across the racing completion paths.
type transaction struct {
	handler      Handler
	once         sync.Once
	session      AuthSession
	surfaceShown bool
}

// Option configures a Bridge during construction.
type Option func(*Bridge)

// WithOpener replaces the direct OS-level opener.
func WithOpener(o URLOpener) Option {
	return func(b *Bridge) {
		if o != nil {
			b.opener = o
		}
	}
}

// WithAuthSessionFactory declares the ephemeral web-auth capability. When
// set, authorization-dialog URLs use it exclusively.
func WithAuthSessionFactory(f AuthSessionFactory) Option {
	return func(b *Bridge) { b.sessionFactory = f }
}

// WithSurface provides the embedded browser surface used for http(s) URLs
// when no web-auth session capability exists.
func WithSurface(s Surface) Option {
	return func(b *Bridge) { b.surface = s }
}

// WithDispatcher replaces the execution context callbacks are serialized on.
func WithDispatcher(d Dispatcher) Option {
	return func(b *Bridge) {
		if d != nil {
			b.dispatcher = d
		}
	}
}

// WithCallbackScheme sets the custom scheme handed to web-auth sessions so
// the OS knows which redirect ends the session.
func WithCallbackScheme(scheme string) Option {
	return func(b *Bridge) { b.callbackScheme = scheme }
}

// WithLogger configures the logger for the bridge.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// Bridge mediates between the application and the OS-level browser and
// redirect machinery. At most one transaction is pending at a time.
type Bridge struct {
	mu      sync.Mutex
	pending *transaction

	opener         URLOpener
	sessionFactory AuthSessionFactory
	surface        Surface
	dispatcher     Dispatcher
	callbackScheme string
	isAuthURL      func(*url.URL) bool
	log            *slog.Logger
}

// New constructs a Bridge. Defaults: the system browser opener, a serial
// background dispatcher, no web-auth session capability, no embedded
// surface.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		opener:     SystemOpener(),
		dispatcher: NewSerialDispatcher(),
		isAuthURL:  fburl.IsAuthorizationURL,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open starts the one outbound-open → inbound-return transaction for u.
// Any outstanding transaction is canceled first, and its handler observes
// the cancellation before h can observe anything. The actual open is
// deferred one dispatcher turn so a caller sitting inside its own reentry
// handler is never reentered synchronously.
func (b *Bridge) Open(u *url.URL, pc PresentationContext, h Handler) {
	if u == nil || h == nil {
		b.log.Warn("ignoring open with missing url or handler", logger.Component("bridge"))
		return
	}

	b.Cancel()

	tx := &transaction{handler: h}
	b.mu.Lock()
	b.pending = tx
	b.mu.Unlock()

	b.dispatcher.Dispatch(func() { b.start(tx, u, pc) })
}

// Pending reports whether a transaction is awaiting its result.
func (b *Bridge) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending != nil
}

func (b *Bridge) start(tx *transaction, u *url.URL, pc PresentationContext) {
	b.mu.Lock()
	superseded := b.pending != tx
	b.mu.Unlock()
	if superseded {
		// Canceled before its first turn; the handler has already been told.
		return
	}

	if !strings.HasPrefix(u.Scheme, "http") {
		if err := b.opener.OpenURL(u); err != nil {
			b.finish(tx, Outcome{}, errors.Join(ErrUnknown, err))
			return
		}
		b.finish(tx, Outcome{Opened: true}, nil)
		return
	}

	if b.sessionFactory != nil && b.isAuthURL(u) {
		b.startSession(tx, u)
		return
	}

	if b.surface == nil {
		b.finish(tx, Outcome{}, ErrUnknown)
		return
	}

	b.mu.Lock()
	tx.surfaceShown = true
	b.mu.Unlock()

	if err := b.surface.Present(pc, u, func() { b.surfaceDone(tx) }); err != nil {
		b.mu.Lock()
		tx.surfaceShown = false
		b.mu.Unlock()
		b.finish(tx, Outcome{}, errors.Join(ErrUnknown, err))
	}
}

func (b *Bridge) startSession(tx *transaction, u *url.URL) {
	session := b.sessionFactory(u, b.callbackScheme, func(redirect *url.URL, err error) {
		b.dispatcher.Dispatch(func() { b.sessionCompleted(tx, redirect, err) })
	})

	b.mu.Lock()
	tx.session = session
	b.mu.Unlock()

	if !session.Start() {
		b.mu.Lock()
		tx.session = nil
		b.mu.Unlock()
		b.finish(tx, Outcome{}, ErrUnknown)
	}
}

func (b *Bridge) sessionCompleted(tx *transaction, redirect *url.URL, err error) {
	b.mu.Lock()
	tx.session = nil
	b.mu.Unlock()

	switch {
	case redirect != nil:
		b.finish(tx, Outcome{Opened: true, Redirect: redirect}, nil)
	case IsCancellation(err):
		b.finish(tx, Outcome{}, ErrSessionCanceled)
	case err != nil:
		b.finish(tx, Outcome{}, errors.Join(ErrUnknown, err))
	default:
		b.finish(tx, Outcome{Opened: true}, nil)
	}
}

// HandleReentry delivers a URL the OS handed back to the application while a
// transaction is pending. An embedded surface is dismissed before the result
// is reported; an active web-auth session is canceled, racing the session's
// own completion with the same URL, and exactly one of the two wins. Returns
// whether a pending transaction claimed the URL.
func (b *Bridge) HandleReentry(u *url.URL) bool {
	b.mu.Lock()
	tx := b.pending
	var session AuthSession
	var dismiss bool
	if tx != nil {
		session = tx.session
		tx.session = nil
		dismiss = tx.surfaceShown
		tx.surfaceShown = false
	}
	b.mu.Unlock()

	if tx == nil || u == nil {
		return false
	}

	if dismiss && b.surface != nil {
		b.surface.Dismiss(func() {
			b.finish(tx, Outcome{Opened: true, Redirect: u}, nil)
		})
		return true
	}

	// The URL in hand wins the race against the session's own completion;
	// the late cancellation result is dropped by the once guard.
	b.finish(tx, Outcome{Opened: true, Redirect: u}, nil)
	if session != nil {
		session.Cancel()
	}
	return true
}

// surfaceDone fires when the user dismissed the embedded surface through its
// own affordance. This is the one case where the dismissal itself is the
// terminal event rather than a side effect of delivering a URL.
func (b *Bridge) surfaceDone(tx *transaction) {
	b.mu.Lock()
	shown := tx.surfaceShown
	tx.surfaceShown = false
	b.mu.Unlock()

	if !shown {
		// A programmatic dismissal already carries its own result.
		return
	}
	b.finish(tx, Outcome{Opened: true}, nil)
}

// Cancel aborts the pending transaction, tearing down whichever surface or
// session it holds. Safe to call when nothing is pending. The canceled
// handler observes ErrCanceled before Cancel returns.
func (b *Bridge) Cancel() {
	b.mu.Lock()
	tx := b.pending
	var session AuthSession
	var dismiss bool
	if tx != nil {
		session = tx.session
		tx.session = nil
		dismiss = tx.surfaceShown
		tx.surfaceShown = false
	}
	b.mu.Unlock()

	if tx == nil {
		return
	}
	if session != nil {
		session.Cancel()
	}
	if dismiss && b.surface != nil {
		b.surface.Dismiss(nil)
	}
	b.finish(tx, Outcome{}, ErrCanceled)
}

// finish delivers the transaction's single result. Late arrivals from the
// racing completion paths are dropped here.
func (b *Bridge) finish(tx *transaction, out Outcome, err error) {
	delivered := false
	tx.once.Do(func() {
		delivered = true
		b.mu.Lock()
		if b.pending == tx {
			b.pending = nil
		}
		b.mu.Unlock()
		tx.handler(out, err)
	})
	if !delivered {
		b.log.Debug("dropping duplicate transaction result", logger.Component("bridge"), logger.Error(err))
	}
}
