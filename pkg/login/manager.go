package login

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/mobilekit/fblogin/pkg/bridge"
	"github.com/mobilekit/fblogin/pkg/fburl"
	"github.com/mobilekit/fblogin/pkg/logger"
	"github.com/mobilekit/fblogin/pkg/manifest"
	"github.com/mobilekit/fblogin/pkg/permissions"
	"github.com/mobilekit/fblogin/pkg/securestore"
	"github.com/mobilekit/fblogin/pkg/tokencache"
)

// BrowserBridge is the surface the manager needs from pkg/bridge.
type BrowserBridge interface {
	Open(u *url.URL, pc bridge.PresentationContext, handler bridge.Handler)
	HandleReentry(u *url.URL) bool
	Cancel()
}

// Ensure the concrete bridge satisfies the contract.
var _ BrowserBridge = (*bridge.Bridge)(nil)

// Result is the terminal outcome of a login attempt. Exactly one of a
// populated Credential or Cancelled describes a non-error completion.
type Result struct {
	// Credential is the persisted credential on success, nil otherwise.
	Credential *tokencache.Credential
	// Cancelled reports that the user backed out, explicitly or
	// implicitly. Granted and Declined are empty sets, never nil.
	Cancelled bool
	// Granted holds the reconciled permissions the attempt ended with.
	Granted permissions.Set
	// Declined holds the requested permissions the user turned down.
	Declined permissions.Set
}

// CompletionHandler receives the single terminal result of an attempt.
// Exactly one of result and err is non-nil.
type CompletionHandler func(result *Result, err error)

// attempt is the per-login state kept between Open and the redirect.
type attempt struct {
	completion   CompletionHandler
	requested    permissions.Set
	cachedBefore *tokencache.Credential
}

// Manager drives the authorize-via-browser login flow end to end: it
// builds the authorization URL, opens it through the bridge, validates the
// redirect and reconciles the returned permissions into a credential.
//
// A Manager runs at most one attempt at a time and invokes each attempt's
// completion handler exactly once.
type Manager struct {
	cfg        Config
	bridge     BrowserBridge
	cache      *tokencache.Cache
	challenges *challengeStore
	inspector  manifest.Inspector
	log        *slog.Logger
	now        func() time.Time

	session *sessionMachine

	mu      sync.Mutex
	pending *attempt
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager wires a login manager. The challenges store should be
// device-local secure storage; the manager namespaces its keys within it.
func NewManager(cfg Config, b BrowserBridge, cache *tokencache.Cache, challenges securestore.Store, inspector manifest.Inspector, opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:        cfg,
		bridge:     b,
		cache:      cache,
		challenges: &challengeStore{store: securestore.Namespaced(challenges, "login")},
		inspector:  inspector,
		log:        logger.Discard(),
		now:        time.Now,
		session:    newSessionMachine(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State reports where the manager is in the attempt lifecycle.
func (m *Manager) State() State {
	return m.session.Current()
}

// CurrentCredential returns the cached credential, nil when logged out.
func (m *Manager) CurrentCredential() *tokencache.Credential {
	return m.cache.Load()
}

// Logout discards the cached credential and any in-flight attempt state.
func (m *Manager) Logout() {
	m.bridge.Cancel()
	m.cache.Clear()
	m.challenges.clear()
}

// Login starts a browser-based authorization attempt for the requested
// permissions. The completion handler fires exactly once, on the bridge's
// dispatcher. Returns ErrLoginInProgress when an attempt is already
// active.
//
// Login panics when the application is misconfigured: an empty app ID, or
// a redirect scheme the host application has not registered. Both are
// developer errors with no meaningful degraded mode.
func (m *Manager) Login(requested permissions.Set, pc bridge.PresentationContext, completion CompletionHandler) error {
	m.validateConfiguration()

	if err := m.session.fire(eventStart); err != nil {
		m.log.Warn("login rejected", logger.Component("login"), logger.Error(ErrLoginInProgress))
		return ErrLoginInProgress
	}

	challenge := generateChallenge()
	if err := m.challenges.set(challenge); err != nil {
		// A failed write surfaces later as a challenge mismatch.
		m.log.Warn("challenge not persisted", logger.Component("login"), logger.Error(err))
	}

	m.mu.Lock()
	m.pending = &attempt{
		completion:   completion,
		requested:    requested.Clone(),
		cachedBefore: m.cache.Load(),
	}
	m.mu.Unlock()

	u, err := m.authorizationURL(requested, challenge)
	if err != nil {
		m.challenges.clear()
		m.finish(nil, fmt.Errorf("build authorization url: %w", err))
		return nil
	}

	m.log.Info("login started",
		logger.Component("login"),
		logger.AppID(m.cfg.AppID),
		logger.URL(u.String()),
	)
	m.bridge.Open(u, pc, m.bridgeCompleted)
	return nil
}

// OpenURL is the host's application-delegate reentry point. It returns
// whether the URL was claimed by a pending login attempt. A foreign URL is
// never claimed, but its arrival while an attempt is awaiting a redirect
// counts as an implicit cancellation of that attempt.
func (m *Manager) OpenURL(u *url.URL, sourceApplication string, _ map[string]any) bool {
	if !m.CanOpenURL(u, sourceApplication) {
		if m.session.Current() == StateAwaitingRedirect {
			m.log.Info("unexpected url during login, cancelling",
				logger.Component("login"), logger.URL(u.String()))
			m.bridge.Cancel()
			m.completeWithCancellation()
		}
		return false
	}
	if m.bridge.HandleReentry(u) {
		return true
	}
	// The bridge already settled its transaction (a finished session, a
	// dismissed surface). Complete directly off the redirect.
	if m.session.Current() == StateAwaitingRedirect {
		m.completeAuthentication(u)
		return true
	}
	return false
}

// CanOpenURL reports whether OpenURL would claim the URL. It is free of
// side effects, for hosts that probe before dispatching.
func (m *Manager) CanOpenURL(u *url.URL, sourceApplication string) bool {
	return fburl.CanOpen(u, m.cfg.AppID, sourceApplication)
}

func (m *Manager) validateConfiguration() {
	if m.cfg.AppID == "" {
		panic("login: app ID is not configured")
	}
	if !m.inspector.IsRegisteredScheme(m.cfg.RedirectScheme()) {
		panic(fmt.Sprintf("login: url scheme %q is not registered by the host application", m.cfg.RedirectScheme()))
	}
}

func (m *Manager) authorizationURL(requested permissions.Set, challenge string) (*url.URL, error) {
	state, err := json.Marshal(map[string]string{"challenge": url.QueryEscape(challenge)})
	if err != nil {
		return nil, err
	}
	params := map[string]string{
		"client_id":        m.cfg.AppID,
		"response_type":    "token,signed_request",
		"redirect_uri":     fburl.RedirectURI(m.cfg.AppID),
		"display":          "touch",
		"sdk":              "go",
		"sdk_version":      Version,
		"return_scopes":    "true",
		"fbapp_pres":       boolParam(m.inspector.CanOpenScheme(fburl.ProviderAppScheme)),
		"auth_type":        "rerequest",
		"default_audience": string(m.cfg.DefaultAudience),
		"scope":            requested.Join(),
		"state":            string(state),
	}
	return fburl.BuildAuthorizationURL(m.cfg.HostPrefix, m.cfg.GraphVersion, fburl.OAuthPath, params)
}

// bridgeCompleted is the single funnel for bridge outcomes: a redirect, a
// cancellation of any flavor, or an opener failure.
func (m *Manager) bridgeCompleted(out bridge.Outcome, err error) {
	switch {
	case err != nil && bridge.IsCancellation(err):
		m.completeWithCancellation()
	case err != nil:
		m.challenges.clear()
		m.finish(nil, err)
	case out.Redirect != nil:
		m.completeAuthentication(out.Redirect)
	default:
		// Opened and came back without a redirect: the user dismissed
		// the dialog without deciding.
		m.completeWithCancellation()
	}
}

func (m *Manager) completeWithCancellation() {
	if err := m.session.fire(eventReturn); err != nil {
		return
	}
	m.challenges.clear()
	m.finish(&Result{
		Cancelled: true,
		Granted:   permissions.Set{},
		Declined:  permissions.Set{},
	}, nil)
}

// completeAuthentication validates the redirect and reconciles it into a
// terminal result. The stored challenge is consumed before any branching,
// so it can never match a second redirect.
func (m *Manager) completeAuthentication(u *url.URL) {
	if err := m.session.fire(eventReturn); err != nil {
		m.log.Debug("redirect ignored outside an attempt",
			logger.Component("login"), logger.URL(u.String()))
		return
	}

	params := fburl.ExtractParameters(u, m.cfg.AppID)
	expected := m.challenges.consume()

	completion, err := parseCompletion(params, m.now())
	if err != nil {
		m.log.Warn("login failed", logger.Component("login"), logger.Error(err))
		m.finish(nil, err)
		return
	}

	// An empty token is a cancellation regardless of the challenge: the
	// user backed out, there is nothing to protect.
	if completion.tokenString == "" {
		m.finish(&Result{
			Cancelled: true,
			Granted:   permissions.Set{},
			Declined:  permissions.Set{},
		}, nil)
		return
	}

	if expected == "" || fburl.Decode(completion.challenge) != fburl.Decode(expected) {
		m.log.Warn("challenge mismatch", logger.Component("login"),
			logger.State(completion.challenge))
		m.finish(nil, ErrBadChallenge)
		return
	}

	m.reconcile(completion)
}

// reconcile applies the permission rules and persists the credential.
// When the attempt re-requests permissions on top of an existing
// credential, the grant is narrowed to the requested set so a broad prior
// grant cannot leak into the new result.
func (m *Manager) reconcile(completion *completionParameters) {
	m.mu.Lock()
	current := m.pending
	m.mu.Unlock()
	if current == nil {
		m.finish(nil, ErrUnknown)
		return
	}

	granted := completion.granted
	if current.cachedBefore != nil && !current.requested.IsEmpty() {
		granted = granted.Intersect(current.requested)
	}
	declined := current.requested.Intersect(completion.declined)

	if granted.IsEmpty() {
		result := &Result{
			Cancelled: true,
			Granted:   permissions.Set{},
			Declined:  permissions.Set{},
		}
		if current.cachedBefore != nil {
			result.Declined = declined
		}
		m.finish(result, nil)
		return
	}

	credential := tokencache.NewCredential(
		completion.tokenString,
		m.cfg.AppID,
		completion.userID,
		granted,
		declined,
		completion.expiresAt,
		m.now(),
		completion.dataAccessExpiresAt,
	)
	m.cache.Store(credential)

	m.log.Info("login succeeded",
		logger.Component("login"),
		logger.AppID(m.cfg.AppID),
		logger.UserID(completion.userID),
	)
	m.finish(&Result{Credential: credential, Granted: granted, Declined: declined}, nil)
}

// finish delivers the terminal result exactly once and returns the
// manager to idle. Late duplicates find no pending attempt and are logged
// and dropped.
func (m *Manager) finish(result *Result, err error) {
	if m.session.Current() == StateAwaitingRedirect {
		_ = m.session.fire(eventReturn)
	}
	_ = m.session.fire(eventFinish)

	m.mu.Lock()
	current := m.pending
	m.pending = nil
	m.mu.Unlock()

	if current == nil || current.completion == nil {
		m.log.Debug("duplicate completion dropped", logger.Component("login"))
		return
	}
	current.completion(result, err)
}

func boolParam(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
