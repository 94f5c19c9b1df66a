package bridge_test

import (
	"net/url"
	"sync"

	"github.com/mobilekit/fblogin/pkg/bridge"
)

// inline runs dispatched functions immediately; tests drive every event on
// one goroutine, so reentrancy is not a concern.
var inline = bridge.DispatcherFunc(func(fn func()) { fn() })

// recordingOpener captures direct OS-level opens.
type recordingOpener struct {
	mu     sync.Mutex
	opened []*url.URL
	err    error
}

func (o *recordingOpener) OpenURL(u *url.URL) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opened = append(o.opened, u)
	return o.err
}

func (o *recordingOpener) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.opened)
}

// fakeSession is a controllable AuthSession.
type fakeSession struct {
	mu         sync.Mutex
	startOK    bool
	started    bool
	canceled   bool
	completion func(*url.URL, error)
	// cancelCompletes mimics an OS session whose Cancel invokes the
	// completion handler with a cancellation error.
	cancelCompletes bool
}

func (s *fakeSession) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	return s.startOK
}

func (s *fakeSession) Cancel() {
	s.mu.Lock()
	s.canceled = true
	complete := s.cancelCompletes
	completion := s.completion
	s.mu.Unlock()
	if complete && completion != nil {
		completion(nil, bridge.ErrSessionCanceled)
	}
}

func (s *fakeSession) complete(redirect *url.URL, err error) {
	s.mu.Lock()
	completion := s.completion
	s.mu.Unlock()
	completion(redirect, err)
}

func (s *fakeSession) wasCanceled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canceled
}

func sessionFactory(s *fakeSession) bridge.AuthSessionFactory {
	return func(_ *url.URL, _ string, completion func(*url.URL, error)) bridge.AuthSession {
		s.mu.Lock()
		s.completion = completion
		s.mu.Unlock()
		return s
	}
}

// fakeSurface is a controllable embedded browser surface.
type fakeSurface struct {
	mu         sync.Mutex
	presented  []*url.URL
	presentErr error
	dismissed  int
	onDone     func()
	// dismissFiresDone mimics a disappearance observer that also fires for
	// programmatic teardown.
	dismissFiresDone bool
}

func (s *fakeSurface) Present(_ bridge.PresentationContext, u *url.URL, onDone func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presentErr != nil {
		return s.presentErr
	}
	s.presented = append(s.presented, u)
	s.onDone = onDone
	return nil
}

func (s *fakeSurface) Dismiss(then func()) {
	s.mu.Lock()
	s.dismissed++
	fireDone := s.dismissFiresDone
	onDone := s.onDone
	s.mu.Unlock()
	if fireDone && onDone != nil {
		onDone()
	}
	if then != nil {
		then()
	}
}

// userTapsDone simulates the user dismissing the surface via its native
// affordance.
func (s *fakeSurface) userTapsDone() {
	s.mu.Lock()
	onDone := s.onDone
	s.mu.Unlock()
	if onDone != nil {
		onDone()
	}
}

func (s *fakeSurface) dismissCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dismissed
}

// resultRecorder collects handler invocations.
type resultRecorder struct {
	mu       sync.Mutex
	outcomes []bridge.Outcome
	errs     []error
}

func (r *resultRecorder) handler() bridge.Handler {
	return func(out bridge.Outcome, err error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.outcomes = append(r.outcomes, out)
		r.errs = append(r.errs, err)
	}
}

func (r *resultRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.outcomes)
}

func (r *resultRecorder) last() (bridge.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.outcomes) == 0 {
		return bridge.Outcome{}, nil
	}
	return r.outcomes[len(r.outcomes)-1], r.errs[len(r.errs)-1]
}
