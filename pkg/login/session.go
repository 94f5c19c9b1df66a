package login

import (
	"fmt"
	"sync"
)

// State identifies where a login attempt is in its lifecycle.
type State string

const (
	// StateIdle means no attempt is active; Login may be called.
	StateIdle State = "idle"
	// StateAwaitingRedirect means the authorization URL has been handed to
	// the browser and the manager is waiting for the redirect.
	StateAwaitingRedirect State = "awaiting_redirect"
	// StateReconciling means a redirect or cancellation arrived and its
	// result is being computed.
	StateReconciling State = "reconciling"
)

type sessionEvent string

const (
	eventStart  sessionEvent = "start"
	eventReturn sessionEvent = "return"
	eventFinish sessionEvent = "finish"
)

var sessionTransitions = map[State]map[sessionEvent]State{
	StateIdle:             {eventStart: StateAwaitingRedirect},
	StateAwaitingRedirect: {eventReturn: StateReconciling},
	StateReconciling:      {eventFinish: StateIdle},
}

// sessionMachine is a fixed-transition-table state machine guarding the
// single-attempt invariant. Fire is atomic, so a successful eventStart also
// acts as the mutual exclusion point between concurrent Login calls.
type sessionMachine struct {
	mu      sync.Mutex
	current State
}

func newSessionMachine() *sessionMachine {
	return &sessionMachine{current: StateIdle}
}

func (m *sessionMachine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *sessionMachine) fire(event sessionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, ok := sessionTransitions[m.current][event]
	if !ok {
		return fmt.Errorf("no transition from %q on %q", m.current, event)
	}
	m.current = next
	return nil
}
