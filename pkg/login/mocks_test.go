package login

import (
	"net/url"
	"sync"

	"github.com/mobilekit/fblogin/pkg/bridge"
)

var _ BrowserBridge = (*fakeBridge)(nil)

// fakeBridge records opened URLs and lets tests drive outcomes by hand.
type fakeBridge struct {
	mu      sync.Mutex
	opened  []*url.URL
	handler bridge.Handler
	cancels int
}

func (b *fakeBridge) Open(u *url.URL, _ bridge.PresentationContext, handler bridge.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opened = append(b.opened, u)
	b.handler = handler
}

func (b *fakeBridge) HandleReentry(u *url.URL) bool {
	b.mu.Lock()
	handler := b.handler
	b.handler = nil
	b.mu.Unlock()
	if handler == nil {
		return false
	}
	handler(bridge.Outcome{Opened: true, Redirect: u}, nil)
	return true
}

func (b *fakeBridge) Cancel() {
	b.mu.Lock()
	handler := b.handler
	b.handler = nil
	b.cancels++
	b.mu.Unlock()
	if handler != nil {
		handler(bridge.Outcome{}, bridge.ErrCanceled)
	}
}

func (b *fakeBridge) lastOpened() *url.URL {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.opened) == 0 {
		return nil
	}
	return b.opened[len(b.opened)-1]
}

// complete simulates the bridge finishing without a redirect, the shape a
// dismissed dialog produces.
func (b *fakeBridge) complete(out bridge.Outcome, err error) {
	b.mu.Lock()
	handler := b.handler
	b.handler = nil
	b.mu.Unlock()
	if handler != nil {
		handler(out, err)
	}
}
