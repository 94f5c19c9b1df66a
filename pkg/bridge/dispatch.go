package bridge

import "sync"

// Dispatcher serializes bridge work onto the host's UI-owning execution
// context. Functions handed to Dispatch must run in order, one at a time.
// Hosts should defer execution to a later turn of their event loop; an
// inline implementation is acceptable only where reentrancy cannot occur,
// such as tests.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// SerialDispatcher runs dispatched functions in submission order on a single
// background goroutine that lives only while the queue is non-empty. It is
// the default execution context when the host does not provide one.
type SerialDispatcher struct {
	mu      sync.Mutex
	queue   []func()
	running bool
}

func NewSerialDispatcher() *SerialDispatcher {
	return &SerialDispatcher{}
}

func (d *SerialDispatcher) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	go d.drain()
}

func (d *SerialDispatcher) drain() {
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.running = false
			d.mu.Unlock()
			return
		}
		fn := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		fn()
	}
}
