package wizard

import "sync"

// Dispatcher holds a single handler slot. Installing a handler replaces the
// previous one, and once replaced the previous handler never runs again,
// even through a reference captured before the swap.
//
// Calls and installs are serialized, so a handler must not Install, Dispatch
// or Call on the Dispatcher that is running it. Current and Release are safe
// from inside a handler; Release does not wait for a call already running.
type Dispatcher[T any] struct {
	// callMu serializes handler calls with Install
	callMu  sync.Mutex
	mu      sync.Mutex
	gen     uint64
	handler func(T)
}

// Registration identifies one installed handler
type Registration[T any] struct {
	d   *Dispatcher[T]
	gen uint64
}

// Install makes h the current handler. A nil h empties the slot.
func (d *Dispatcher[T]) Install(h func(T)) *Registration[T] {
	d.callMu.Lock()
	defer d.callMu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	d.handler = h
	return &Registration[T]{d: d, gen: d.gen}
}

// Dispatch calls whatever handler is current at call time and reports
// whether one ran
func (d *Dispatcher[T]) Dispatch(v T) bool {
	d.callMu.Lock()
	defer d.callMu.Unlock()

	h := d.current(0)
	if h == nil {
		return false
	}
	h(v)
	return true
}

// current returns the installed handler, or nil when the slot is empty or
// gen is set and no longer current
func (d *Dispatcher[T]) current(gen uint64) func(T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != 0 && gen != d.gen {
		return nil
	}
	return d.handler
}

// Current reports whether r is still the installed handler
func (r *Registration[T]) Current() bool {
	return r.d.current(r.gen) != nil
}

// Call runs the handler only if r is still current. A superseded
// registration is a no-op.
func (r *Registration[T]) Call(v T) bool {
	r.d.callMu.Lock()
	defer r.d.callMu.Unlock()

	h := r.d.current(r.gen)
	if h == nil {
		return false
	}
	h(v)
	return true
}

// Release empties the slot if r is still current
func (r *Registration[T]) Release() {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if r.gen == r.d.gen {
		r.d.handler = nil
	}
}
