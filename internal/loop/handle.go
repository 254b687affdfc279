package loop

import "sync"

// Handle owns everything a mounted component registered: its pending frame
// request and its event listeners. Stop releases all of them.
type Handle struct {
	mu      sync.Mutex
	driver  Driver
	frame   func()
	cancel  func()
	offs    []func()
	stopped bool
}

// Inert returns a handle that owns nothing, for components whose surface
// could not be acquired.
func Inert() *Handle {
	return &Handle{stopped: true}
}

// Listening returns a handle that only owns listeners. It never requests
// a frame, so it is not Active; Stop still removes what Listen added.
func Listening() *Handle {
	return &Handle{}
}

// Animate calls frame once per display frame until the handle is stopped.
func Animate(d Driver, frame func()) *Handle {
	h := &Handle{driver: d, frame: frame}
	h.schedule()
	return h
}

func (h *Handle) schedule() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.cancel = h.driver.RequestFrame(h.run)
}

func (h *Handle) run() {
	h.mu.Lock()
	stopped := h.stopped
	h.cancel = nil
	h.mu.Unlock()
	if stopped {
		return
	}
	h.frame()
	h.schedule()
}

// Listen registers fn on b; the listener is removed by Stop.
func (h *Handle) Listen(b *Bus, k Kind, fn Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.offs = append(h.offs, b.On(k, fn))
}

// Stop withdraws the pending frame and removes every listener. No frame
// callback starts after Stop returns. Call it from the loop goroutine (or
// after the loop has exited), since listeners live on a Bus. Safe to call
// more than once.
func (h *Handle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	for _, off := range h.offs {
		off()
	}
	h.offs = nil
	h.stopped = true
}

// Active reports whether the handle still drives frames.
func (h *Handle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.stopped && h.driver != nil
}

// Handles stops several handles together.
type Handles []*Handle

func (hs Handles) Stop() {
	for _, h := range hs {
		h.Stop()
	}
}
