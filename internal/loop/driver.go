package loop

import (
	"context"
	"sync"
	"time"
)

// Driver schedules a callback for the next display frame, like the
// browser's requestAnimationFrame. The returned cancel withdraws it.
type Driver interface {
	RequestFrame(fn func()) (cancel func())
}

type request struct {
	id uint64
	fn func()
}

// queue holds pending frame requests in request order.
type queue struct {
	mu      sync.Mutex
	next    uint64
	pending []request
}

func (q *queue) add(fn func()) func() {
	q.mu.Lock()
	q.next++
	id := q.next
	q.pending = append(q.pending, request{id: id, fn: fn})
	q.mu.Unlock()
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		for i, r := range q.pending {
			if r.id == id {
				q.pending = append(q.pending[:i], q.pending[i+1:]...)
				return
			}
		}
	}
}

// take removes and returns everything requested so far. Requests made by
// the returned callbacks land in the next frame.
func (q *queue) take() []request {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Manual is pumped by its host once per display refresh. Ebiten's Update
// and tests use it.
type Manual struct {
	q      queue
	frames int64
}

func (m *Manual) RequestFrame(fn func()) func() { return m.q.add(fn) }

// Tick runs every callback requested before the call and returns how many ran.
func (m *Manual) Tick() int {
	reqs := m.q.take()
	for _, r := range reqs {
		r.fn()
	}
	m.frames++
	return len(reqs)
}

// Pending returns the number of outstanding frame requests.
func (m *Manual) Pending() int { return m.q.len() }

func (m *Manual) Frames() int64 { return m.frames }

// Ticker runs frames from a time.Ticker on one goroutine and serialises
// posted events onto the same goroutine, so event callbacks always finish
// before the next frame reads their state.
type Ticker struct {
	interval time.Duration
	bus      *Bus
	events   chan Event
	q        queue
}

func NewTicker(interval time.Duration, bus *Bus) *Ticker {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Ticker{
		interval: interval,
		bus:      bus,
		events:   make(chan Event, 64),
	}
}

func (t *Ticker) RequestFrame(fn func()) func() { return t.q.add(fn) }

// Post queues ev for dispatch on the loop goroutine. It is safe to call
// from any goroutine and drops the event if ctx is done.
func (t *Ticker) Post(ctx context.Context, ev Event) {
	select {
	case t.events <- ev:
	case <-ctx.Done():
	}
}

// Run blocks, dispatching events and frames until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context) error {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-t.events:
			t.bus.Emit(ev)
		case <-tick.C:
			for _, r := range t.q.take() {
				r.fn()
			}
		}
	}
}
