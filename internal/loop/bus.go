// Package loop is the single-threaded frame and event scheduler shared by
// every host. Component state is only touched from callbacks dispatched
// here, so no locking is needed inside components.
package loop

import "sort"

// Kind identifies an input event.
type Kind int

const (
	PointerMove Kind = iota
	PointerDown
	PointerUp
	PointerLeave
	Click
	Resize
	// Wheel carries scroll deltas in X and Y.
	Wheel
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case PointerLeave:
		return "pointer-leave"
	case Click:
		return "click"
	case Resize:
		return "resize"
	case Wheel:
		return "wheel"
	}
	return "unknown"
}

// Event is a host input event in logical pixels.
type Event struct {
	Kind Kind
	X, Y float64
	// Resize only.
	W, H int
	DPR  float64
}

type Listener func(Event)

// Bus dispatches events synchronously to registered listeners, in
// registration order. It is not safe for concurrent use; hosts emit from
// their loop goroutine.
type Bus struct {
	next      int
	listeners map[Kind]map[int]Listener
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[Kind]map[int]Listener)}
}

// On registers fn for events of kind k and returns its deregistration.
// Calling off more than once is harmless.
func (b *Bus) On(k Kind, fn Listener) (off func()) {
	b.next++
	id := b.next
	m := b.listeners[k]
	if m == nil {
		m = make(map[int]Listener)
		b.listeners[k] = m
	}
	m[id] = fn
	return func() { delete(b.listeners[k], id) }
}

func (b *Bus) Emit(ev Event) {
	m := b.listeners[ev.Kind]
	if len(m) == 0 {
		return
	}
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := m[id]; ok {
			fn(ev)
		}
	}
}

// Len returns the number of registered listeners across all kinds.
func (b *Bus) Len() int {
	n := 0
	for _, m := range b.listeners {
		n += len(m)
	}
	return n
}
