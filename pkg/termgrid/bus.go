package termgrid

import (
	"sync"
	"time"
)

// Notification is an immutable record of an engine notification, carrying
// the event name, the id of the item involved when there is one, and the
// raw detail payload.
type Notification struct {
	Name      string
	ItemID    string
	Timestamp time.Time
	Detail    map[string]any
}

// Subscription is one subscriber's handle on a Bus. Notifications arrive
// on C.
type Subscription struct {
	C  <-chan Notification
	ch chan Notification
}

// Bus fans engine notifications out to all active subscribers. It is safe
// for concurrent use, which makes it the seam between the single-goroutine
// grid and frontends running their own loops.
type Bus struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// NewBus returns an empty bus with no subscribers.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a subscriber whose channel buffers up to buf
// notifications. The subscriber drains C and calls Unsubscribe when done.
func (b *Bus) Subscribe(buf int) *Subscription {
	ch := make(chan Notification, buf)
	sub := &Subscription{C: ch, ch: ch}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Unsubscribe drops sub from the fan-out and closes its channel. Calling it
// again for the same subscription is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Publish sends a notification to all subscribers. If a subscriber's buffer
// is full the notification is dropped for that subscriber so slow consumers
// never stall the interaction loop.
func (b *Bus) Publish(n Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		select {
		case sub.ch <- n:
		default:
		}
	}
}
