package signals

// Bus delivers events synchronously to subscribers.
//
// Architecture:
//   - Single-threaded, owned by the simulation root
//   - Handlers run in registration order
//   - Dispatch is re-entrant: a handler that publishes recurses immediately
//   - Subscribing or releasing during a publish affects later publishes only
type Bus struct {
	handlers map[Kind][]handlerEntry
	nextID   uint64
}

type handlerEntry struct {
	id uint64
	fn func(Event)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Kind][]handlerEntry),
	}
}

// Subscription is the handle returned by Subscribe.
// Release it when the subscriber is torn down.
type Subscription struct {
	bus  *Bus
	kind Kind
	id   uint64
}

// Release removes the handler from the bus. Safe to call more than once.
func (s *Subscription) Release() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.kind, s.id)
	s.bus = nil
}

// Subscribe registers a typed handler for events of type E.
func Subscribe[E Event](b *Bus, fn func(E)) *Subscription {
	var zero E
	kind := zero.Kind()
	return b.subscribe(kind, func(ev Event) {
		if e, ok := ev.(E); ok {
			fn(e)
		}
	})
}

// SubscribeAll registers a handler for every kind, e.g. for debug logging.
// Returns one subscription per kind.
func (b *Bus) SubscribeAll(fn func(Event)) []*Subscription {
	subs := make([]*Subscription, 0, int(KindRunEnd)+1)
	for k := KindFuelEmpty; k <= KindRunEnd; k++ {
		subs = append(subs, b.subscribe(k, fn))
	}
	return subs
}

func (b *Bus) subscribe(kind Kind, fn func(Event)) *Subscription {
	b.nextID++
	id := b.nextID
	b.handlers[kind] = append(b.handlers[kind], handlerEntry{id: id, fn: fn})
	return &Subscription{bus: b, kind: kind, id: id}
}

func (b *Bus) remove(kind Kind, id uint64) {
	entries := b.handlers[kind]
	for i, e := range entries {
		if e.id == id {
			// Copy instead of shifting in place so an in-flight Publish
			// iterating the old slice is not disturbed.
			next := make([]handlerEntry, 0, len(entries)-1)
			next = append(next, entries[:i]...)
			next = append(next, entries[i+1:]...)
			b.handlers[kind] = next
			return
		}
	}
}

// Publish delivers ev to every handler registered for its kind.
// A nil bus drops the event.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	entries := b.handlers[ev.Kind()]
	for _, e := range entries {
		e.fn(ev)
	}
}

// Count returns the number of handlers registered for kind.
func (b *Bus) Count(kind Kind) int {
	return len(b.handlers[kind])
}

// Releaser groups subscriptions for bulk teardown.
type Releaser []*Subscription

// Add appends subscriptions to the group.
func (r *Releaser) Add(subs ...*Subscription) {
	*r = append(*r, subs...)
}

// Release releases every subscription in the group and empties it.
func (r *Releaser) Release() {
	for _, s := range *r {
		s.Release()
	}
	*r = (*r)[:0]
}
