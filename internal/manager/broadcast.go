package manager

import "sync"

// Broadcaster fans changes out to subscribers. A subscriber that falls
// behind loses its oldest buffered change rather than blocking Publish.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	closed bool
}

type subscriber struct {
	ch chan Change
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a subscriber with a buffer of n changes. The returned
// cancel func unregisters it and closes the channel; it is idempotent.
func (b *Broadcaster) Subscribe(n int) (<-chan Change, func()) {
	if n <= 0 {
		n = 1
	}
	s := &subscriber{ch: make(chan Change, n)}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[s]; ok {
				delete(b.subs, s)
				close(s.ch)
			}
			b.mu.Unlock()
		})
	}
}

// Publish delivers c to every subscriber without blocking.
func (b *Broadcaster) Publish(c Change) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for s := range b.subs {
		select {
		case s.ch <- c:
		default:
			// Full: drop the oldest. Publish is the only sender.
			select {
			case <-s.ch:
			default:
			}
			select {
			case s.ch <- c:
			default:
			}
		}
	}
}

// Len returns the number of live subscribers.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes every subscriber channel; later subscribers get a closed channel.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		close(s.ch)
		delete(b.subs, s)
	}
}
