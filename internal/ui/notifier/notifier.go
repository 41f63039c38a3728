// Package notifier fans out reload signals from the file watcher to every
// connected browser.
package notifier

import "sync"

// Notifier delivers reload pings to subscribers. A ping carries no payload;
// a subscriber that receives one reloads the page.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan struct{}]struct{}
}

// New creates a Notifier with no subscribers.
func New() *Notifier {
	return &Notifier{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a subscriber. The returned cancel func removes it and
// closes the channel; it is safe to call more than once.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Broadcast pings every subscriber and reports how many received a new ping.
// It never blocks: a subscriber with a pending ping is skipped, since one
// reload covers both changes.
func (n *Notifier) Broadcast() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	delivered := 0
	for ch := range n.subs {
		select {
		case ch <- struct{}{}:
			delivered++
		default:
		}
	}
	return delivered
}

// Len returns the number of current subscribers.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
