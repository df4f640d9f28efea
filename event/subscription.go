// Package event is a small generic publish/subscribe mechanism: register
// interest in a stream of values once, receive them on a buffered channel,
// detach with Close. It underpins fan-out of pause notifications to the UI
// and webserver without either knowing about the other.
package event

import "sync"

// Subscription is one detachable listener on a Manager's stream.
type Subscription[T any] struct {
	C       chan T
	closer  sync.Once
	manager *Manager[T]
}

// Close detaches the subscription and closes its channel. Safe to call more
// than once.
func (s *Subscription[T]) Close() {
	s.closer.Do(func() {
		s.manager.remove(s)
		close(s.C)
	})
}
