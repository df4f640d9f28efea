package event

import "sync"

const subscriptionBuffer = 10

// Manager fans values out to any number of subscribers. Publish never
// blocks: a subscriber that has fallen behind misses values.
type Manager[T any] struct {
	mu          sync.Mutex
	subscribers map[*Subscription[T]]struct{}
}

func NewManager[T any]() *Manager[T] {
	return &Manager[T]{
		subscribers: make(map[*Subscription[T]]struct{}),
	}
}

// Subscribe registers a new listener. The caller owns the returned
// subscription and must Close it when done.
func (m *Manager[T]) Subscribe() *Subscription[T] {
	sub := &Subscription[T]{
		C:       make(chan T, subscriptionBuffer),
		manager: m,
	}
	m.mu.Lock()
	m.subscribers[sub] = struct{}{}
	m.mu.Unlock()
	return sub
}

// Publish delivers t to every current subscriber, dropping it for any whose
// buffer is full.
func (m *Manager[T]) Publish(t T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for sub := range m.subscribers {
		select {
		case sub.C <- t:
		default:
			// slow subscriber, drop
		}
	}
}

func (m *Manager[T]) remove(s *Subscription[T]) {
	m.mu.Lock()
	delete(m.subscribers, s)
	m.mu.Unlock()
}
