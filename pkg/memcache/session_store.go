// pkg/memcache/session_store.go
package mem

import (
	"sync"
	"time"
)

type SessionStore[T any] interface {
	Set(id string, value T)

	// Get returns the value for id if not expired and extends its lifetime.
	Get(id string) (T, bool)

	Delete(id string)

	Len() int
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// TTLStore keeps values in memory with a sliding expiry. Expired entries are
// dropped lazily on access and by the janitor, when started.
type TTLStore[T any] struct {
	mu   sync.RWMutex
	data map[string]entry[T]
	ttl  time.Duration
	now  func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewTTLStore[T any](ttl time.Duration) *TTLStore[T] {
	return NewTTLStoreWithClock[T](ttl, time.Now)
}

func NewTTLStoreWithClock[T any](ttl time.Duration, now func() time.Time) *TTLStore[T] {
	return &TTLStore[T]{
		data: make(map[string]entry[T]),
		ttl:  ttl,
		now:  now,
		stop: make(chan struct{}),
	}
}

func (s *TTLStore[T]) Set(id string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry[T]{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
}

func (s *TTLStore[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	e, ok := s.data[id]
	if !ok {
		return zero, false
	}
	now := s.now()
	if now.After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return zero, false
	}
	e.expiresAt = now.Add(s.ttl)
	s.data[id] = e
	return e.value, true
}

func (s *TTLStore[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *TTLStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep removes expired entries and returns how many were dropped.
func (s *TTLStore[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps every interval until Stop is called.
func (s *TTLStore[T]) StartJanitor(interval time.Duration) {
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *TTLStore[T]) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.done != nil {
		<-s.done
	}
}
