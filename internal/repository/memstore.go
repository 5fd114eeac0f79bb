package repository

import (
	"sync"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/sharding"
)

const defaultStripes = 32

// MemStore is a concurrency-safe in-memory keyed collection. A read-write
// mutex guards the map itself; write serialization per key goes through
// striped locks so concurrent writers on different keys do not block each
// other while read-modify-write on one key stays mutually exclusive.
//
// Iteration order is insertion order, which keeps pagination stable when
// no sort is requested. Overwriting an existing key keeps its position.
type MemStore[K comparable, V any] struct {
	mu     sync.RWMutex
	items  map[K]V
	order  []K
	router *sharding.StripeRouter
	locks  []sync.Mutex
}

func NewMemStore[K comparable, V any]() *MemStore[K, V] {
	return &MemStore[K, V]{
		items:  make(map[K]V),
		router: sharding.NewStripeRouter(defaultStripes),
		locks:  make([]sync.Mutex, defaultStripes),
	}
}

func (s *MemStore[K, V]) lockKey(key K) *sync.Mutex {
	return &s.locks[s.router.GetStripe(key)]
}

// Get returns the value stored under key.
func (s *MemStore[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// Put stores value under key, overwriting any previous value.
func (s *MemStore[K, V]) Put(key K, value V) {
	l := s.lockKey(key)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[key]; !exists {
		s.order = append(s.order, key)
	}
	s.items[key] = value
}

// Update applies fn to the value under key as one logical write. It
// returns false and does not call fn when the key is absent.
func (s *MemStore[K, V]) Update(key K, fn func(V) V) (V, bool) {
	l := s.lockKey(key)
	l.Lock()
	defer l.Unlock()

	s.mu.RLock()
	current, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}

	next := fn(current)

	s.mu.Lock()
	s.items[key] = next
	s.mu.Unlock()
	return next, true
}

// Snapshot copies all values in insertion order.
func (s *MemStore[K, V]) Snapshot() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]V, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

func (s *MemStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
