package mem

import (
	"sync"
	"time"
)

// ListCache is a small read-through TTL cache for reference data that
// changes rarely, like the catalog's distinct country list.
type ListCache interface {
	Set(key string, values []string, ttl time.Duration)
	Get(key string) ([]string, bool)
}

type entry struct {
	values    []string
	expiresAt time.Time
}

type TTLCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewTTLCache() *TTLCache {
	return &TTLCache{
		data: make(map[string]entry),
	}
}

func (s *TTLCache) Set(key string, values []string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		values:    values,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *TTLCache) Get(key string) ([]string, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.values, true
}
