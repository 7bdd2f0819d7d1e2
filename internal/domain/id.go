package domain

import (
	"sync"
	"time"
)

// IDSource hands out time-based record ids: unix milliseconds, bumped by one
// whenever the clock has not moved since the previous call. Ids are strictly
// increasing and never reused, even when records are soft-deleted.
type IDSource struct {
	mu   sync.Mutex
	last int64
}

func NewIDSource() *IDSource {
	return &IDSource{}
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id

	return id
}

// Seed raises the floor so that generated ids never collide with ids already
// present in fixture data.
func (s *IDSource) Seed(maxExisting int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxExisting > s.last {
		s.last = maxExisting
	}
}
