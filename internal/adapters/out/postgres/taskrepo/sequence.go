package taskrepo

import (
	"sync"
	"time"
)

// sequence hands out strictly increasing values seeded from the wall clock
// in nanoseconds. Tasks and photos are listed by it, so rows written in the
// same instant keep their insertion order and a restarted process continues
// above the values it wrote before.
type sequence struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

var rowSequence = &sequence{now: time.Now}

func (s *sequence) next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.now().UnixNano()
	if v <= s.last {
		v = s.last + 1
	}
	s.last = v
	return v
}
