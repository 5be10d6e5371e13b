package watcher

import (
	"sync"
	"time"
)

const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer runs only the last callback triggered within its duration.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mux      sync.Mutex
	seq      uint64
}

func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{
		duration: duration,
	}
}

func (s *Debouncer) Trigger(callback func()) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.duration, func() {
		s.mux.Lock()
		// A timer that fired while being replaced must not run
		latest := seq == s.seq
		if latest {
			s.timer = nil
		}
		s.mux.Unlock()

		if latest {
			callback()
		}
	})
}

func (s *Debouncer) Cancel() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Debouncer) Duration() time.Duration {
	return s.duration
}
