package engine

import "fmt"

// Schedulable is anything that takes turns: actors, and timed hazards that
// are not actors.
type Schedulable interface {
	// OnTurn resolves one turn. The only error it may return besides a
	// Frontend failure is a cancellation (see Cancel).
	OnTurn(w *World) error
	// ConsumeSkip decrements a pending forced skip and reports whether
	// there was one.
	ConsumeSkip() bool
}

// Schedule is the round-robin turn queue. The front entry is the one whose
// turn is being resolved.
type Schedule struct {
	queue []Schedulable
}

// Len is the number of scheduled entries.
func (s *Schedule) Len() int { return len(s.queue) }

// Front returns the entry whose turn is next, or nil.
func (s *Schedule) Front() Schedulable {
	if len(s.queue) == 0 {
		return nil
	}
	return s.queue[0]
}

// Rotate moves the front entry to the back.
func (s *Schedule) Rotate() {
	if len(s.queue) < 2 {
		return
	}
	front := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue[len(s.queue)-1] = front
}

// PushBack enqueues e. Scheduling the same entry twice is a bug.
func (s *Schedule) PushBack(e Schedulable) {
	if s.Contains(e) {
		panic(fmt.Sprintf("engine: %T is already scheduled", e))
	}
	s.queue = append(s.queue, e)
}

// Remove drops e, reporting whether it was scheduled.
func (s *Schedule) Remove(e Schedulable) bool {
	for i, q := range s.queue {
		if q == e {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether e is scheduled.
func (s *Schedule) Contains(e Schedulable) bool {
	for _, q := range s.queue {
		if q == e {
			return true
		}
	}
	return false
}

// Entries returns the queue in turn order.
func (s *Schedule) Entries() []Schedulable {
	return append([]Schedulable(nil), s.queue...)
}
