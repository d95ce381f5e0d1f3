// Package state keeps what the bot is waiting for in each chat between
// messages.
package state

import (
	"sync"
	"time"
)

type Kind int

const (
	None Kind = iota
	PickShiftDate
	WaitShift
	WaitSalary
	PickScheduleStart
	PickScheduleWeeks
	WaitScheduleDay
)

type Pending struct {
	Kind Kind
	Date time.Time
	// Day is the weekday being edited, 0 for Monday.
	Day int
}

type Store struct {
	mu sync.Mutex
	m  map[int64]Pending
}

func New() *Store {
	return &Store{m: make(map[int64]Pending)}
}

func (s *Store) Set(chatID int64, p Pending) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[chatID] = p
}

func (s *Store) Get(chatID int64) Pending {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[chatID]
}

func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}

// Take returns and clears the pending input for chatID if it is of kind k.
func (s *Store) Take(chatID int64, k Kind) (Pending, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[chatID]
	if !ok || p.Kind != k {
		return Pending{}, false
	}
	delete(s.m, chatID)
	return p, true
}
