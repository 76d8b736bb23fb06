// Package store holds the canonical in-memory booking collection. Responses
// from the backend replace it wholesale; confirmed mutations replace single
// records keyed by id, so concurrent updates to different bookings cannot
// clobber each other.
package store

import (
	"frontdesk/internal/domains/booking/model"
	"sync"
)

type Store struct {
	mu       sync.RWMutex
	bookings map[string]model.Booking
	order    []string
}

func New() *Store {
	return &Store{
		bookings: make(map[string]model.Booking),
	}
}

// ReplaceAll swaps the whole collection for a fresh backend snapshot,
// preserving the snapshot's order.
func (s *Store) ReplaceAll(bookings []model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[string]model.Booking, len(bookings))
	s.order = make([]string, 0, len(bookings))

	for _, b := range bookings {
		if _, seen := s.bookings[b.ID]; !seen {
			s.order = append(s.order, b.ID)
		}

		s.bookings[b.ID] = b
	}
}

// All returns the collection in its stored order.
func (s *Store) All() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]model.Booking, 0, len(s.order))
	for _, id := range s.order {
		res = append(res, s.bookings[id])
	}

	return res
}

// Get returns the booking for the id, if present.
func (s *Store) Get(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]

	return b, ok
}

// Update replaces a single record in place. Unknown ids are ignored: a
// mutation can only land on a booking the collection already knows.
func (s *Store) Update(booking model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[booking.ID]; !ok {
		return
	}

	s.bookings[booking.ID] = booking
}

// Len returns the number of stored bookings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookings)
}

// Empty reports whether the collection has been loaded yet.
func (s *Store) Empty() bool {
	return s.Len() == 0
}
