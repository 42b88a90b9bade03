package readstore

import (
	"slices"
	"sync"

	"reservation-calendar/internal/domain/reservation"
)

// Listener receives the store contents after every mutation.
type Listener func(snapshot []reservation.Reservation)

type ReservationReader interface {
	Snapshot() []reservation.Reservation
	Get(id int) (reservation.Reservation, bool)
	Len() int
	Subscribe(l Listener) (unsubscribe func())
}

type ReservationWriter interface {
	ReplaceAll(list []reservation.Reservation)
	PatchOne(id int, p reservation.Partial) bool
}

type ReservationStore interface {
	ReservationReader
	ReservationWriter
}

type reservationStoreImpl struct {
	mu        sync.RWMutex
	items     []reservation.Reservation
	index     map[int]int
	listeners map[int]Listener
	nextID    int
}

func NewReservationStore() ReservationStore {
	return &reservationStoreImpl{
		index:     make(map[int]int),
		listeners: make(map[int]Listener),
	}
}

// ReplaceAll drops every known record and keeps list in its given order.
func (s *reservationStoreImpl) ReplaceAll(list []reservation.Reservation) {
	s.mu.Lock()
	s.items = reservation.CloneAll(list)
	s.index = make(map[int]int, len(s.items))
	for i, r := range s.items {
		s.index[r.ReservationID] = i
	}
	snapshot, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
}

// PatchOne merges p into the record with id. Unknown ids are ignored: nothing
// is inserted and listeners are not called.
func (s *reservationStoreImpl) PatchOne(id int, p reservation.Partial) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.items[i] = s.items[i].Merge(p)
	snapshot, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
	return true
}

func (s *reservationStoreImpl) Snapshot() []reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *reservationStoreImpl) Get(id int) (reservation.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return reservation.Reservation{}, false
	}
	return s.items[i].Clone(), true
}

func (s *reservationStoreImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *reservationStoreImpl) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *reservationStoreImpl) snapshotLocked() []reservation.Reservation {
	return reservation.CloneAll(s.items)
}

// listeners run outside the lock so they may read the store again
func (s *reservationStoreImpl) listenersLocked() []Listener {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]Listener, len(ids))
	for i, id := range ids {
		out[i] = s.listeners[id]
	}
	return out
}

func notify(listeners []Listener, snapshot []reservation.Reservation) {
	for _, l := range listeners {
		l(reservation.CloneAll(snapshot))
	}
}
