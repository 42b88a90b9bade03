package backend

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/clock"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/pkg/ptr"

	"github.com/jinzhu/copier"
)

// Memory is an in-process backend used when no BACKEND_URL is configured and
// in tests. It answers like the REST backend, including APIError on misses.
type Memory struct {
	mu           sync.Mutex
	arrangements []reservation.Arrangement
	statuses     map[string][]reservation.Status
	reservations []reservation.Reservation
	nextID       int
	defaultState int
}

func DefaultStatuses() []reservation.Status {
	return []reservation.Status{
		{StatusID: 1, StatusName: "Na čekanju", StatusCode: "term_pending"},
		{StatusID: 2, StatusName: "Potvrđeno", StatusCode: "term_confirmed"},
		{StatusID: 3, StatusName: "Otkazano", StatusCode: reservation.CanceledStatusCode},
	}
}

func DefaultArrangements() []reservation.Arrangement {
	return []reservation.Arrangement{
		{ID: 1, Value: "Masaža"},
		{ID: 2, Value: "Manikir"},
		{ID: 3, Value: "Pedikir"},
	}
}

func NewMemory(statusDomain string, arrangements []reservation.Arrangement, statuses []reservation.Status) *Memory {
	m := &Memory{
		arrangements: slices.Clone(arrangements),
		statuses:     map[string][]reservation.Status{statusDomain: slices.Clone(statuses)},
		nextID:       1,
	}
	if len(statuses) > 0 {
		m.defaultState = statuses[0].StatusID
	}
	return m
}

// NewSeededMemory returns a memory backend with the default lookups and a few
// reservations on the current day.
func NewSeededMemory(statusDomain string, c clock.Clock) *Memory {
	m := NewMemory(statusDomain, DefaultArrangements(), DefaultStatuses())
	day := clock.StartOfDay(c)
	for i, hour := range []int{9, 11, 14} {
		m.insert(reservation.CreateCommand{
			ArrangementID:   m.arrangements[i].ID,
			StartDate:       reservation.NewLocalTime(day.Add(time.Duration(hour) * time.Hour)),
			DurationMinutes: 60,
		})
	}
	return m
}

func (m *Memory) GetArrangementsList(ctx context.Context) ([]reservation.Arrangement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.arrangements), nil
}

func (m *Memory) GetStatusList(ctx context.Context, domain string) ([]reservation.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, ok := m.statuses[domain]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: "Nepoznata domena statusa"}
	}
	return slices.Clone(list), nil
}

func (m *Memory) GetReservationsList(ctx context.Context) ([]reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return reservation.CloneAll(m.reservations), nil
}

func (m *Memory) AddReservation(ctx context.Context, cmd reservation.CreateCommand) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.arrangementName(cmd.ArrangementID); !ok {
		return &APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Aranžman ne postoji"}
	}
	if cmd.DurationMinutes <= 0 || cmd.StartDate.IsZero() {
		return &APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Neispravan termin"}
	}
	if err := m.insert(cmd); err != nil {
		return errs.Wrap(err, "failed to store reservation")
	}
	return nil
}

func (m *Memory) EditReservation(ctx context.Context, cmd reservation.EditCommand) (reservation.EditResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(cmd.ReservationID)
	if i < 0 {
		return reservation.EditResult{}, &APIError{StatusCode: http.StatusNotFound, Message: "Rezervacija ne postoji"}
	}
	status, ok := m.status(cmd.StatusID)
	if !ok {
		return reservation.EditResult{}, &APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Status ne postoji"}
	}

	note := noteValue(cmd.Note)
	r := &m.reservations[i]
	r.StatusID = status.StatusID
	r.StatusName = status.StatusName
	r.Note = note

	return reservation.EditResult{Data: reservation.Partial{
		StatusID:   ptr.Of(status.StatusID),
		StatusName: ptr.Of(status.StatusName),
		NoteSet:    true,
		Note:       ptr.Clone(note),
	}}, nil
}

func (m *Memory) DeleteReservation(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return &APIError{StatusCode: http.StatusNotFound, Message: "Rezervacija ne postoji"}
	}
	m.reservations = slices.Delete(m.reservations, i, i+1)
	return nil
}

// insert assumes m.mu is held or m is not yet shared.
func (m *Memory) insert(cmd reservation.CreateCommand) error {
	var r reservation.Reservation
	if err := copier.Copy(&r, &cmd); err != nil {
		return err
	}
	r.ReservationID = m.nextID
	r.Note = noteValue(cmd.Note)
	r.ArrangementName, _ = m.arrangementName(cmd.ArrangementID)
	if status, ok := m.status(m.defaultState); ok {
		r.StatusID = status.StatusID
		r.StatusName = status.StatusName
	}
	m.nextID++

	m.reservations = append(m.reservations, r)
	slices.SortStableFunc(m.reservations, func(a, b reservation.Reservation) int {
		return a.StartDate.Time().Compare(b.StartDate.Time())
	})
	return nil
}

func (m *Memory) indexOf(id int) int {
	return slices.IndexFunc(m.reservations, func(r reservation.Reservation) bool {
		return r.ReservationID == id
	})
}

func (m *Memory) arrangementName(id int) (string, bool) {
	for _, a := range m.arrangements {
		if a.ID == id {
			return a.Value, true
		}
	}
	return "", false
}

func (m *Memory) status(id int) (reservation.Status, bool) {
	for _, list := range m.statuses {
		for _, s := range list {
			if s.StatusID == id {
				return s, true
			}
		}
	}
	return reservation.Status{}, false
}

func noteValue(note string) *string {
	if note == "" {
		return nil
	}
	return ptr.Of(note)
}
