package reservation

import (
	"strconv"
	"time"

	"reservation-calendar/internal/pkg/ptr"
)

// Reservation is the overview form the calendar renders. Identity is
// ReservationID; everything else may be replaced by a refetch or merged by a
// Partial after an edit.
type Reservation struct {
	ReservationID   int       `json:"reservationId"`
	StartDate       LocalTime `json:"startDate"`
	DurationMinutes int       `json:"durationMinutes"`
	StatusID        int       `json:"statusId"`
	StatusName      string    `json:"statusName,omitempty"`
	Note            *string   `json:"note"`
	ArrangementID   int       `json:"arrangementId"`
	ArrangementName string    `json:"arrangementName,omitempty"`
}

func (r Reservation) End() LocalTime {
	return r.StartDate.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

func (r Reservation) NoteText() string {
	return ptr.Deref(r.Note)
}

func (r Reservation) Title() string {
	if r.ArrangementName != "" {
		return r.ArrangementName
	}
	return "Rezervacija #" + strconv.Itoa(r.ReservationID)
}

// Clone copies the record without sharing the note pointer.
func (r Reservation) Clone() Reservation {
	r.Note = ptr.Clone(r.Note)
	return r
}

func CloneAll(list []Reservation) []Reservation {
	out := make([]Reservation, len(list))
	for i, r := range list {
		out[i] = r.Clone()
	}
	return out
}
