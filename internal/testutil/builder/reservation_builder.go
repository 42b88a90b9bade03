//go:build unit

package builder

import (
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/ptr"
)

var BaseTime = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	r reservation.Reservation
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		r: reservation.Reservation{
			ReservationID:   1,
			StartDate:       reservation.NewLocalTime(BaseTime),
			DurationMinutes: 60,
			StatusID:        1,
			StatusName:      "Na čekanju",
			Note:            ptr.Of("Prvi dolazak"),
			ArrangementID:   1,
			ArrangementName: "Masaža",
		},
	}
}

func (b *ReservationBuilder) WithID(id int) *ReservationBuilder {
	b.r.ReservationID = id
	return b
}

func (b *ReservationBuilder) WithStart(t time.Time) *ReservationBuilder {
	b.r.StartDate = reservation.NewLocalTime(t)
	return b
}

func (b *ReservationBuilder) WithDuration(minutes int) *ReservationBuilder {
	b.r.DurationMinutes = minutes
	return b
}

func (b *ReservationBuilder) WithStatus(id int, name string) *ReservationBuilder {
	b.r.StatusID = id
	b.r.StatusName = name
	return b
}

func (b *ReservationBuilder) WithNote(note *string) *ReservationBuilder {
	b.r.Note = note
	return b
}

func (b *ReservationBuilder) WithArrangement(id int, name string) *ReservationBuilder {
	b.r.ArrangementID = id
	b.r.ArrangementName = name
	return b
}

func (b *ReservationBuilder) Build() reservation.Reservation {
	return b.r.Clone()
}

func Statuses() []reservation.Status {
	return []reservation.Status{
		{StatusID: 1, StatusName: "Na čekanju", StatusCode: "term_pending"},
		{StatusID: 2, StatusName: "Potvrđeno", StatusCode: "term_confirmed"},
		{StatusID: 3, StatusName: "Otkazano", StatusCode: reservation.CanceledStatusCode},
	}
}

func Arrangements() []reservation.Arrangement {
	return []reservation.Arrangement{
		{ID: 1, Value: "Masaža"},
		{ID: 2, Value: "Manikir"},
	}
}

func ValidCreateDraft() reservation.CreateDraft {
	return reservation.CreateDraft{
		ArrangementID:   ptr.Of(1),
		StartDate:       "2024-03-15T10:00:00",
		DurationMinutes: ptr.Of(60),
		Note:            "",
	}
}
